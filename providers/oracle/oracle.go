package oracle

import (
	"context"
	"net/http"
	"strings"

	"github.com/argmend/argmend/core/parse"
	"github.com/argmend/argmend/internal/utils"
)

const (
	chatCompletionsEndpoint = "/chat/completions"

	// instructionPrefix precedes the broken text in the single user message.
	instructionPrefix = "Fix this broken JSON and return ONLY valid JSON, no explanation:"
)

// Client talks to a chat-completions compatible repair service.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a repair client for the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// WithHTTPClient sets a custom HTTP client, mainly for tests and callers
// that need transport-level control (proxies, timeouts).
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// Config returns the immutable configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Repair sends brokenText to the remote service and interprets the reply.
// It never returns a Go error; every failure mode is encoded in the Outcome.
// Cancellation of ctx aborts the request in flight and surfaces as a
// transport failure.
func (c *Client) Repair(ctx context.Context, brokenText string) Outcome {
	if !c.cfg.HasCredential() {
		return Fail(FailureNoCredential)
	}

	request := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: instructionPrefix + "\n" + brokenText},
		},
		Temperature:    utils.Ptr(c.cfg.Temperature),
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	res, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, c.client, c.cfg.BaseURL+chatCompletionsEndpoint, c.cfg.APIKey, request)
	if err != nil {
		if res == nil {
			// Request never completed: network error, timeout, or abort.
			return Fail(TransportFailure(err.Error()))
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return Fail(HTTPFailure(res.StatusCode))
		}
		// 2xx but the body was unreadable or not a completion envelope.
		return Fail(FailureEmptyResponse)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return Fail(FailureEmptyResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return Fail(FailureEmptyResponse)
	}

	// Primary attempt: the model did what it was told and returned bare JSON.
	if value, err := parse.Strict(content); err == nil {
		return Success(value)
	}

	// Salvage attempt: the model wrapped the JSON in prose.
	span, ok := salvageSpan(content)
	if !ok {
		return Fail(FailureNoJSONFound)
	}
	value, err := parse.Strict(span)
	if err != nil {
		return Fail(FailureUnparsable)
	}
	return Success(value)
}
