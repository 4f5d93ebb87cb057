package oracle

// Config holds the repair-service configuration. It is built once at startup
// and passed by value; nothing mutates it after construction.
type Config struct {
	// Enabled reports whether the repair mechanism should be active at all.
	// When false the hook is never installed and the system is a no-op.
	Enabled bool

	// BaseURL is the root of a chat-completions compatible API,
	// e.g. "https://openrouter.ai/api/v1". The client appends
	// "/chat/completions".
	BaseURL string

	// Model is the opaque model identifier sent with every repair request.
	Model string

	// APIKey is the bearer credential. When empty the client never attempts
	// network I/O and fails fast with FailureNoCredential.
	APIKey string

	// Temperature biases the model toward determinism. Zero by default so
	// repeated repairs of the same input yield the same outcome.
	Temperature float64
}

// HasCredential reports whether a credential is present. All remote calls
// are gated on this.
func (c Config) HasCredential() bool {
	return c.APIKey != ""
}
