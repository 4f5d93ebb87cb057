package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/argmend/argmend/core/parse"
	"github.com/argmend/argmend/providers/oracle"
	"github.com/argmend/argmend/providers/ui"
)

// Oracle is the remote repair dependency. *oracle.Client satisfies it; tests
// substitute fakes.
type Oracle interface {
	Repair(ctx context.Context, brokenText string) oracle.Outcome
}

// Option configures a Hook.
type Option func(*Hook)

// WithLocalRepair enables an offline jsonrepair pass after the strict parse
// fails and before the oracle is consulted. Off by default: the default
// pipeline goes straight from local-parse failure to the remote oracle.
func WithLocalRepair() Option {
	return func(h *Hook) { h.localRepair = true }
}

// Hook is the parse-recovery state machine. Each Handle call is independent;
// the hook holds no per-call state and is safe for concurrent use as long as
// the injected collaborators are.
type Hook struct {
	oracle      Oracle
	notifier    ui.Notifier
	localRepair bool
}

// New creates a Hook around the given oracle and notifier. A nil notifier is
// replaced with a no-op one.
func New(o Oracle, n ui.Notifier, opts ...Option) *Hook {
	if n == nil {
		n = ui.NopNotifier{}
	}
	h := &Hook{oracle: o, notifier: n}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle turns raw tool-call argument text into a JSON value. It never
// returns an error and never panics outward: on any terminal failure the
// caller receives an empty object and a warning has been surfaced through
// the notifier. The transient working status is cleared on every exit path,
// including internal faults.
func (h *Hook) Handle(ctx context.Context, rawArgs, toolName string) (value any) {
	if v, err := parse.Strict(rawArgs); err == nil {
		return v
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("repair hook recovered from internal fault", "tool", toolName, "fault", fmt.Sprint(r))
			h.notifier.Notify(fmt.Sprintf("Could not fix JSON for %s: internal error", toolName), ui.LevelWarning)
			value = map[string]any{}
		}
	}()

	if h.localRepair {
		if v, err := parse.Repaired(rawArgs); err == nil {
			h.notifier.Notify(fmt.Sprintf("Repaired JSON locally for %s", toolName), ui.LevelInfo)
			return v
		}
	}

	outcome := h.remoteRepair(ctx, rawArgs, toolName)

	if outcome.Ok() {
		h.notifier.Notify(fmt.Sprintf("Fixed malformed JSON for %s", toolName), ui.LevelInfo)
		return outcome.Value
	}

	h.notifier.Notify(fmt.Sprintf("Could not fix JSON for %s: %s", toolName, outcome.Failure), ui.LevelWarning)
	return map[string]any{}
}

// remoteRepair wraps the single suspension point of the pipeline with the
// transient working status. The deferred clear runs on success, every
// failure reason, and a panicking oracle alike.
func (h *Hook) remoteRepair(ctx context.Context, rawArgs, toolName string) oracle.Outcome {
	h.notifier.SetWorkingMessage(fmt.Sprintf("Fixing JSON for %s…", toolName))
	defer h.notifier.SetWorkingMessage("")

	return h.oracle.Repair(ctx, rawArgs)
}
