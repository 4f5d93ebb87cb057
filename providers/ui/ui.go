package ui

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier is the UI collaborator the repair pipeline talks to.
//
// Implementations must tolerate concurrent calls: multiple tool calls may be
// repaired at once, each setting and clearing its own working message. An
// implementation should therefore treat working messages as a set of
// in-flight operations rather than a single global slot.
type Notifier interface {
	// Notify delivers a one-off message at the given level.
	Notify(message string, level Level)

	// SetWorkingMessage shows a transient status while an operation is in
	// flight. An empty text clears the most recently set message, restoring
	// whatever was shown before (or the neutral default when nothing is
	// left in flight).
	SetWorkingMessage(text string)
}

// NopNotifier discards everything. Useful for tests and for hosts that have
// no operator-facing surface.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Level)     {}
func (NopNotifier) SetWorkingMessage(string) {}
