// Package console implements [ui.Notifier] for terminal output. Levels are
// color-coded with lipgloss and working messages are tracked as a stack, so
// overlapping repairs each keep their own status: clearing one reveals the
// next still in flight instead of wiping the line for everyone.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/argmend/argmend/providers/ui"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Notifier writes notifications and working-status lines to a terminal.
// Safe for concurrent use.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	working []string
}

// New creates a Notifier writing to stderr.
func New() *Notifier {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Notifier writing to w, mainly for tests.
func NewWithWriter(w io.Writer) *Notifier {
	return &Notifier{out: w}
}

// Notify prints a one-off message with a level-colored prefix.
func (n *Notifier) Notify(message string, level ui.Level) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var prefix string
	switch level {
	case ui.LevelWarning:
		prefix = warningStyle.Render("warning:")
	case ui.LevelError:
		prefix = errorStyle.Render("error:")
	default:
		prefix = infoStyle.Render("info:")
	}
	fmt.Fprintf(n.out, "%s %s\n", prefix, message)
}

// SetWorkingMessage pushes a new in-flight status, or pops the most recent
// one when text is empty. The topmost remaining status is printed after each
// change; an empty stack prints nothing.
func (n *Notifier) SetWorkingMessage(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if text == "" {
		if len(n.working) > 0 {
			n.working = n.working[:len(n.working)-1]
		}
	} else {
		n.working = append(n.working, text)
	}

	if len(n.working) > 0 {
		fmt.Fprintln(n.out, workingStyle.Render("… "+n.working[len(n.working)-1]))
	}
}

// Working returns the currently displayed status, or the empty string when
// nothing is in flight.
func (n *Notifier) Working() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.working) == 0 {
		return ""
	}
	return n.working[len(n.working)-1]
}
