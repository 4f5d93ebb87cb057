package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/argmend/argmend/providers/ui"
)

func TestNotifyLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  ui.Level
		prefix string
	}{
		{name: "info", level: ui.LevelInfo, prefix: "info:"},
		{name: "warning", level: ui.LevelWarning, prefix: "warning:"},
		{name: "error", level: ui.LevelError, prefix: "error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := NewWithWriter(&buf)
			n.Notify("something happened", tt.level)

			out := buf.String()
			if !strings.Contains(out, tt.prefix) {
				t.Errorf("expected output to contain %q, got %q", tt.prefix, out)
			}
			if !strings.Contains(out, "something happened") {
				t.Errorf("expected output to contain message, got %q", out)
			}
		})
	}
}

func TestWorkingMessageStack(t *testing.T) {
	var buf bytes.Buffer
	n := NewWithWriter(&buf)

	if n.Working() != "" {
		t.Fatalf("expected empty initial status, got %q", n.Working())
	}

	n.SetWorkingMessage("Fixing JSON for run_command…")
	if got := n.Working(); got != "Fixing JSON for run_command…" {
		t.Errorf("expected first status, got %q", got)
	}

	// A second overlapping repair takes over the display.
	n.SetWorkingMessage("Fixing JSON for read_file…")
	if got := n.Working(); got != "Fixing JSON for read_file…" {
		t.Errorf("expected second status, got %q", got)
	}

	// Clearing one reveals the other instead of wiping everything.
	n.SetWorkingMessage("")
	if got := n.Working(); got != "Fixing JSON for run_command…" {
		t.Errorf("expected first status after one clear, got %q", got)
	}

	n.SetWorkingMessage("")
	if got := n.Working(); got != "" {
		t.Errorf("expected empty status after both clears, got %q", got)
	}
}

func TestClearOnEmptyStackIsHarmless(t *testing.T) {
	var buf bytes.Buffer
	n := NewWithWriter(&buf)

	n.SetWorkingMessage("")
	if got := n.Working(); got != "" {
		t.Errorf("expected empty status, got %q", got)
	}
}
