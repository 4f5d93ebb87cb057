// Package ui defines the outbound contract between the repair pipeline and
// whatever surface the host uses to talk to the operator: one-off
// notifications at a severity level, and a transient working-status message
// shown while a repair is in flight.
//
// The repair hook drives this interface; it never logs or prints directly.
// [github.com/argmend/argmend/providers/ui/console] is a ready-made terminal
// implementation, and hosts embedding the hook supply their own.
package ui
