package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/argmend/argmend/core/repair"
	"github.com/argmend/argmend/providers/oracle"
)

// selftestCmd exercises the repair service with canned malformed payloads.
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run canned malformed payloads through the repair service",
	Long: `Send three canned malformed-JSON strings to the configured repair
service and report pass/fail per case. Useful for verifying credentials,
base URL, and model choice before wiring the hook into a host.`,
	RunE: runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if !cfg.Active() {
		return fmt.Errorf("repair hook not installed: %s", cfg.InactiveReason())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results := repair.SelfTest(ctx, oracle.NewClient(cfg.Oracle), logger)

	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "self-test: %d/%d cases passed\n", passed, len(results))
	if passed != len(results) {
		return fmt.Errorf("self-test failed")
	}
	return nil
}
