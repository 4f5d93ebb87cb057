package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/argmend/argmend/core/repair"
	"github.com/argmend/argmend/providers/oracle"
	"github.com/argmend/argmend/providers/ui/console"
)

var repairToolName string

// repairCmd runs a single payload through the full parse-recovery pipeline.
var repairCmd = &cobra.Command{
	Use:   "repair [file]",
	Short: "Repair a malformed JSON payload",
	Long: `Run a payload through the parse-recovery pipeline and print the
resulting JSON document on stdout. The payload is read from the given file,
or from stdin when no file (or "-") is given.

The pipeline never fails: when the payload cannot be repaired an empty
object is printed and a warning explains why.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairToolName, "tool", "cli", "tool name to attribute the payload to in status and notifications")
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if !cfg.Active() {
		logger.Warn("repair hook not installed, remote repair unavailable", "reason", cfg.InactiveReason())
	}

	raw, err := readPayload(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var opts []repair.Option
	if cfg.LocalRepair {
		opts = append(opts, repair.WithLocalRepair())
	}
	hook := repair.New(oracle.NewClient(cfg.Oracle), console.New(), opts...)

	value := hook.Handle(ctx, string(raw), repairToolName)

	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repaired document: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func readPayload(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return raw, nil
}
