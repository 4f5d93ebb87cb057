package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/argmend/argmend/internal/config"
	"github.com/argmend/argmend/internal/logging"
)

// rootCmd is the entry point for the argmend CLI.
var rootCmd = &cobra.Command{
	Use:   "argmend",
	Short: "Repair malformed JSON tool-call arguments",
	Long: `argmend repairs malformed JSON payloads emitted by LLM tool-call
producers. When strict parsing fails, the broken text is sent to a remote
chat-completions "repair oracle" and the reply is parsed back into a JSON
document, falling back to an empty object when nothing can be recovered.

Configuration is environment-sourced (ARGMEND_* variables, .env supported):

  ARGMEND_API_KEY       bearer credential; without it the hook is a no-op
  ARGMEND_ENABLED       set to false to disable the mechanism entirely
  ARGMEND_BASE_URL      chat-completions API root (default OpenRouter)
  ARGMEND_MODEL         model identifier for repair requests
  ARGMEND_TEMPERATURE   sampling temperature (default 0, deterministic)
  ARGMEND_LOCAL_REPAIR  try an offline jsonrepair pass before the oracle`,
}

// statusCmd reports whether the repair hook would be installed and why not.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration status",
	Long:  `Report whether the repair hook is active and print the effective configuration (the credential itself is never shown).`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(selftestCmd)
}

// setup loads configuration and initialises logging; shared by all
// subcommands so the environment is read exactly once per invocation.
func setup() (config.Config, *slog.Logger, error) {
	cfg := config.Load()
	logger, err := logging.Init(cfg)
	if err != nil {
		return cfg, logger, fmt.Errorf("failed to initialise logging: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, logger, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logger, nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	if cfg.Active() {
		fmt.Fprintln(cmd.OutOrStdout(), "repair hook: active")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "repair hook: not installed (%s)\n", cfg.InactiveReason())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "base URL:     %s\n", cfg.Oracle.BaseURL)
	fmt.Fprintf(cmd.OutOrStdout(), "model:        %s\n", cfg.Oracle.Model)
	fmt.Fprintf(cmd.OutOrStdout(), "temperature:  %v\n", cfg.Oracle.Temperature)
	fmt.Fprintf(cmd.OutOrStdout(), "local repair: %v\n", cfg.LocalRepair)
	return nil
}
