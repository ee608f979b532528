package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allocnet/chain/internal/ledger"
)

// ReplayCmd dry-runs a list of claims and membership changes against the
// allocations genesis of a genesis file.
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [genesis-file] [steps-file]",
		Short: "Apply claims to an in-memory copy of the allocations genesis and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			configPath, _ := cmd.Flags().GetString(flagConfig)
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			genState, err := readModuleGenesis(args[0])
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("error reading %s: %w", args[1], err)
			}
			var steps []ledger.Step
			if err := json.Unmarshal(content, &steps); err != nil {
				return fmt.Errorf("error decoding steps in %s: %w", args[1], err)
			}

			l, err := ledger.New(logger, genState, config.AuditLogConfig())
			if err != nil {
				return err
			}
			report, err := l.Replay(cmd.Context(), steps)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			failOnReject, _ := cmd.Flags().GetBool("strict")
			if failOnReject && report.Rejected > 0 {
				return fmt.Errorf("%d of %d steps were rejected", report.Rejected, len(steps))
			}
			return nil
		},
	}
	cmd.Flags().String(flagConfig, "", "path to the allocationsd TOML config (audit settings)")
	cmd.Flags().Bool("strict", false, "exit with an error if any step is rejected")
	return cmd
}
