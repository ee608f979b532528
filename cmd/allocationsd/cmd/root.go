package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

const (
	flagLogLevel = "log-level"
	flagConfig   = "config"
)

// NewRootCmd creates the allocationsd command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "allocationsd",
		Short:         "Genesis and offline tooling for the allocations module",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (e.g. info, debug, allocations:debug,*:error)")

	rootCmd.AddCommand(
		InitConfigCmd(),
		PatchGenesisCmd(),
		ValidateGenesisCmd(),
		MerkleRootCmd(),
		ReplayCmd(),
	)
	return rootCmd
}

func loggerFromCmd(cmd *cobra.Command) (log.Logger, error) {
	level, _ := cmd.Flags().GetString(flagLogLevel)
	filter, err := log.ParseLogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flagLogLevel, level, err)
	}
	return log.NewLogger(cmd.ErrOrStderr(), log.FilterOption(filter), log.ColorOption(false)), nil
}
