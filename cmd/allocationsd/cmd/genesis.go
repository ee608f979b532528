package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/errors"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/spf13/cobra"

	allocations "github.com/allocnet/chain/x/allocations/module"
	"github.com/allocnet/chain/x/allocations/types"
)

// PatchGenesisCmd writes the allocations section of an application genesis
// file from the allocationsd configuration.
func PatchGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch-genesis [genesis-file]",
		Short: "Set app_state.allocations in genesis.json from the config file and ALLOC_* environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString(flagConfig)
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			genState, err := config.GenesisState()
			if err != nil {
				return errors.Wrap(err, "invalid allocations genesis")
			}

			appGenesis, err := genutiltypes.AppGenesisFromFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read genesis doc from file")
			}
			if err := setModuleGenesis(appGenesis, genState); err != nil {
				return err
			}
			if err := appGenesis.SaveAs(args[0]); err != nil {
				return errors.Wrap(err, "failed to write genesis file")
			}

			cmd.PrintErrf("Patched %s: coins_left=%s%s oracles=%d\n", args[0], genState.CoinsLeft, genState.Params.RewardDenom, len(genState.Oracles))
			return nil
		},
	}
	cmd.Flags().String(flagConfig, "", "path to the allocationsd TOML config")
	return cmd
}

func ValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [genesis-file]",
		Short: "Validate app_state.allocations of a genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genState, err := readModuleGenesis(args[0])
			if err != nil {
				return err
			}
			if err := genState.Validate(); err != nil {
				return errors.Wrapf(err, "%s genesis in %s is invalid", types.ModuleName, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: coins_left=%s%s oracles=%d\n", args[0], genState.CoinsLeft, genState.Params.RewardDenom, len(genState.Oracles))
			return nil
		},
	}
}

func setModuleGenesis(appGenesis *genutiltypes.AppGenesis, genState types.GenesisState) error {
	appState := map[string]json.RawMessage{}
	if len(appGenesis.AppState) > 0 {
		if err := json.Unmarshal(appGenesis.AppState, &appState); err != nil {
			return errors.Wrap(err, "failed to unmarshal app state")
		}
	}

	bz, err := json.Marshal(genState)
	if err != nil {
		return err
	}
	appState[types.ModuleName] = bz

	appGenesis.AppState, err = json.MarshalIndent(appState, "", "  ")
	return err
}

func readModuleGenesis(path string) (types.GenesisState, error) {
	appGenesis, err := genutiltypes.AppGenesisFromFile(path)
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "failed to read genesis doc from file")
	}
	appState := map[string]json.RawMessage{}
	if err := json.Unmarshal(appGenesis.AppState, &appState); err != nil {
		return types.GenesisState{}, errors.Wrap(err, "failed to unmarshal app state")
	}
	raw, ok := appState[types.ModuleName]
	if !ok {
		return types.GenesisState{}, fmt.Errorf("%s has no %s section", path, types.ModuleName)
	}
	return allocations.UnmarshalGenesis(raw)
}
