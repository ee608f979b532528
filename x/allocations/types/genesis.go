package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the allocations module's genesis state.
type GenesisState struct {
	Params Params `json:"params" yaml:"params"`
	// CoinsLeft is the reward pool available at genesis.
	CoinsLeft math.Int `json:"coins_left" yaml:"coins_left"`
	// Oracles is the initial oracle set, stored exactly as given.
	Oracles []string `json:"oracles" yaml:"oracles"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		CoinsLeft: math.ZeroInt(),
		Oracles:   []string{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Duplicate oracles are accepted, the membership authority owns
// the shape of the set.
func (gs GenesisState) Validate() error {
	if gs.CoinsLeft.IsNil() {
		return fmt.Errorf("coins left must be set")
	}
	if gs.CoinsLeft.IsNegative() {
		return ErrNegativeBudget.Wrapf("got %s", gs.CoinsLeft)
	}
	for i, oracle := range gs.Oracles {
		if _, err := sdk.AccAddressFromBech32(oracle); err != nil {
			return fmt.Errorf("invalid oracle address at position %d (%s): %w", i, oracle, err)
		}
	}
	return gs.Params.Validate()
}
