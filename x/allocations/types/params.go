package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const DefaultRewardDenom = "ureward"

// Params configures the allocations module.
type Params struct {
	// RewardDenom is the denomination minted for accepted claims.
	RewardDenom string `json:"reward_denom" yaml:"reward_denom"`
}

// NewParams creates a new Params instance
func NewParams(rewardDenom string) Params {
	return Params{
		RewardDenom: rewardDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultRewardDenom)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	return nil
}
