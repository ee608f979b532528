package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/allocnet/chain/x/allocations/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	denom, err := k.RewardDenom.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams()
	}
	if err != nil {
		panic(err)
	}
	return types.NewParams(denom)
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.RewardDenom.Set(ctx, params.RewardDenom)
}
