package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/allocnet/chain/x/allocations/types"
)

// GetCoinsLeft returns the part of the reward pool not yet allocated. The pool
// is empty until genesis sets it.
func (k Keeper) GetCoinsLeft(ctx context.Context) math.Int {
	coins, err := k.CoinsLeft.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt()
	}
	if err != nil {
		panic(err)
	}
	return coins
}

// SetCoinsLeft overwrites the reward pool. Only genesis calls it; claims go
// through SubmitReward.
func (k Keeper) SetCoinsLeft(ctx context.Context, coins math.Int) error {
	if coins.IsNil() || coins.IsNegative() {
		return types.ErrNegativeBudget.Wrapf("got %s", coins)
	}
	k.LogInfo("Setting coins left", types.Budget, "coins_left", coins.String())
	return k.CoinsLeft.Set(ctx, coins)
}
