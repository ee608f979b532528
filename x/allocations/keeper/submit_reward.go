package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

// SubmitReward pays amount to recipient out of the reward pool on behalf of
// oracle. Validation happens before anything is written. The debit, the mint,
// the reward sink and the event run in a cached branch of the context that is
// committed only if all of them succeed, so a failed call leaves no trace.
func (k Keeper) SubmitReward(ctx context.Context, oracle sdk.AccAddress, merkleRoot types.MerkleRoot, recipient sdk.AccAddress, amount math.Int) error {
	if !k.IsOracle(ctx, oracle) {
		return errorsmod.Wrapf(types.ErrOracleAccessDenied, "%s is not an oracle", oracle)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAllocation
	}
	coinsLeft := k.GetCoinsLeft(ctx)
	if coinsLeft.LT(amount) {
		return errorsmod.Wrapf(types.ErrTooManyCoinsToAllocate, "requested %s, coins left %s", amount, coinsLeft)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	remaining := coinsLeft.Sub(amount)
	if err := k.CoinsLeft.Set(cacheCtx, remaining); err != nil {
		return err
	}

	reward := sdk.NewCoin(k.GetParams(cacheCtx).RewardDenom, amount)
	minted, err := k.currency.DepositCreating(cacheCtx, recipient, reward)
	if err != nil {
		k.LogError("Failed to create reward funds", types.Rewards, "recipient", recipient.String(), "amount", reward.String(), "error", err)
		return errorsmod.Wrapf(types.ErrDepositFailed, "%s to %s: %s", reward, recipient, err)
	}

	total := types.ZeroImbalance().Subsume(minted)
	if err := k.rewardSink.OnUnbalanced(cacheCtx, total); err != nil {
		k.LogError("Reward sink rejected minted funds", types.Rewards, "imbalance", total.String(), "error", err)
		return errorsmod.Wrapf(types.ErrRewardSinkFailed, "%s: %s", total, err)
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardAllocated,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyMerkleRoot, merkleRoot.String()),
			sdk.NewAttribute(types.AttributeKeyOracle, oracle.String()),
		),
	)

	writeCache()

	k.LogInfo("Reward allocated", types.Claims,
		"oracle", oracle.String(),
		"recipient", recipient.String(),
		"amount", reward.String(),
		"merkle_root", merkleRoot.String(),
		"coins_left", remaining.String())

	return nil
}
