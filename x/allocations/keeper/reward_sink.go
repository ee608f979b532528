package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

// NoopRewardSink leaves minted funds with the recipient; total supply grows
// by the reward.
type NoopRewardSink struct{}

var _ types.RewardSink = NoopRewardSink{}

func (NoopRewardSink) OnUnbalanced(context.Context, types.PositiveImbalance) error {
	return nil
}

// RewardSinkFunc adapts a function to a RewardSink.
type RewardSinkFunc func(ctx context.Context, imbalance types.PositiveImbalance) error

func (f RewardSinkFunc) OnUnbalanced(ctx context.Context, imbalance types.PositiveImbalance) error {
	return f(ctx, imbalance)
}

const burnMemo = "allocation reward offset"

// BurnRewardSink keeps total supply flat: for every minted reward it pulls the
// same coins from a funding account into the allocations module account and
// burns them. An underfunded account fails the claim.
type BurnRewardSink struct {
	bank    types.BurningBankKeeper
	funding sdk.AccAddress
}

var _ types.RewardSink = BurnRewardSink{}

func NewBurnRewardSink(bank types.BurningBankKeeper, funding sdk.AccAddress) BurnRewardSink {
	return BurnRewardSink{bank: bank, funding: funding}
}

func (s BurnRewardSink) OnUnbalanced(ctx context.Context, imbalance types.PositiveImbalance) error {
	if imbalance.IsZero() {
		return nil
	}
	coins := imbalance.Peek()
	if err := s.bank.SendCoinsFromAccountToModule(ctx, s.funding, types.ModuleName, coins, burnMemo); err != nil {
		return err
	}
	return s.bank.BurnCoins(ctx, types.ModuleName, coins, burnMemo)
}
