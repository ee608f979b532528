package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

const rewardMemo = "allocation reward"

// BankCurrency creates funds by minting into the allocations module account
// and handing them to the recipient.
type BankCurrency struct {
	bank types.BookkeepingBankKeeper
}

var _ types.Currency = BankCurrency{}

func NewBankCurrency(bank types.BookkeepingBankKeeper) BankCurrency {
	return BankCurrency{bank: bank}
}

func (c BankCurrency) DepositCreating(ctx context.Context, recipient sdk.AccAddress, amount sdk.Coin) (types.PositiveImbalance, error) {
	coins := sdk.NewCoins(amount)
	if err := c.bank.MintCoins(ctx, types.ModuleName, coins, rewardMemo); err != nil {
		return types.ZeroImbalance(), err
	}
	if err := c.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins, rewardMemo); err != nil {
		return types.ZeroImbalance(), err
	}
	return types.NewPositiveImbalance(amount), nil
}
