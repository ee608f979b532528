package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Currency creates new funds for an account.
type Currency interface {
	DepositCreating(ctx context.Context, recipient sdk.AccAddress, amount sdk.Coin) (PositiveImbalance, error)
}

// RewardSink decides what happens to value minted for a successful claim.
type RewardSink interface {
	OnUnbalanced(ctx context.Context, imbalance PositiveImbalance) error
}

// MembershipHooks is implemented by the allocations keeper and called by the
// membership authority whenever the oracle set changes.
type MembershipHooks interface {
	InitializeMembers(ctx context.Context, members []sdk.AccAddress) error
	ChangeMembersSorted(ctx context.Context, incoming, outgoing, newMembers []sdk.AccAddress) error
}

// BookkeepingBankKeeper is the audited bank used by the bank backed Currency.
type BookkeepingBankKeeper interface {
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
}

// BurningBankKeeper is the audited bank used by the burning reward sink.
type BurningBankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
}
