// Package membank is an in-memory bank for the offline ledger and for tests.
// It implements the subset of the SDK bank keeper the bookkeeper wraps.
package membank

import (
	"context"
	"sort"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	booktypes "github.com/allocnet/chain/x/bookkeeper/types"
)

// Bank keeps balances keyed by account address. Module accounts are derived
// with authtypes.NewModuleAddress like the SDK does.
type Bank struct {
	mu       sync.RWMutex
	balances map[string]sdk.Coins
	supply   sdk.Coins
	minters  map[string]bool
}

var _ booktypes.BankKeeper = (*Bank)(nil)

// New returns an empty bank. Only the named modules may mint or burn.
func New(minters ...string) *Bank {
	b := &Bank{
		balances: make(map[string]sdk.Coins),
		supply:   sdk.NewCoins(),
		minters:  make(map[string]bool),
	}
	for _, name := range minters {
		b.minters[name] = true
	}
	return b
}

func (b *Bank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if !b.minters[moduleName] {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "module account %s does not have permissions to mint tokens", moduleName)
	}
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(authtypes.NewModuleAddress(moduleName), amt)
	b.supply = b.supply.Add(amt...)
	return nil
}

func (b *Bank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if !b.minters[moduleName] {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "module account %s does not have permissions to burn tokens", moduleName)
	}
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.debit(authtypes.NewModuleAddress(moduleName), amt); err != nil {
		return err
	}
	b.supply = b.supply.Sub(amt...)
	return nil
}

func (b *Bank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}
	if recipientAddr.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "empty recipient")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.debit(authtypes.NewModuleAddress(senderModule), amt); err != nil {
		return err
	}
	b.credit(recipientAddr, amt)
	return nil
}

func (b *Bank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.debit(senderAddr, amt); err != nil {
		return err
	}
	b.credit(authtypes.NewModuleAddress(recipientModule), amt)
	return nil
}

// GetBalance returns the balance of addr in denom.
func (b *Bank) GetBalance(addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// GetModuleBalance returns the balance held by a module account.
func (b *Bank) GetModuleBalance(moduleName string, denom string) sdk.Coin {
	return b.GetBalance(authtypes.NewModuleAddress(moduleName), denom)
}

// GetSupply returns the total minted amount of denom.
func (b *Bank) GetSupply(denom string) sdk.Coin {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sdk.NewCoin(denom, b.supply.AmountOf(denom))
}

// Balance is one account's holdings.
type Balance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

// Balances returns every non-empty account sorted by address.
func (b *Bank) Balances() []Balance {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Balance, 0, len(b.balances))
	for addr, coins := range b.balances {
		if coins.IsZero() {
			continue
		}
		out = append(out, Balance{Address: addr, Coins: coins})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

func (b *Bank) credit(addr sdk.AccAddress, amt sdk.Coins) {
	key := addr.String()
	b.balances[key] = b.balances[key].Add(amt...)
}

func (b *Bank) debit(addr sdk.AccAddress, amt sdk.Coins) error {
	key := addr.String()
	remaining, negative := b.balances[key].SafeSub(amt...)
	if negative {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", b.balances[key], amt)
	}
	b.balances[key] = remaining
	return nil
}

// TotalBalance sums denom across all accounts, module accounts included.
func (b *Bank) TotalBalance(denom string) math.Int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	total := math.ZeroInt()
	for _, coins := range b.balances {
		total = total.Add(coins.AmountOf(denom))
	}
	return total
}
