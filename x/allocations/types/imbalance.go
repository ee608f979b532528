package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PositiveImbalance is supply that was created and not yet accounted for.
// Whoever receives one decides where that value ends up.
type PositiveImbalance struct {
	coins sdk.Coins
}

func ZeroImbalance() PositiveImbalance {
	return PositiveImbalance{coins: sdk.NewCoins()}
}

func NewPositiveImbalance(coin sdk.Coin) PositiveImbalance {
	return PositiveImbalance{coins: sdk.NewCoins(coin)}
}

// Subsume merges other into the imbalance and returns the total.
func (p PositiveImbalance) Subsume(other PositiveImbalance) PositiveImbalance {
	return PositiveImbalance{coins: p.Peek().Add(other.Peek()...)}
}

// Peek returns the created coins without consuming the imbalance.
func (p PositiveImbalance) Peek() sdk.Coins {
	if p.coins == nil {
		return sdk.NewCoins()
	}
	return p.coins
}

func (p PositiveImbalance) IsZero() bool {
	return p.Peek().IsZero()
}

func (p PositiveImbalance) String() string {
	return p.Peek().String()
}
