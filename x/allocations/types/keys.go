package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "allocations"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// OraclesKey is the prefix of the oracle set, stored as position -> address
	OraclesKey = collections.NewPrefix(0)

	// CoinsLeftKey holds the unallocated part of the reward pool
	CoinsLeftKey = collections.NewPrefix(1)

	// RewardDenomKey holds the denomination minted for rewards
	RewardDenomKey = collections.NewPrefix(2)
)
