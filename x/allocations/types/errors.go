package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
	hosterrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/allocations module sentinel errors
var (
	ErrOracleAccessDenied     = sdkerrors.Register(ModuleName, 1100, "function is restricted to oracles only")
	ErrZeroAllocation         = sdkerrors.Register(ModuleName, 1101, "allocation amount must be positive")
	ErrTooManyCoinsToAllocate = sdkerrors.Register(ModuleName, 1102, "allocation exceeds the coins left in the pool")
	ErrInvalidSigner          = sdkerrors.Register(ModuleName, 1103, "expected membership authority as only signer")
	ErrInvalidMerkleRoot      = sdkerrors.Register(ModuleName, 1104, "invalid merkle root hash")
	ErrDepositFailed          = sdkerrors.Register(ModuleName, 1105, "currency failed to create funds")
	ErrRewardSinkFailed       = sdkerrors.Register(ModuleName, 1106, "reward sink rejected minted funds")
	ErrNegativeBudget         = sdkerrors.Register(ModuleName, 1107, "coins left cannot be negative")
)

// ErrUnauthenticated is returned when the origin of a claim does not resolve
// to a signed account. It belongs to the host, not to this module.
var ErrUnauthenticated = hosterrors.ErrUnauthorized
