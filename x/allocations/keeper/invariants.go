package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

// RegisterInvariants registers all allocations invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "nonnegative-budget", NonNegativeBudgetInvariant(k))
}

// NonNegativeBudgetInvariant checks that the reward pool never went below zero
func NonNegativeBudgetInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		coinsLeft := k.GetCoinsLeft(ctx)
		broken := coinsLeft.IsNegative()
		return sdk.FormatInvariant(
			types.ModuleName, "nonnegative-budget",
			fmt.Sprintf("\tcoins left: %s\n", coinsLeft),
		), broken
	}
}
