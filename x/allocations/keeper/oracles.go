package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

// InitializeMembers sets the oracle set to exactly members. Calling it again
// overwrites whatever was stored before.
func (k Keeper) InitializeMembers(ctx context.Context, members []sdk.AccAddress) error {
	k.LogInfo("Initializing oracle set", types.Oracles, "members", len(members))
	return k.setOracles(ctx, members)
}

// ChangeMembersSorted replaces the oracle set with newMembers. The incoming
// and outgoing deltas are recorded in the log only; newMembers is the whole
// truth.
func (k Keeper) ChangeMembersSorted(ctx context.Context, incoming, outgoing, newMembers []sdk.AccAddress) error {
	k.LogInfo("Changing oracle set", types.Oracles,
		"incoming", len(incoming),
		"outgoing", len(outgoing),
		"members", len(newMembers))
	return k.setOracles(ctx, newMembers)
}

// IsOracle reports whether who is in the current oracle set.
func (k Keeper) IsOracle(ctx context.Context, who sdk.AccAddress) bool {
	found := false
	err := k.Oracles.Walk(ctx, nil, func(_ uint64, oracle sdk.AccAddress) (bool, error) {
		if oracle.Equals(who) {
			found = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return found
}

// GetOracles returns the oracle set in the order the authority supplied it.
func (k Keeper) GetOracles(ctx context.Context) []sdk.AccAddress {
	iter, err := k.Oracles.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

func (k Keeper) setOracles(ctx context.Context, members []sdk.AccAddress) error {
	if err := k.Oracles.Clear(ctx, nil); err != nil {
		return err
	}
	for i, member := range members {
		if err := k.Oracles.Set(ctx, uint64(i), member); err != nil {
			return err
		}
		k.LogDebug("Stored oracle", types.Oracles, "position", i, "address", member.String())
	}
	return nil
}
