package allocations

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/keeper"
	"github.com/allocnet/chain/x/allocations/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	if err := k.SetCoinsLeft(ctx, genState.CoinsLeft); err != nil {
		panic(err)
	}

	// The genesis oracle set is the membership authority's first call.
	oracles, err := types.AccAddressesFromBech32(genState.Oracles)
	if err != nil {
		panic(err)
	}
	if err := k.InitializeMembers(ctx, oracles); err != nil {
		panic(err)
	}

	k.LogInfo("Allocations genesis applied", types.Genesis, "coins_left", genState.CoinsLeft.String(), "oracles", len(oracles))
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.CoinsLeft = k.GetCoinsLeft(ctx)

	for _, oracle := range k.GetOracles(ctx) {
		genesis.Oracles = append(genesis.Oracles, oracle.String())
	}

	return genesis
}
