package allocations_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/allocnet/chain/testutil/keeper"
	"github.com/allocnet/chain/testutil/sample"
	allocations "github.com/allocnet/chain/x/allocations/module"
	"github.com/allocnet/chain/x/allocations/types"
)

func TestGenesis(t *testing.T) {
	oracle := sample.AccAddress()
	genesisState := types.GenesisState{
		Params:    types.NewParams("uoracle"),
		CoinsLeft: math.NewInt(200),
		Oracles:   []string{oracle, sample.AccAddress(), oracle},
	}

	k, ctx := keepertest.AllocationsKeeper(t)
	allocations.InitGenesis(ctx, k, genesisState)
	got := allocations.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.True(t, genesisState.CoinsLeft.Equal(got.CoinsLeft))
	require.Equal(t, genesisState.Oracles, got.Oracles)
}

func TestGenesis_InvalidBudgetPanics(t *testing.T) {
	k, ctx := keepertest.AllocationsKeeper(t)
	genesisState := *types.DefaultGenesis()
	genesisState.CoinsLeft = math.NewInt(-1)

	require.Panics(t, func() { allocations.InitGenesis(ctx, k, genesisState) })
}

func TestAppModule_GenesisJSON(t *testing.T) {
	k, ctx := keepertest.AllocationsKeeper(t)
	am := allocations.NewAppModule(k)

	require.NoError(t, am.ValidateGenesis(nil, nil, am.DefaultGenesis(nil)))
	require.Error(t, am.ValidateGenesis(nil, nil, json.RawMessage(`{"coins_left":"-5"}`)))
	require.Error(t, am.ValidateGenesis(nil, nil, json.RawMessage(`not json`)))

	oracle := sample.AccAddress()
	raw := json.RawMessage(`{"params":{"reward_denom":"ureward"},"coins_left":"1000","oracles":["` + oracle + `"]}`)
	am.InitGenesis(ctx, nil, raw)

	require.Equal(t, math.NewInt(1000), k.GetCoinsLeft(ctx))
	require.Len(t, k.GetOracles(ctx), 1)

	exported, err := allocations.UnmarshalGenesis(am.ExportGenesis(ctx, nil))
	require.NoError(t, err)
	require.Equal(t, []string{oracle}, exported.Oracles)
	require.Equal(t, "1000", exported.CoinsLeft.String())
}

func TestAppModule_Servers(t *testing.T) {
	k, ctx := keepertest.AllocationsKeeper(t)
	am := allocations.NewAppModule(k)
	oracle := sample.Address()

	require.NoError(t, am.MembershipHooks().InitializeMembers(ctx, []sdk.AccAddress{oracle}))

	resp, err := am.QueryServer().IsOracle(ctx, &types.QueryIsOracleRequest{Address: oracle.String()})
	require.NoError(t, err)
	require.True(t, resp.IsOracle)

	_, err = am.MsgServer().ChangeMembers(ctx, types.NewMsgChangeMembers(sample.AccAddress(), nil, nil, nil))
	require.ErrorIs(t, err, types.ErrInvalidSigner)
}
