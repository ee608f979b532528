package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/allocnet/chain/x/allocations/keeper"
	"github.com/allocnet/chain/x/allocations/types"
)

// AllocationsMocks holds the mocked capabilities of an allocations keeper.
type AllocationsMocks struct {
	Currency   *MockCurrency
	RewardSink *MockRewardSink
}

func AllocationsKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := AllocationsKeeperReturningMocks(t)
	return k, ctx
}

func AllocationsKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, AllocationsMocks) {
	ctrl := gomock.NewController(t)
	mocks := AllocationsMocks{
		Currency:   NewMockCurrency(ctrl),
		RewardSink: NewMockRewardSink(ctrl),
	}
	k, ctx := AllocationsKeeperWithCapabilities(t, mocks.Currency, mocks.RewardSink)
	return k, ctx, mocks
}

// AllocationsKeeperWithBank wires the keeper to a bank backed currency so the
// mint and send calls can be asserted directly.
func AllocationsKeeperWithBank(t testing.TB) (keeper.Keeper, sdk.Context, *MockBookkeepingBankKeeper) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBookkeepingBankKeeper(ctrl)
	k, ctx := AllocationsKeeperWithCapabilities(t, keeper.NewBankCurrency(bankKeeper), nil)
	return k, ctx, bankKeeper
}

func AllocationsKeeperWithCapabilities(
	t testing.TB,
	currency types.Currency,
	rewardSink types.RewardSink,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		currency,
		rewardSink,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
