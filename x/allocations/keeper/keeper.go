package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of changing the oracle set. Typically, this
		// should be the x/gov module account.
		authority string

		currency   types.Currency
		rewardSink types.RewardSink

		Schema      collections.Schema
		Oracles     collections.Map[uint64, sdk.AccAddress]
		CoinsLeft   collections.Item[math.Int]
		RewardDenom collections.Item[string]
	}
)

var (
	_ types.MembershipHooks   = Keeper{}
	_ types.AllocationsLogger = Keeper{}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	currency types.Currency,
	rewardSink types.RewardSink,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	if currency == nil {
		panic("allocations keeper requires a currency")
	}
	if rewardSink == nil {
		rewardSink = NoopRewardSink{}
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		currency:   currency,
		rewardSink: rewardSink,

		Oracles:     collections.NewMap(sb, types.OraclesKey, "oracles", collections.Uint64Key, collcodec.KeyToValueCodec(sdk.AccAddressKey)),
		CoinsLeft:   collections.NewItem(sb, types.CoinsLeftKey, "coins_left", sdk.IntValue),
		RewardDenom: collections.NewItem(sb, types.RewardDenomKey, "reward_denom", collections.StringValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) LogInfo(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Info(msg, append([]interface{}{"subsystem", subSystem.String()}, keyvals...)...)
}

func (k Keeper) LogError(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Error(msg, append([]interface{}{"subsystem", subSystem.String()}, keyvals...)...)
}

func (k Keeper) LogWarn(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Warn(msg, append([]interface{}{"subsystem", subSystem.String()}, keyvals...)...)
}

func (k Keeper) LogDebug(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Debug(msg, append([]interface{}{"subsystem", subSystem.String()}, keyvals...)...)
}
