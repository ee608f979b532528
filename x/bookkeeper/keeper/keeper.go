package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/bookkeeper/types"
)

// Keeper moves coins through the bank and writes an audit entry for every
// coin that moved.
type Keeper struct {
	logger     log.Logger
	bankKeeper types.BankKeeper
	logConfig  LogConfig
}

type LogConfig struct {
	DoubleEntry bool   `json:"double_entry" mapstructure:"double_entry"`
	SimpleEntry bool   `json:"simple_entry" mapstructure:"simple_entry"`
	LogLevel    string `json:"log_level" mapstructure:"log_level"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{DoubleEntry: true, LogLevel: "info"}
}

func NewKeeper(logger log.Logger, bankKeeper types.BankKeeper, logConfig LogConfig) Keeper {
	return Keeper{
		logger:     logger,
		bankKeeper: bankKeeper,
		logConfig:  logConfig,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.audit(ctx, recipientAddr.String(), senderModule, coin, memo)
	}
	return nil
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.audit(ctx, recipientModule, senderAddr.String(), coin, memo)
	}
	return nil
}

func (k Keeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.audit(ctx, moduleName, types.SupplyAccount, coin, memo)
	}
	return nil
}

func (k Keeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		k.Logger().Info("No coins to burn")
		return nil
	}
	if err := k.bankKeeper.BurnCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.audit(ctx, types.SupplyAccount, moduleName, coin, memo)
	}
	return nil
}

func (k Keeper) audit(ctx context.Context, to string, from string, coin sdk.Coin, memo string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.logFunction()
	amount := coin.Amount.String()
	if k.logConfig.DoubleEntry {
		logFunc("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
		logFunc("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
	}
	if k.logConfig.SimpleEntry {
		logFunc(fmt.Sprintf("TransactionEntry to=%s from=%s amount=%20s %-10s height=%8d memo=%s", padTo(to, 64), padTo(from, 64), amount, coin.Denom, height, memo))
	}
}

func (k Keeper) logFunction() func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(k.logConfig.LogLevel) {
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

// padTo truncates or pads s so audit columns line up
func padTo(s string, size int) string {
	if len(s) > size {
		return s[:size]
	}
	return s + strings.Repeat(" ", size-len(s))
}
