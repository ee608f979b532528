// Package ledger runs the allocations module outside of a node. It mounts the
// module store on an in-memory database, applies a genesis state and replays
// oracle claims and membership changes against it.
package ledger

import (
	"context"
	"fmt"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/allocnet/chain/internal/membank"
	"github.com/allocnet/chain/x/allocations/keeper"
	allocations "github.com/allocnet/chain/x/allocations/module"
	"github.com/allocnet/chain/x/allocations/types"
	bookkeeper "github.com/allocnet/chain/x/bookkeeper/keeper"
)

// Ledger is safe for concurrent use. Steps are applied one at a time in the
// order the callers acquire the lock.
type Ledger struct {
	mu sync.Mutex

	logger    log.Logger
	ctx       sdk.Context
	height    int64
	keeper    keeper.Keeper
	msgServer types.MsgServer
	bank      *membank.Bank
	authority string
}

// New validates genesis and builds a ledger initialized from it.
func New(logger log.Logger, genesis types.GenesisState, auditConfig bookkeeper.LogConfig) (*Ledger, error) {
	if err := genesis.Validate(); err != nil {
		return nil, fmt.Errorf("invalid genesis: %w", err)
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	bank := membank.New(types.ModuleName)
	books := bookkeeper.NewKeeper(logger, bank, auditConfig)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		logger,
		authority,
		keeper.NewBankCurrency(books),
		keeper.NoopRewardSink{},
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{ChainID: "allocations-offline"}, false, logger)
	allocations.InitGenesis(ctx, k, genesis)

	return &Ledger{
		logger:    logger,
		ctx:       ctx,
		keeper:    k,
		msgServer: keeper.NewMsgServerImpl(k),
		bank:      bank,
		authority: authority,
	}, nil
}

// Authority is the account allowed to change the oracle set.
func (l *Ledger) Authority() string {
	return l.authority
}

// Apply executes one step and reports what happened. A rejected step is not
// an error; err is only returned for malformed steps.
func (l *Ledger) Apply(_ context.Context, step Step) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.height++
	ctx := l.ctx.WithBlockHeight(l.height).WithEventManager(sdk.NewEventManager())

	var err error
	switch {
	case step.SubmitReward != nil && step.ChangeMembers == nil:
		err = l.submitReward(ctx, *step.SubmitReward)
	case step.ChangeMembers != nil && step.SubmitReward == nil:
		err = l.changeMembers(ctx, *step.ChangeMembers)
	default:
		return Outcome{}, fmt.Errorf("step at height %d must set exactly one of submit_reward or change_members", l.height)
	}

	outcome := Outcome{Height: l.height, Step: step, Accepted: err == nil, Events: len(ctx.EventManager().Events())}
	if err != nil {
		outcome.Codespace, outcome.Code, _ = errorsmod.ABCIInfo(err, false)
		outcome.Error = err.Error()
	}
	return outcome, nil
}

// Replay applies steps in order and returns the final report.
func (l *Ledger) Replay(ctx context.Context, steps []Step) (Report, error) {
	outcomes := make([]Outcome, 0, len(steps))
	for i, step := range steps {
		outcome, err := l.Apply(ctx, step)
		if err != nil {
			return Report{}, fmt.Errorf("step %d: %w", i, err)
		}
		outcomes = append(outcomes, outcome)
	}
	report := l.Report()
	report.Outcomes = outcomes
	for _, outcome := range outcomes {
		if outcome.Accepted {
			report.Accepted++
		} else {
			report.Rejected++
		}
	}
	return report, nil
}

// Report summarizes the current state without any step outcomes.
func (l *Ledger) Report() Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	denom := l.keeper.GetParams(l.ctx).RewardDenom
	oracles := l.keeper.GetOracles(l.ctx)
	out := make([]string, len(oracles))
	for i, oracle := range oracles {
		out[i] = oracle.String()
	}
	return Report{
		CoinsLeft:     l.keeper.GetCoinsLeft(l.ctx),
		Denom:         denom,
		Supply:        l.bank.GetSupply(denom),
		Circulating:   l.bank.TotalBalance(denom),
		ModuleBalance: l.bank.GetModuleBalance(types.ModuleName, denom),
		Oracles:       out,
		Balances:      l.bank.Balances(),
	}
}

// Balance returns the reward balance of addr.
func (l *Ledger) Balance(addr sdk.AccAddress) math.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bank.GetBalance(addr, l.keeper.GetParams(l.ctx).RewardDenom).Amount
}

// CoinsLeft returns the unallocated part of the reward pool.
func (l *Ledger) CoinsLeft() math.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.keeper.GetCoinsLeft(l.ctx)
}

func (l *Ledger) submitReward(ctx sdk.Context, claim Claim) error {
	msg := &types.MsgSubmitReward{
		Creator:    claim.Oracle,
		MerkleRoot: claim.MerkleRoot,
		Recipient:  claim.Recipient,
		Amount:     claim.Amount,
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	_, err := l.msgServer.SubmitReward(ctx, msg)
	return err
}

func (l *Ledger) changeMembers(ctx sdk.Context, change MemberChange) error {
	msg := types.NewMsgChangeMembers(l.authority, change.Incoming, change.Outgoing, change.NewMembers)
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	_, err := l.msgServer.ChangeMembers(ctx, msg)
	return err
}
