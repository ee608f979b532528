package ledger_test

import (
	"context"
	"sync"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/allocnet/chain/internal/ledger"
	"github.com/allocnet/chain/testutil/sample"
	"github.com/allocnet/chain/x/allocations/types"
	bookkeeper "github.com/allocnet/chain/x/bookkeeper/keeper"
)

func newLedger(t *testing.T, coinsLeft int64, oracles ...string) *ledger.Ledger {
	genesis := types.DefaultGenesis()
	genesis.CoinsLeft = math.NewInt(coinsLeft)
	genesis.Oracles = oracles
	l, err := ledger.New(log.NewNopLogger(), *genesis, bookkeeper.DefaultLogConfig())
	require.NoError(t, err)
	return l
}

func claim(oracle, recipient string, amount int64) ledger.Step {
	return ledger.Step{SubmitReward: &ledger.Claim{
		Oracle:     oracle,
		MerkleRoot: sample.MerkleRoot().String(),
		Recipient:  recipient,
		Amount:     math.NewInt(amount),
	}}
}

func TestReplay_BudgetScenario(t *testing.T) {
	oracle := sample.AccAddress()
	target := sample.Address()
	l := newLedger(t, 200, oracle)

	report, err := l.Replay(context.Background(), []ledger.Step{
		claim(oracle, target.String(), 100),
		claim(oracle, target.String(), 101),
		claim(sample.AccAddress(), target.String(), 1),
		claim(oracle, target.String(), 0),
	})
	require.NoError(t, err)

	require.Equal(t, 1, report.Accepted)
	require.Equal(t, 3, report.Rejected)
	require.Equal(t, "100", report.CoinsLeft.String())
	require.Equal(t, int64(100), l.Balance(target).Int64())
	require.Equal(t, int64(100), report.Supply.Amount.Int64())
	require.Equal(t, int64(100), report.Circulating.Int64())
	require.True(t, report.ModuleBalance.IsZero())

	require.True(t, report.Outcomes[0].Accepted)
	require.Equal(t, 1, report.Outcomes[0].Events)

	require.Equal(t, types.ModuleName, report.Outcomes[1].Codespace)
	require.Equal(t, types.ErrTooManyCoinsToAllocate.ABCICode(), report.Outcomes[1].Code)
	require.Equal(t, types.ErrOracleAccessDenied.ABCICode(), report.Outcomes[2].Code)
	require.Equal(t, types.ErrZeroAllocation.ABCICode(), report.Outcomes[3].Code)
	for _, outcome := range report.Outcomes[1:] {
		require.Zero(t, outcome.Events)
	}
}

func TestReplay_MembershipChange(t *testing.T) {
	first, second := sample.AccAddress(), sample.AccAddress()
	recipient := sample.AccAddress()
	l := newLedger(t, 50, first)

	report, err := l.Replay(context.Background(), []ledger.Step{
		{ChangeMembers: &ledger.MemberChange{Incoming: []string{second}, Outgoing: []string{first}, NewMembers: []string{second}}},
		claim(first, recipient, 10),
		claim(second, recipient, 10),
	})
	require.NoError(t, err)

	require.Equal(t, []string{second}, report.Oracles)
	require.True(t, report.Outcomes[0].Accepted)
	require.False(t, report.Outcomes[1].Accepted)
	require.True(t, report.Outcomes[2].Accepted)
	require.Equal(t, "40", report.CoinsLeft.String())
}

func TestApply_UnsignedClaimIsUnauthenticated(t *testing.T) {
	oracle := sample.AccAddress()
	l := newLedger(t, 50, oracle)

	for _, creator := range []string{"", "not-an-address"} {
		outcome, err := l.Apply(context.Background(), claim(creator, sample.AccAddress(), 10))
		require.NoError(t, err)
		require.False(t, outcome.Accepted)
		require.Equal(t, sdkerrors.RootCodespace, outcome.Codespace)
		require.Equal(t, sdkerrors.ErrUnauthorized.ABCICode(), outcome.Code)
		require.Zero(t, outcome.Events)
	}
	require.Equal(t, "50", l.CoinsLeft().String())
}

func TestApply_MalformedStep(t *testing.T) {
	l := newLedger(t, 10)

	_, err := l.Apply(context.Background(), ledger.Step{})
	require.Error(t, err)

	oracle := sample.AccAddress()
	_, err = l.Apply(context.Background(), ledger.Step{
		SubmitReward:  claim(oracle, oracle, 1).SubmitReward,
		ChangeMembers: &ledger.MemberChange{},
	})
	require.Error(t, err)
}

func TestNew_InvalidGenesis(t *testing.T) {
	genesis := types.DefaultGenesis()
	genesis.CoinsLeft = math.NewInt(-1)

	_, err := ledger.New(log.NewNopLogger(), *genesis, bookkeeper.DefaultLogConfig())
	require.Error(t, err)
}

func TestApply_ConcurrentClaimsNeverOverspend(t *testing.T) {
	oracle := sample.AccAddress()
	l := newLedger(t, 100, oracle)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := l.Apply(context.Background(), claim(oracle, sample.AccAddress(), 7))
			require.NoError(t, err)
			if outcome.Accepted {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 14, accepted)
	require.Equal(t, int64(2), l.CoinsLeft().Int64())
	require.Equal(t, int64(98), l.Report().Supply.Amount.Int64())
}
