package keeper_test

import (
	"context"
	"errors"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/allocnet/chain/testutil/sample"
	"github.com/allocnet/chain/x/allocations/types"
)

func (s *KeeperTestSuite) setupPool(coinsLeft int64, oracles ...sdk.AccAddress) {
	s.Require().NoError(s.k.SetCoinsLeft(s.ctx, math.NewInt(coinsLeft)))
	s.Require().NoError(s.k.InitializeMembers(s.ctx, oracles))
}

func (s *KeeperTestSuite) expectDeposit(recipient sdk.AccAddress, amount int64) *gomock.Call {
	reward := sdk.NewInt64Coin(types.DefaultRewardDenom, amount)
	return s.currency.EXPECT().
		DepositCreating(gomock.Any(), recipient, reward).
		Return(types.NewPositiveImbalance(reward), nil)
}

func (s *KeeperTestSuite) rewardEvents() []sdk.Event {
	var out []sdk.Event
	for _, event := range s.ctx.EventManager().Events() {
		if event.Type == types.EventTypeRewardAllocated {
			out = append(out, event)
		}
	}
	return out
}

func (s *KeeperTestSuite) TestSubmitReward_Success() {
	oracle := sample.Address()
	recipient := sample.Address()
	root := sample.MerkleRoot()
	s.setupPool(200, oracle)

	s.expectDeposit(recipient, 100).Times(1)
	s.rewardSink.EXPECT().
		OnUnbalanced(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, imbalance types.PositiveImbalance) error {
			s.Require().True(imbalance.Peek().Equal(sdk.NewCoins(sdk.NewInt64Coin(types.DefaultRewardDenom, 100))))
			return nil
		}).
		Times(1)

	err := s.k.SubmitReward(s.ctx, oracle, root, recipient, math.NewInt(100))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(100), s.k.GetCoinsLeft(s.ctx))

	events := s.rewardEvents()
	s.Require().Len(events, 1)
	attrs := map[string]string{}
	for _, attr := range events[0].Attributes {
		attrs[attr.Key] = attr.Value
	}
	s.Require().Equal(recipient.String(), attrs[types.AttributeKeyRecipient])
	s.Require().Equal("100", attrs[types.AttributeKeyAmount])
	s.Require().Equal(root.String(), attrs[types.AttributeKeyMerkleRoot])
	s.Require().Equal(oracle.String(), attrs[types.AttributeKeyOracle])
}

func (s *KeeperTestSuite) TestSubmitReward_ExactBudget() {
	oracle := sample.Address()
	recipient := sample.Address()
	s.setupPool(200, oracle)

	s.expectDeposit(recipient, 200).Times(1)
	s.rewardSink.EXPECT().OnUnbalanced(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	s.Require().NoError(s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(200)))
	s.Require().True(s.k.GetCoinsLeft(s.ctx).IsZero())

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrTooManyCoinsToAllocate)
}

func (s *KeeperTestSuite) TestSubmitReward_ConsecutiveClaims() {
	oracle := sample.Address()
	recipient := sample.Address()
	s.setupPool(200, oracle)

	s.expectDeposit(recipient, 50).Times(2)
	s.rewardSink.EXPECT().OnUnbalanced(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.Require().NoError(s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(50)))
	s.Require().NoError(s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(50)))
	s.Require().Equal(math.NewInt(100), s.k.GetCoinsLeft(s.ctx))
	s.Require().Len(s.rewardEvents(), 2)
}

func (s *KeeperTestSuite) TestSubmitReward_NotOracle() {
	oracle := sample.Address()
	s.setupPool(200, oracle)

	err := s.k.SubmitReward(s.ctx, sample.Address(), sample.MerkleRoot(), sample.Address(), math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrOracleAccessDenied)
	s.Require().Equal(math.NewInt(200), s.k.GetCoinsLeft(s.ctx))
	s.Require().Empty(s.rewardEvents())
}

func (s *KeeperTestSuite) TestSubmitReward_NotOracleTakesPrecedence() {
	s.setupPool(0)

	err := s.k.SubmitReward(s.ctx, sample.Address(), sample.MerkleRoot(), sample.Address(), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrOracleAccessDenied)
}

func (s *KeeperTestSuite) TestSubmitReward_ZeroAllocation() {
	oracle := sample.Address()
	s.setupPool(200, oracle)

	for _, amount := range []math.Int{math.ZeroInt(), math.NewInt(-5), {}} {
		err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), sample.Address(), amount)
		s.Require().ErrorIs(err, types.ErrZeroAllocation)
	}
	s.Require().Equal(math.NewInt(200), s.k.GetCoinsLeft(s.ctx))
	s.Require().Empty(s.rewardEvents())
}

func (s *KeeperTestSuite) TestSubmitReward_ZeroAllocationBeforeBudget() {
	oracle := sample.Address()
	s.setupPool(0, oracle)

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), sample.Address(), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrZeroAllocation)
}

func (s *KeeperTestSuite) TestSubmitReward_TooManyCoins() {
	oracle := sample.Address()
	s.setupPool(200, oracle)

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), sample.Address(), math.NewInt(201))
	s.Require().ErrorIs(err, types.ErrTooManyCoinsToAllocate)
	s.Require().Equal(math.NewInt(200), s.k.GetCoinsLeft(s.ctx))
	s.Require().Empty(s.rewardEvents())
}

func (s *KeeperTestSuite) TestSubmitReward_EmptyBudget() {
	oracle := sample.Address()
	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{oracle}))

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), sample.Address(), math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrTooManyCoinsToAllocate)
}

func (s *KeeperTestSuite) TestSubmitReward_DepositFailureRollsBack() {
	oracle := sample.Address()
	recipient := sample.Address()
	s.setupPool(200, oracle)

	s.currency.EXPECT().
		DepositCreating(gomock.Any(), recipient, gomock.Any()).
		Return(types.ZeroImbalance(), errors.New("mint disabled")).
		Times(1)

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrDepositFailed)
	s.Require().Equal(math.NewInt(200), s.k.GetCoinsLeft(s.ctx))
	s.Require().Empty(s.rewardEvents())
}

func (s *KeeperTestSuite) TestSubmitReward_SinkFailureRollsBack() {
	oracle := sample.Address()
	recipient := sample.Address()
	s.setupPool(200, oracle)

	s.expectDeposit(recipient, 100).Times(1)
	s.rewardSink.EXPECT().
		OnUnbalanced(gomock.Any(), gomock.Any()).
		Return(errors.New("treasury closed")).
		Times(1)

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), recipient, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrRewardSinkFailed)
	s.Require().Equal(math.NewInt(200), s.k.GetCoinsLeft(s.ctx))
	s.Require().Empty(s.rewardEvents())
}

func (s *KeeperTestSuite) TestSubmitReward_RemovedOracleRejected() {
	oracle := sample.Address()
	other := sample.Address()
	s.setupPool(200, oracle)

	s.Require().NoError(s.k.ChangeMembersSorted(s.ctx, []sdk.AccAddress{other}, []sdk.AccAddress{oracle}, []sdk.AccAddress{other}))

	err := s.k.SubmitReward(s.ctx, oracle, sample.MerkleRoot(), sample.Address(), math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrOracleAccessDenied)
}
