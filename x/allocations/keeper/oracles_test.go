package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/testutil/sample"
)

func (s *KeeperTestSuite) TestInitializeMembers() {
	a, b := sample.Address(), sample.Address()

	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a, b}))
	s.Require().Equal([]sdk.AccAddress{a, b}, s.k.GetOracles(s.ctx))
	s.Require().True(s.k.IsOracle(s.ctx, a))
	s.Require().True(s.k.IsOracle(s.ctx, b))
	s.Require().False(s.k.IsOracle(s.ctx, sample.Address()))
}

func (s *KeeperTestSuite) TestInitializeMembers_Empty() {
	s.Require().NoError(s.k.InitializeMembers(s.ctx, nil))
	s.Require().Empty(s.k.GetOracles(s.ctx))
	s.Require().False(s.k.IsOracle(s.ctx, sample.Address()))
}

func (s *KeeperTestSuite) TestInitializeMembers_SecondCallOverwrites() {
	a, b, c := sample.Address(), sample.Address(), sample.Address()

	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a, b}))
	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{c}))
	s.Require().Equal([]sdk.AccAddress{c}, s.k.GetOracles(s.ctx))
	s.Require().False(s.k.IsOracle(s.ctx, a))
}

func (s *KeeperTestSuite) TestInitializeMembers_KeepsDuplicates() {
	a := sample.Address()

	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a, a}))
	s.Require().Len(s.k.GetOracles(s.ctx), 2)
	s.Require().True(s.k.IsOracle(s.ctx, a))
}

func (s *KeeperTestSuite) TestChangeMembersSorted_ReplacesSet() {
	a, b, c := sample.Address(), sample.Address(), sample.Address()
	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a, b}))

	s.Require().NoError(s.k.ChangeMembersSorted(s.ctx, []sdk.AccAddress{c}, []sdk.AccAddress{a}, []sdk.AccAddress{b, c}))
	s.Require().Equal([]sdk.AccAddress{b, c}, s.k.GetOracles(s.ctx))
	s.Require().False(s.k.IsOracle(s.ctx, a))
	s.Require().True(s.k.IsOracle(s.ctx, c))
}

func (s *KeeperTestSuite) TestChangeMembersSorted_IgnoresDeltas() {
	a, b, c := sample.Address(), sample.Address(), sample.Address()
	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a}))

	// deltas that contradict the new set are not applied
	s.Require().NoError(s.k.ChangeMembersSorted(s.ctx, []sdk.AccAddress{c}, []sdk.AccAddress{b}, []sdk.AccAddress{a, b}))
	s.Require().Equal([]sdk.AccAddress{a, b}, s.k.GetOracles(s.ctx))
	s.Require().False(s.k.IsOracle(s.ctx, c))
}

func (s *KeeperTestSuite) TestChangeMembersSorted_ShrinksSet() {
	a, b, c := sample.Address(), sample.Address(), sample.Address()
	s.Require().NoError(s.k.InitializeMembers(s.ctx, []sdk.AccAddress{a, b, c}))

	s.Require().NoError(s.k.ChangeMembersSorted(s.ctx, nil, []sdk.AccAddress{b, c}, []sdk.AccAddress{a}))
	s.Require().Equal([]sdk.AccAddress{a}, s.k.GetOracles(s.ctx))
}
