package types_test

import (
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/allocnet/chain/testutil/sample"
	"github.com/allocnet/chain/x/allocations/types"
)

func TestMsgInitializeMembers_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *types.MsgInitializeMembers
		err  error
	}{
		{
			name: "invalid authority",
			msg:  types.NewMsgInitializeMembers("invalid_address", nil),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "invalid member",
			msg:  types.NewMsgInitializeMembers(sample.AccAddress(), []string{sample.AccAddress(), "invalid_address"}),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "empty set",
			msg:  types.NewMsgInitializeMembers(sample.AccAddress(), nil),
		},
		{
			name: "valid",
			msg:  types.NewMsgInitializeMembers(sample.AccAddress(), []string{sample.AccAddress()}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgChangeMembers_ValidateBasic(t *testing.T) {
	member := sample.AccAddress()
	tests := []struct {
		name string
		msg  *types.MsgChangeMembers
		err  error
	}{
		{
			name: "invalid authority",
			msg:  types.NewMsgChangeMembers("", nil, nil, nil),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "invalid incoming",
			msg:  types.NewMsgChangeMembers(sample.AccAddress(), []string{"x"}, nil, []string{member}),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "invalid outgoing",
			msg:  types.NewMsgChangeMembers(sample.AccAddress(), nil, []string{"x"}, []string{member}),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "deltas disagreeing with new set",
			msg:  types.NewMsgChangeMembers(sample.AccAddress(), []string{sample.AccAddress()}, nil, []string{member}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccAddressesFromBech32_KeepsOrderAndDuplicates(t *testing.T) {
	a, b := sample.AccAddress(), sample.AccAddress()

	addrs, err := types.AccAddressesFromBech32([]string{b, a, b})
	require.NoError(t, err)
	require.Len(t, addrs, 3)
	require.Equal(t, b, addrs[0].String())
	require.Equal(t, a, addrs[1].String())
	require.Equal(t, b, addrs[2].String())

	_, err = types.AccAddressesFromBech32([]string{a, "nope"})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}
