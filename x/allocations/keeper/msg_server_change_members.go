package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/allocnet/chain/x/allocations/types"
)

func (k msgServer) InitializeMembers(goCtx context.Context, msg *types.MsgInitializeMembers) (*types.MsgInitializeMembersResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	members, err := types.AccAddressesFromBech32(msg.Members)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.InitializeMembers(goCtx, members); err != nil {
		return nil, err
	}

	return &types.MsgInitializeMembersResponse{}, nil
}

func (k msgServer) ChangeMembers(goCtx context.Context, msg *types.MsgChangeMembers) (*types.MsgChangeMembersResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	incoming, err := types.AccAddressesFromBech32(msg.Incoming)
	if err != nil {
		return nil, err
	}
	outgoing, err := types.AccAddressesFromBech32(msg.Outgoing)
	if err != nil {
		return nil, err
	}
	newMembers, err := types.AccAddressesFromBech32(msg.NewMembers)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.ChangeMembersSorted(goCtx, incoming, outgoing, newMembers); err != nil {
		return nil, err
	}

	return &types.MsgChangeMembersResponse{}, nil
}
