package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/allocnet/chain/x/allocations/types"
)

func (k msgServer) SubmitReward(goCtx context.Context, msg *types.MsgSubmitReward) (*types.MsgSubmitRewardResponse, error) {
	oracle, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrUnauthenticated, "origin %q is not a signed account (%s)", msg.Creator, err)
	}

	merkleRoot, err := types.ParseMerkleRoot(msg.MerkleRoot)
	if err != nil {
		return nil, err
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address (%s)", err)
	}

	if err := k.Keeper.SubmitReward(goCtx, oracle, merkleRoot, recipient, msg.Amount); err != nil {
		k.LogWarn("Reward claim rejected", types.Claims, "oracle", msg.Creator, "recipient", msg.Recipient, "error", err)
		return nil, err
	}

	return &types.MsgSubmitRewardResponse{}, nil
}
