package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgSubmitReward is an oracle's claim that Recipient earned Amount, backed
// by the evidence summarized in MerkleRoot.
type MsgSubmitReward struct {
	Creator    string   `json:"creator"`
	MerkleRoot string   `json:"merkle_root"`
	Recipient  string   `json:"recipient"`
	Amount     math.Int `json:"amount"`
}

type MsgSubmitRewardResponse struct{}

func NewMsgSubmitReward(creator string, merkleRoot MerkleRoot, recipient string, amount math.Int) *MsgSubmitReward {
	return &MsgSubmitReward{
		Creator:    creator,
		MerkleRoot: merkleRoot.String(),
		Recipient:  recipient,
		Amount:     amount,
	}
}

func (msg *MsgSubmitReward) GetSigners() []string {
	return []string{msg.Creator}
}

// ValidateBasic only checks formats. Amount positivity is left to the keeper
// so that an oracle check always runs first.
func (msg *MsgSubmitReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrUnauthenticated, "invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address (%s)", err)
	}
	if _, err := ParseMerkleRoot(msg.MerkleRoot); err != nil {
		return err
	}
	if msg.Amount.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be set")
	}
	return nil
}
