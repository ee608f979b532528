package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgInitializeMembers sets the first oracle set.
type MsgInitializeMembers struct {
	Authority string   `json:"authority"`
	Members   []string `json:"members"`
}

type MsgInitializeMembersResponse struct{}

// MsgChangeMembers replaces the oracle set with NewMembers. Incoming and
// Outgoing describe the change and are informational.
type MsgChangeMembers struct {
	Authority  string   `json:"authority"`
	Incoming   []string `json:"incoming"`
	Outgoing   []string `json:"outgoing"`
	NewMembers []string `json:"new_members"`
}

type MsgChangeMembersResponse struct{}

func NewMsgInitializeMembers(authority string, members []string) *MsgInitializeMembers {
	return &MsgInitializeMembers{
		Authority: authority,
		Members:   members,
	}
}

func (msg *MsgInitializeMembers) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	return validateAddresses("member", msg.Members)
}

func NewMsgChangeMembers(authority string, incoming, outgoing, newMembers []string) *MsgChangeMembers {
	return &MsgChangeMembers{
		Authority:  authority,
		Incoming:   incoming,
		Outgoing:   outgoing,
		NewMembers: newMembers,
	}
}

func (msg *MsgChangeMembers) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	if err := validateAddresses("incoming", msg.Incoming); err != nil {
		return err
	}
	if err := validateAddresses("outgoing", msg.Outgoing); err != nil {
		return err
	}
	return validateAddresses("member", msg.NewMembers)
}

func validateAddresses(kind string, addresses []string) error {
	for _, address := range addresses {
		if _, err := sdk.AccAddressFromBech32(address); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", kind, err)
		}
	}
	return nil
}

// AccAddressesFromBech32 converts a list of bech32 strings, keeping order and
// duplicates.
func AccAddressesFromBech32(addresses []string) ([]sdk.AccAddress, error) {
	out := make([]sdk.AccAddress, 0, len(addresses))
	for _, address := range addresses {
		addr, err := sdk.AccAddressFromBech32(address)
		if err != nil {
			return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address %s (%s)", address, err)
		}
		out = append(out, addr)
	}
	return out, nil
}
