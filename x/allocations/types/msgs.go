package types

import "context"

// MsgServer is the transaction surface of the allocations module.
type MsgServer interface {
	SubmitReward(context.Context, *MsgSubmitReward) (*MsgSubmitRewardResponse, error)
	InitializeMembers(context.Context, *MsgInitializeMembers) (*MsgInitializeMembersResponse, error)
	ChangeMembers(context.Context, *MsgChangeMembers) (*MsgChangeMembersResponse, error)
}
