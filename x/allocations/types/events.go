package types

// Event types
const (
	EventTypeRewardAllocated = "reward_allocated"
)

// Event attribute keys
const (
	AttributeKeyRecipient  = "recipient"
	AttributeKeyAmount     = "amount"
	AttributeKeyMerkleRoot = "merkle_root"
	AttributeKeyOracle     = "oracle"
)
