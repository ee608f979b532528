package ledger

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/internal/membank"
)

// Claim is an oracle's reward submission. Oracle stands for the account that
// signed the transaction.
type Claim struct {
	Oracle     string   `json:"oracle"`
	MerkleRoot string   `json:"merkle_root"`
	Recipient  string   `json:"recipient"`
	Amount     math.Int `json:"amount"`
}

// MemberChange is a membership authority update of the oracle set.
type MemberChange struct {
	Incoming   []string `json:"incoming,omitempty"`
	Outgoing   []string `json:"outgoing,omitempty"`
	NewMembers []string `json:"new_members"`
}

// Step is one entry of a replay file.
type Step struct {
	SubmitReward  *Claim        `json:"submit_reward,omitempty"`
	ChangeMembers *MemberChange `json:"change_members,omitempty"`
}

type Outcome struct {
	Height    int64  `json:"height"`
	Step      Step   `json:"step"`
	Accepted  bool   `json:"accepted"`
	Events    int    `json:"events"`
	Codespace string `json:"codespace,omitempty"`
	Code      uint32 `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Report struct {
	Outcomes      []Outcome         `json:"outcomes,omitempty"`
	Accepted      int               `json:"accepted"`
	Rejected      int               `json:"rejected"`
	CoinsLeft     math.Int          `json:"coins_left"`
	Denom         string            `json:"denom"`
	Supply        sdk.Coin          `json:"supply"`
	Circulating   math.Int          `json:"circulating"`
	ModuleBalance sdk.Coin          `json:"module_balance"`
	Oracles       []string          `json:"oracles"`
	Balances      []membank.Balance `json:"balances"`
}
