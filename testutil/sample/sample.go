package sample

import (
	"crypto/rand"

	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/allocnet/chain/x/allocations/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	addr := pk.Address()
	return sdk.AccAddress(addr).String()
}

// Address returns a sample account address as bytes
func Address() sdk.AccAddress {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address())
}

// MerkleRoot returns a random 32-byte claim root
func MerkleRoot() types.MerkleRoot {
	var root types.MerkleRoot
	if _, err := rand.Read(root[:]); err != nil {
		panic(err)
	}
	return root
}
