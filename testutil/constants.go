package testutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bech32Addr returns a valid bech32-encoded account address derived from seed.
func Bech32Addr(seed int) string {
	return AccAddr(seed).String()
}

// AccAddr returns a deterministic account address derived from seed.
func AccAddr(seed int) sdk.AccAddress {
	h := sha256.Sum256([]byte(fmt.Sprintf("addr-seed-%d", seed)))
	priv := secp256k1.PrivKey{Key: h[:]}
	return sdk.AccAddress(priv.PubKey().Address())
}
