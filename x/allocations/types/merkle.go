package types

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/crypto/merkle"
	"github.com/cometbft/cometbft/crypto/tmhash"
)

// MerkleRoot summarizes the off-chain evidence backing a claim. The module
// records it and never interprets it.
type MerkleRoot [tmhash.Size]byte

// ParseMerkleRoot decodes a hex encoded root, with or without a 0x prefix.
func ParseMerkleRoot(s string) (MerkleRoot, error) {
	var root MerkleRoot
	bz, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return root, errorsmod.Wrapf(ErrInvalidMerkleRoot, "not hex: %s", err)
	}
	if len(bz) != tmhash.Size {
		return root, errorsmod.Wrapf(ErrInvalidMerkleRoot, "expected %d bytes, got %d", tmhash.Size, len(bz))
	}
	copy(root[:], bz)
	return root, nil
}

// ComputeMerkleRoot builds the RFC-6962 root of the given evidence leaves.
func ComputeMerkleRoot(leaves [][]byte) MerkleRoot {
	var root MerkleRoot
	copy(root[:], merkle.HashFromByteSlices(leaves))
	return root
}

func (r MerkleRoot) String() string {
	return hex.EncodeToString(r[:])
}

func (r MerkleRoot) Bytes() []byte {
	return r[:]
}

func (r MerkleRoot) IsZero() bool {
	return r == MerkleRoot{}
}

func (r MerkleRoot) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *MerkleRoot) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseMerkleRoot(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ProveLeaf returns the inclusion proof of leaves[index] under
// ComputeMerkleRoot(leaves).
func ProveLeaf(leaves [][]byte, index int) (*merkle.Proof, error) {
	if index < 0 || index >= len(leaves) {
		return nil, errorsmod.Wrapf(ErrInvalidMerkleRoot, "leaf %d out of range [0, %d)", index, len(leaves))
	}
	_, proofs := merkle.ProofsFromByteSlices(leaves)
	return proofs[index], nil
}

// VerifyLeaf checks that leaf is committed to by r.
func (r MerkleRoot) VerifyLeaf(proof *merkle.Proof, leaf []byte) error {
	if proof == nil {
		return errorsmod.Wrap(ErrInvalidMerkleRoot, "missing proof")
	}
	if err := proof.Verify(r[:], leaf); err != nil {
		return errorsmod.Wrap(ErrInvalidMerkleRoot, err.Error())
	}
	return nil
}
