// Package crypto provides the hash and key-derivation primitives used by the
// mnemonic codec.
package crypto

import (
	"crypto/sha256"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/zeebo/blake3"
)

// SHA256 computes the SHA-256 digest of data. BIP-39 checksums are taken
// from this digest.
func SHA256(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// Hash computes a BLAKE3-256 hash of the input data.
// Used for non-secret identifiers such as word list fingerprints.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}
