package mnemonic

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"github.com/tyler-smith/go-bip39"
)

// DefaultEntropyBits is the entropy size for 24-word mnemonics.
const DefaultEntropyBits = 256

// Generate creates a mnemonic from bits of fresh random entropy. bits must be
// 128, 160, 192, 224 or 256.
func Generate(bits int, password string, wl wordlist.Wordlist) (*Mnemonic, error) {
	if bits%8 != 0 || !validEntropySize(bits/8) {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidEntropySize, bits)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	m, err := FromEntropy(entropy, password, wl)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return m, nil
}
