package mnemonic

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"golang.org/x/text/unicode/norm"
)

// Seed derivation parameters fixed by BIP-39.
const (
	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	// SeedIterations is the PBKDF2 round count.
	SeedIterations = 2048

	seedSaltPrefix = "mnemonic"
)

// ComputeSeed derives the 64-byte wallet seed:
// PBKDF2-HMAC-SHA512(NFKD(phrase), NFKD("mnemonic" + password), 2048 rounds).
//
// It panics if m was not built by FromPhrase, FromEntropy or Generate.
func (m *Mnemonic) ComputeSeed() []byte {
	if !m.initialized() {
		panic(errUninitialized)
	}
	defer log.Benchmark("compute_seed")()

	password := []byte(norm.NFKD.String(m.phrase))
	salt := []byte(norm.NFKD.String(seedSaltPrefix + m.password))
	seed, err := crypto.PBKDF2(password, salt, SeedIterations, SeedSize, crypto.HashSHA512)
	if err != nil {
		// Parameters are constants.
		panic(err)
	}
	return seed
}

// Seed validates phrase and derives its seed with the given passphrase.
func Seed(phrase, password string, wl wordlist.Wordlist) ([]byte, error) {
	m, err := FromPhrase(phrase, password, wl)
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	return m.ComputeSeed(), nil
}
