// Package mnemonic converts between entropy and BIP-39 mnemonic phrases and
// derives wallet seeds from them.
//
// Entropy of 16 to 32 bytes (a multiple of 4) maps to a phrase of 12 to 24
// words (a multiple of 3). Each word carries 11 bits; the trailing
// len(entropy)/4 bits of the last word are the leading bits of
// SHA-256(entropy) and act as a checksum.
//
// Every operation takes an optional wordlist.Wordlist; nil selects the
// English list.
package mnemonic

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Entropy and phrase bounds.
const (
	MinEntropySize = 16
	MaxEntropySize = 32
	MinWords       = 12
	MaxWords       = 24

	wordBits = 11
)

func resolve(wl wordlist.Wordlist) wordlist.Wordlist {
	if wl == nil {
		return wordlist.Default()
	}
	return wl
}

func validEntropySize(n int) bool {
	return n%4 == 0 && n >= MinEntropySize && n <= MaxEntropySize
}

// upperMask returns a byte with the top n bits set.
func upperMask(n int) byte {
	return byte(0xff << (8 - n))
}

func entropyToMnemonic(entropy []byte, wl wordlist.Wordlist) (string, error) {
	if !validEntropySize(len(entropy)) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidEntropySize, len(entropy))
	}

	checksumBits := len(entropy) / 4
	count := (len(entropy)*8 + checksumBits) / wordBits
	indices := make([]uint32, count)

	cur := newBitCursor(entropy)
	for i := 0; i < count-1; i++ {
		indices[i] = cur.readBits(wordBits)
	}
	// The last word holds the final entropy bits followed by the checksum.
	last := cur.readBits(wordBits - checksumBits)
	checksum := crypto.SHA256(entropy).TopBits(checksumBits)
	indices[count-1] = last<<checksumBits | uint32(checksum)

	words := make([]string, count)
	for i, idx := range indices {
		words[i] = wl.Word(int(idx))
	}
	return wl.Join(words), nil
}

func mnemonicToEntropy(phrase string, wl wordlist.Wordlist) ([]byte, error) {
	words := wl.Split(phrase)
	n := len(words)
	if n%3 != 0 || n < MinWords || n > MaxWords {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidMnemonicLength, n)
	}

	buf := make([]byte, (n*wordBits+7)/8)
	cur := newBitCursor(buf)
	for i, w := range words {
		idx := wl.WordIndex(w)
		if idx < 0 || idx >= wordlist.Size {
			return nil, &WordError{Position: i}
		}
		cur.writeBits(uint32(idx), wordBits)
	}

	entropyBytes := 4 * n / 3
	checksumBits := n / 3
	mask := upperMask(checksumBits)
	want := crypto.SHA256(buf[:entropyBytes])[0] & mask
	if got := buf[len(buf)-1] & mask; got != want {
		return nil, &ChecksumError{Words: n}
	}

	entropy := make([]byte, entropyBytes)
	copy(entropy, buf)
	return entropy, nil
}

// EntropyToPhrase encodes entropy (raw bytes or 0x-prefixed hex) as a phrase.
func EntropyToPhrase[T types.BytesLike](entropy T, wl wordlist.Wordlist) (string, error) {
	b, err := types.GetBytes(entropy)
	if err != nil {
		return "", fmt.Errorf("entropy: %w", err)
	}
	return entropyToMnemonic(b, resolve(wl))
}

// PhraseToEntropy decodes and checksum-verifies phrase, returning its entropy.
func PhraseToEntropy(phrase string, wl wordlist.Wordlist) ([]byte, error) {
	return mnemonicToEntropy(phrase, resolve(wl))
}

// IsValidMnemonic reports whether phrase decodes with a valid checksum.
// Only phrase validation failures yield false; anything else is a bug and
// panics.
func IsValidMnemonic(phrase string, wl wordlist.Wordlist) bool {
	_, err := mnemonicToEntropy(phrase, resolve(wl))
	if err == nil {
		return true
	}
	if isPhraseError(err) {
		log.Mnemonic.Debug().Err(err).Msg("Mnemonic rejected")
		return false
	}
	panic(fmt.Sprintf("mnemonic: unexpected validation error: %v", err))
}
