package mnemonic

import (
	"errors"
	"fmt"
)

// Redacted stands in for phrase material wherever a value would otherwise be
// shown. Phrases never appear in errors or logs.
const Redacted = "[ REDACTED ]"

var (
	ErrInvalidEntropySize    = errors.New("invalid entropy size")
	ErrInvalidMnemonicLength = errors.New("invalid mnemonic length")
	ErrInvalidMnemonicWord   = errors.New("invalid mnemonic word")
	ErrInvalidChecksum       = errors.New("invalid mnemonic checksum")
	ErrNilMnemonic           = errors.New("nil mnemonic")
	ErrUninitialized         = errors.New("mnemonic not built by a constructor")
)

// errUninitialized is the panic value for methods called on a zero Mnemonic.
var errUninitialized = fmt.Errorf("mnemonic: %w", ErrUninitialized)

// WordError reports a word that is not in the word list.
type WordError struct {
	// Position is the 0-based index of the word in the phrase.
	Position int
}

func (e *WordError) Error() string {
	return fmt.Sprintf("invalid mnemonic word at index %d", e.Position)
}

// Is reports whether target is ErrInvalidMnemonicWord.
func (e *WordError) Is(target error) bool {
	return target == ErrInvalidMnemonicWord
}

// ChecksumError reports a phrase whose checksum bits do not match its entropy.
type ChecksumError struct {
	Words int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid mnemonic checksum (%d words)", e.Words)
}

// Is reports whether target is ErrInvalidChecksum.
func (e *ChecksumError) Is(target error) bool {
	return target == ErrInvalidChecksum
}

// isPhraseError reports whether err is one of the phrase validation failures.
func isPhraseError(err error) bool {
	return errors.Is(err, ErrInvalidMnemonicLength) ||
		errors.Is(err, ErrInvalidMnemonicWord) ||
		errors.Is(err, ErrInvalidChecksum)
}
