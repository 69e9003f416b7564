package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// Supported PBKDF2 pseudo-random functions.
const (
	HashSHA256 = "sha256"
	HashSHA512 = "sha512"
)

var (
	ErrUnsupportedHash = errors.New("unsupported pbkdf2 hash")
	ErrInvalidKDFParam = errors.New("invalid pbkdf2 parameter")
)

// PBKDF2 derives keyLen bytes from password and salt using HMAC over the
// named hash function.
func PBKDF2(password, salt []byte, iterations, keyLen int, algo string) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations %d", ErrInvalidKDFParam, iterations)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: key length %d", ErrInvalidKDFParam, keyLen)
	}
	var h func() hash.Hash
	switch algo {
	case HashSHA256:
		h = sha256.New
	case HashSHA512:
		h = sha512.New
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, algo)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, h), nil
}
