package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Data helpers operate on 0x-prefixed hex strings or raw bytes. Hex output is
// always lowercase with a 0x prefix.

var (
	ErrInvalidBytesLike = errors.New("invalid BytesLike value")
	ErrBufferOverrun    = errors.New("buffer overrun")
)

// BytesLike is raw data or its 0x-prefixed, even-length hex encoding.
type BytesLike interface {
	string | []byte
}

// BufferOverrunError reports an offset outside the available data.
type BufferOverrunError struct {
	Op     string
	Offset int
	Length int
}

func (e *BufferOverrunError) Error() string {
	return fmt.Sprintf("%s: offset %d exceeds data length %d", e.Op, e.Offset, e.Length)
}

// Is reports whether target is ErrBufferOverrun.
func (e *BufferOverrunError) Is(target error) bool {
	return target == ErrBufferOverrun
}

// GetBytes returns value as bytes. A byte slice is returned as-is; a string
// must be a 0x-prefixed hex string with an even number of digits.
func GetBytes[T BytesLike](value T) ([]byte, error) {
	return getBytes(value, false)
}

// GetBytesCopy is like GetBytes but never aliases the caller's slice.
func GetBytesCopy[T BytesLike](value T) ([]byte, error) {
	return getBytes(value, true)
}

func getBytes[T BytesLike](value T, copyBytes bool) ([]byte, error) {
	switch v := any(value).(type) {
	case []byte:
		if copyBytes {
			return append([]byte{}, v...), nil
		}
		return v, nil
	case string:
		if !IsHexData(v) {
			return nil, ErrInvalidBytesLike
		}
		b, err := hex.DecodeString(v[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBytesLike, err)
		}
		return b, nil
	}
	return nil, ErrInvalidBytesLike
}

// IsHexString reports whether s is 0x followed by any number of hex digits.
func IsHexString(s string) bool {
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsHexStringLen reports whether s is a hex string encoding exactly n bytes.
func IsHexStringLen(s string, n int) bool {
	return n >= 0 && len(s) == 2+2*n && IsHexString(s)
}

// IsHexData reports whether s is a hex string encoding whole bytes.
func IsHexData(s string) bool {
	return IsHexString(s) && len(s)%2 == 0
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Hexlify renders data as a lowercase 0x-prefixed hex string.
func Hexlify[T BytesLike](data T) (string, error) {
	b, err := GetBytes(data)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}

// Concat joins the byte values of datas into one hex string.
func Concat[T BytesLike](datas ...T) (string, error) {
	var sb strings.Builder
	sb.WriteString("0x")
	for i, d := range datas {
		b, err := GetBytes(d)
		if err != nil {
			return "", fmt.Errorf("concat item %d: %w", i, err)
		}
		sb.WriteString(hex.EncodeToString(b))
	}
	return sb.String(), nil
}

// DataLength returns the length of data in bytes.
func DataLength[T BytesLike](data T) (int, error) {
	b, err := GetBytes(data)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// DataSlice returns data[start:end] as hex. A negative end slices to the end
// of the data.
func DataSlice[T BytesLike](data T, start, end int) (string, error) {
	b, err := GetBytes(data)
	if err != nil {
		return "", err
	}
	if end < 0 {
		end = len(b)
	}
	if end > len(b) {
		return "", &BufferOverrunError{Op: "slice", Offset: end, Length: len(b)}
	}
	if start < 0 || start > end {
		return "", &BufferOverrunError{Op: "slice", Offset: start, Length: len(b)}
	}
	return Hexlify(b[start:end])
}

// StripZerosLeft removes all leading zero bytes.
func StripZerosLeft[T BytesLike](data T) (string, error) {
	b, err := GetBytes(data)
	if err != nil {
		return "", err
	}
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return Hexlify(b[i:])
}

// ZeroPadValue left-pads data with zero bytes to length bytes.
func ZeroPadValue[T BytesLike](data T, length int) (string, error) {
	return zeroPad(data, length, true)
}

// ZeroPadBytes right-pads data with zero bytes to length bytes.
func ZeroPadBytes[T BytesLike](data T, length int) (string, error) {
	return zeroPad(data, length, false)
}

func zeroPad[T BytesLike](data T, length int, left bool) (string, error) {
	b, err := GetBytes(data)
	if err != nil {
		return "", err
	}
	if length < len(b) {
		return "", &BufferOverrunError{Op: "pad", Offset: length + 1, Length: length}
	}
	out := make([]byte, length)
	if left {
		copy(out[length-len(b):], b)
	} else {
		copy(out, b)
	}
	return Hexlify(out)
}
