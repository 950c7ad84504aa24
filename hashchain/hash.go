// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashchain implements the 256-bit hash values that feed a fair
// shuffle: parsing and encoding, XOR combination of independently supplied
// hashes into a seed, and an unbiased index stream over a SHA-256/SHA-512
// hash chain.
package hashchain

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const (
	// HashSize is the number of bytes in a hash value.
	HashSize = 32

	// MaxHashStringSize is the maximum number of hex digits in the string
	// form of a hash.
	MaxHashStringSize = HashSize * 2
)

var (
	// ErrInvalidHashFormat describes an error where a hash string is not a
	// hexadecimal number that fits into HashSize bytes.
	ErrInvalidHashFormat = errors.New("invalid hash format")

	// ErrDivisionByZero describes an error where an index is requested
	// with a zero modulus.
	ErrDivisionByZero = errors.New("division by zero")
)

// Hash is a 256-bit unsigned integer stored in big-endian byte order.
type Hash [HashSize]byte

// String returns the hash as a zero-padded, lowercase hexadecimal string
// without a prefix.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a byte slice form of the hash.
func (h Hash) Bytes() []byte {
	return h[:]
}

// IsZero returns whether every bit of the hash is zero.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Int returns the numeric value of the hash.
func (h Hash) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(h[:])
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := NewHashFromStr(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HashFromInt returns the hash whose numeric value is v.
func HashFromInt(v *uint256.Int) Hash {
	return Hash(v.Bytes32())
}

// NewHashFromStr parses a hexadecimal hash string.  Parsing is case
// insensitive and accepts an optional 0x prefix.  Strings shorter than
// MaxHashStringSize digits are treated as numbers and padded with leading
// zeros.
func NewHashFromStr(s string) (Hash, error) {
	str := strings.TrimSpace(s)
	if len(str) >= 2 && (str[:2] == "0x" || str[:2] == "0X") {
		str = str[2:]
	}
	if len(str) == 0 || len(str) > MaxHashStringSize {
		return Hash{}, errors.Wrapf(ErrInvalidHashFormat,
			"%q has %d hex digits, want 1 to %d", s, len(str),
			MaxHashStringSize)
	}
	if len(str)%2 != 0 {
		str = "0" + str
	}

	var h Hash
	_, err := hex.Decode(h[HashSize-len(str)/2:], []byte(str))
	if err != nil {
		return Hash{}, errors.Wrapf(ErrInvalidHashFormat, "%q: %v", s, err)
	}
	return h, nil
}

// MustParseHash is like NewHashFromStr but panics on a malformed string.
// It is intended for hash constants and tests.
func MustParseHash(s string) Hash {
	h, err := NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Combine folds hashes into a single seed with bitwise exclusive-or.  The
// result is as unpredictable as the least predictable input and does not
// depend on the order of the inputs.  No inputs yield the zero hash.
func Combine(hashes ...Hash) Hash {
	acc := new(uint256.Int)
	for i := range hashes {
		acc.Xor(acc, hashes[i].Int())
	}
	return HashFromInt(acc)
}

// CombineStrings parses every string in hashes and combines the results.
func CombineStrings(hashes []string) (Hash, error) {
	parsed := make([]Hash, len(hashes))
	for i, s := range hashes {
		h, err := NewHashFromStr(s)
		if err != nil {
			return Hash{}, errors.WithMessagef(err, "hash %d", i)
		}
		parsed[i] = h
	}
	return Combine(parsed...), nil
}
