// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashchain

import (
	"crypto/sha512"

	"github.com/holiman/uint256"
	sha256 "github.com/minio/sha256-simd"
)

// maxValue is 2^256 - 1.  It is never modified.
var maxValue = new(uint256.Int).SetAllOne()

// Rehash derives a replacement for a chain state whose value fell into the
// biased tail of a modulo reduction:
//
//	SHA-256(state || SHA-512(state))
//
// The construction is part of the shuffle wire format and must not change.
func Rehash(state Hash) Hash {
	wide := sha512.Sum512(state[:])
	buf := make([]byte, 0, HashSize+sha512.Size)
	buf = append(buf, state[:]...)
	buf = append(buf, wide[:]...)
	return Hash(sha256.Sum256(buf))
}

// Ratchet derives the chain state that follows an accepted state:
//
//	SHA-256(SHA-256(state || state) || SHA-512(state))
//
// The construction is part of the shuffle wire format and must not change.
func Ratchet(state Hash) Hash {
	double := make([]byte, 0, HashSize*2)
	double = append(double, state[:]...)
	double = append(double, state[:]...)
	inner := sha256.Sum256(double)
	wide := sha512.Sum512(state[:])

	buf := make([]byte, 0, HashSize+sha512.Size)
	buf = append(buf, inner[:]...)
	buf = append(buf, wide[:]...)
	return Hash(sha256.Sum256(buf))
}

// Draw returns an index uniformly distributed in [0, modulus) along with the
// chain state to use for the next draw.
//
// The value of state is accepted only when it is below the largest multiple
// of modulus that fits in 2^256.  Otherwise the state is rehashed until it
// is, so the final reduction is free of modulo bias.  The returned state is
// always ratcheted from the accepted one, whether or not a rejection took
// place.  Draw is a pure function of its arguments.
func Draw(modulus uint64, state Hash) (uint64, Hash, error) {
	if modulus == 0 {
		return 0, Hash{}, ErrDivisionByZero
	}
	m := uint256.NewInt(modulus)

	// tail = 2^256 mod m, computed as ((2^256 - 1) mod m + 1) mod m so the
	// intermediate values fit in 256 bits.  The rejection threshold is
	// 2^256 - tail.
	tail := new(uint256.Int).Mod(maxValue, m)
	tail.AddUint64(tail, 1)
	tail.Mod(tail, m)

	value := state.Int()
	if !tail.IsZero() {
		limit := new(uint256.Int).Sub(maxValue, tail)
		for value.Gt(limit) {
			state = Rehash(state)
			value = state.Int()
		}
	}

	index := new(uint256.Int).Mod(value, m).Uint64()
	return index, Ratchet(state), nil
}
