// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commitment implements the commit and reveal checks of a fair
// shuffle round.  Before a round the server publishes the SHA-256 hash of a
// private nonce.  After the round the nonce is revealed and anyone can check
// it against the published commitment before recomputing the deck.
package commitment

import (
	"crypto/subtle"

	"github.com/decred/fairdeck/hashchain"
	sha256 "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
)

// ErrMismatch describes an error where a revealed nonce does not hash to the
// published commitment.
var ErrMismatch = errors.New("nonce does not match commitment")

// Commit returns the commitment to nonce.
func Commit(nonce hashchain.Hash) hashchain.Hash {
	return hashchain.Hash(sha256.Sum256(nonce[:]))
}

// Verify checks that nonce is the preimage of commitment.
func Verify(commitment, nonce hashchain.Hash) error {
	check := Commit(nonce)
	if subtle.ConstantTimeCompare(check[:], commitment[:]) != 1 {
		return errors.Wrapf(ErrMismatch, "commitment %v, nonce hashes to %v",
			commitment, check)
	}
	return nil
}
