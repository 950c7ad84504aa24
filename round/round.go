// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package round verifies published fair shuffle rounds.  A round names the
// server's commitment, its revealed nonce, the hashes contributed by the
// players and optionally the deck that was dealt.  Verification recomputes
// the deck from the hashes and checks it against everything published.
package round

import (
	"io"
	"os"

	"github.com/decred/fairdeck/commitment"
	"github.com/decred/fairdeck/deck"
	"github.com/decred/fairdeck/hashchain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDeckMismatch describes an error where the published deck differs
	// from the deck computed from the round's hashes.
	ErrDeckMismatch = errors.New("deck does not match hashes")

	// ErrMissingNonce describes an error where a round publishes a
	// commitment without revealing the nonce behind it.
	ErrMissingNonce = errors.New("commitment without revealed nonce")
)

// Round is a published shuffle round.
type Round struct {
	ID           string   `yaml:"id"`
	Commitment   string   `yaml:"commitment,omitempty"`
	ServerNonce  string   `yaml:"server_nonce,omitempty"`
	PlayerHashes []string `yaml:"player_hashes"`
	Deck         []string `yaml:"deck,omitempty"`
}

// document is the top level layout of a round file.
type document struct {
	Rounds []Round `yaml:"rounds"`
}

// Result is the outcome of a successful verification.
type Result struct {
	ID   string
	Seed hashchain.Hash
	Deck []deck.Card
}

// Hashes returns the hash list the round's deck is derived from: the player
// hashes followed by the server nonce, when one was revealed.
func (r *Round) Hashes() []string {
	hashes := make([]string, 0, len(r.PlayerHashes)+1)
	hashes = append(hashes, r.PlayerHashes...)
	if r.ServerNonce != "" {
		hashes = append(hashes, r.ServerNonce)
	}
	return hashes
}

// Verify checks the revealed nonce against the commitment, recomputes the
// deck and compares it with the published deck when there is one.
func (r *Round) Verify() (*Result, error) {
	if r.Commitment != "" {
		if r.ServerNonce == "" {
			return nil, errors.Wrapf(ErrMissingNonce, "round %q", r.ID)
		}
		commit, err := hashchain.NewHashFromStr(r.Commitment)
		if err != nil {
			return nil, errors.WithMessagef(err, "round %q commitment", r.ID)
		}
		nonce, err := hashchain.NewHashFromStr(r.ServerNonce)
		if err != nil {
			return nil, errors.WithMessagef(err, "round %q nonce", r.ID)
		}
		if err := commitment.Verify(commit, nonce); err != nil {
			return nil, errors.WithMessagef(err, "round %q", r.ID)
		}
	}

	hashes := r.Hashes()
	seed, err := hashchain.CombineStrings(hashes)
	if err != nil {
		return nil, errors.WithMessagef(err, "round %q", r.ID)
	}
	cards, err := deck.Shuffle(hashes)
	if err != nil {
		return nil, errors.WithMessagef(err, "round %q", r.ID)
	}

	if len(r.Deck) > 0 {
		published, err := deck.ParseCards(r.Deck)
		if err != nil {
			return nil, errors.WithMessagef(err, "round %q deck", r.ID)
		}
		if err := compareDecks(published, cards); err != nil {
			return nil, errors.WithMessagef(err, "round %q", r.ID)
		}
	}

	log.Debugf("Round %q verified (seed %v)", r.ID, seed)
	return &Result{ID: r.ID, Seed: seed, Deck: cards}, nil
}

func compareDecks(published, computed []deck.Card) error {
	if len(published) != len(computed) {
		return errors.Wrapf(ErrDeckMismatch, "published %d cards, "+
			"computed %d", len(published), len(computed))
	}
	for i := range computed {
		if published[i] != computed[i] {
			return errors.Wrapf(ErrDeckMismatch, "position %d: "+
				"published %v, computed %v", i, published[i],
				computed[i])
		}
	}
	return nil
}

// Load decodes the rounds of a YAML round document.  Unknown fields are
// rejected.
func Load(r io.Reader) ([]Round, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode round document")
	}
	return doc.Rounds, nil
}

// LoadFile reads the round document at path.
func LoadFile(path string) ([]Round, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
