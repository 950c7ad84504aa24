// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deck

import (
	"github.com/decred/fairdeck/hashchain"
	"github.com/decred/fairdeck/shuffle"
	"github.com/decred/slog"
	"github.com/pkg/errors"
)

// ErrEmptyInput describes an error where a deck is requested without any
// hashes.  Combining no hashes would yield the well known zero seed.
var ErrEmptyInput = errors.New("no hashes supplied")

// unopened is the canonical order of a new deck: spades and hearts from ace
// to king followed by diamonds and clubs from king to ace.  Arrays are
// copied on assignment, so Unopened never hands out this value.
var unopened = func() (d [DeckSize]Card) {
	const descending = "KQJT98765432A"
	i := 0
	for _, s := range []Suit{Spades, Hearts} {
		for _, r := range []byte(ranks) {
			d[i] = Card{Rank: Rank(r), Suit: s}
			i++
		}
	}
	for _, s := range []Suit{Diamonds, Clubs} {
		for _, r := range []byte(descending) {
			d[i] = Card{Rank: Rank(r), Suit: s}
			i++
		}
	}
	return d
}()

// Unopened returns a new copy of the canonical unopened deck.
func Unopened() []Card {
	d := unopened
	return d[:]
}

// Shuffle combines hashes into a seed and returns the unopened deck
// shuffled with it.  Identical hashes, in any order, always produce the
// same deck.
func Shuffle(hashes []string) ([]Card, error) {
	return ShuffleCards(Unopened(), hashes)
}

// ShuffleCards combines hashes into a seed and returns a shuffled copy of
// cards.  Neither cards nor hashes are modified.
func ShuffleCards(cards []Card, hashes []string) ([]Card, error) {
	if len(hashes) == 0 {
		return nil, ErrEmptyInput
	}
	seed, err := hashchain.CombineStrings(hashes)
	if err != nil {
		return nil, err
	}

	out := make([]Card, len(cards))
	copy(out, cards)
	sm, err := shuffle.Shuffle(seed, len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Shuffled %d cards from %d hashes (seed %v)", len(out),
		len(hashes), seed)
	if log.Level() <= slog.LevelTrace {
		for i := range cards {
			log.Tracef("%v moved from position %d to %d", cards[i], i,
				sm.Get(i))
		}
	}
	return out, nil
}
