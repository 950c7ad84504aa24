// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deck

import (
	"strings"

	"github.com/pkg/errors"
)

// DeckSize is the number of cards in an unopened deck.
const DeckSize = 52

// ErrInvalidCard describes an error where a card label is not a rank
// character followed by a suit character.
var ErrInvalidCard = errors.New("invalid card")

// Rank is the rank character of a card label.
type Rank byte

// Card ranks.
const (
	Ace   Rank = 'A'
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
	Jack  Rank = 'J'
	Queen Rank = 'Q'
	King  Rank = 'K'
)

// Suit is the suit character of a card label.
type Suit byte

// Card suits.
const (
	Spades   Suit = 's'
	Hearts   Suit = 'h'
	Diamonds Suit = 'd'
	Clubs    Suit = 'c'
)

const (
	ranks = "A23456789TJQK"
	suits = "shdc"
)

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two character label of the card, e.g. "As" or "Td".
func (c Card) String() string {
	return string([]byte{byte(c.Rank), byte(c.Suit)})
}

// ParseCard parses a two character card label.  The rank is matched case
// insensitively and the suit is normalized to lower case.
func ParseCard(label string) (Card, error) {
	if len(label) != 2 {
		return Card{}, errors.Wrapf(ErrInvalidCard, "%q", label)
	}
	r := strings.ToUpper(label[:1])
	s := strings.ToLower(label[1:])
	if !strings.Contains(ranks, r) || !strings.Contains(suits, s) {
		return Card{}, errors.Wrapf(ErrInvalidCard, "%q", label)
	}
	return Card{Rank: Rank(r[0]), Suit: Suit(s[0])}, nil
}

// ParseCards parses every label in labels.
func ParseCards(labels []string) ([]Card, error) {
	cards := make([]Card, len(labels))
	for i, label := range labels {
		c, err := ParseCard(label)
		if err != nil {
			return nil, errors.WithMessagef(err, "card %d", i)
		}
		cards[i] = c
	}
	return cards, nil
}

// Labels returns the label of every card in cards.
func Labels(cards []Card) []string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return labels
}
