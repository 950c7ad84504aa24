// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deck

import (
	"encoding/hex"
	"sort"
	"strings"
	"testing"

	"github.com/decred/fairdeck/hashchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hashA = "86b827732d3812061fa1e9baaba82b232fa741a04557fa07225dc2b889bb694a"
	hashB = "b6e6985a7c03adf19aa9636b3c748000edd5f9f7363906b8211722acfc44026e"

	unopenedLabels = "As 2s 3s 4s 5s 6s 7s 8s 9s Ts Js Qs Ks " +
		"Ah 2h 3h 4h 5h 6h 7h 8h 9h Th Jh Qh Kh " +
		"Kd Qd Jd Td 9d 8d 7d 6d 5d 4d 3d 2d Ad " +
		"Kc Qc Jc Tc 9c 8c 7c 6c 5c 4c 3c 2c Ac"
	shuffledA = "4c Qd 4h 2s 3s Ks 5d Js Jh 4s 7d 2c Tc 9c Jd Ts Kh 2h 8c 7s " +
		"6c 6s 6d Jc Th 8d 5c 7c 6h 8h Ah Ad Ac 7h As Td Qs 9h 3c 3h " +
		"3d Kc Qc Qh 5s 4d 9d 2d Kd 9s 8s 5h"
	shuffledAB = "2s Ah 5h Td 5d Qd 3c 3h 4h Jd 8s 6s Jh 7d 7s Kh 3d 2c Ad 9c " +
		"Ts Js Kd 2d Tc 3s 9h 8d 4d Qs Ks 6d 7c Kc 5c Jc 7h Ac 5s 2h " +
		"9s 4s 6c As 6h 4c 9d Qc Qh Th 8c 8h"
)

func sortedLabels(cards []Card) []string {
	labels := Labels(cards)
	sort.Strings(labels)
	return labels
}

func TestUnopened(t *testing.T) {
	d := Unopened()
	require.Len(t, d, DeckSize)
	assert.Equal(t, strings.Fields(unopenedLabels), Labels(d))

	seen := make(map[Card]bool)
	for _, c := range d {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestUnopenedIsFreshCopy(t *testing.T) {
	d := Unopened()
	d[0], d[1] = d[1], d[0]
	d[2] = Card{Rank: Ace, Suit: Clubs}

	assert.Equal(t, strings.Fields(unopenedLabels), Labels(Unopened()))
}

func TestShuffleVectors(t *testing.T) {
	got, err := Shuffle([]string{hashA})
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(shuffledA), Labels(got))

	got, err = Shuffle([]string{hashA, hashB})
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(shuffledAB), Labels(got))
}

func TestShuffleDeterminism(t *testing.T) {
	hashes := []string{hashA, hashB}
	first, err := Shuffle(hashes)
	require.NoError(t, err)
	second, err := Shuffle(hashes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShuffleOrderIndependence(t *testing.T) {
	hashC := hashchain.Rehash(hashchain.MustParseHash(hashA)).String()
	want, err := Shuffle([]string{hashA, hashB, hashC})
	require.NoError(t, err)

	orders := [][]string{
		{hashA, hashC, hashB},
		{hashB, hashA, hashC},
		{hashB, hashC, hashA},
		{hashC, hashA, hashB},
		{strings.ToUpper(hashC), "0x" + hashB, hashA},
	}
	for _, hashes := range orders {
		got, err := Shuffle(hashes)
		require.NoError(t, err)
		assert.Equal(t, want, got, "order %v", hashes)
	}
}

func TestShuffleClosure(t *testing.T) {
	want := sortedLabels(Unopened())
	for i := 0; i < 64; i++ {
		seed := hashchain.Rehash(hashchain.Hash{byte(i)})
		got, err := Shuffle([]string{seed.String()})
		require.NoError(t, err)
		require.Len(t, got, DeckSize)
		assert.Equal(t, want, sortedLabels(got))
	}
}

func TestShuffleSingleBitSensitivity(t *testing.T) {
	want, err := Shuffle([]string{hashA})
	require.NoError(t, err)

	raw, err := hex.DecodeString(hashA)
	require.NoError(t, err)
	for bit := 0; bit < len(raw)*8; bit++ {
		flipped := append([]byte(nil), raw...)
		flipped[bit/8] ^= 1 << uint(bit%8)
		got, err := Shuffle([]string{hex.EncodeToString(flipped)})
		require.NoError(t, err)
		assert.NotEqual(t, want, got, "flipping bit %d", bit)
	}
}

func TestShuffleCardsDoesNotMutateInputs(t *testing.T) {
	cards := Unopened()[:10]
	origCards := append([]Card(nil), cards...)
	hashes := []string{hashA, hashB}
	origHashes := append([]string(nil), hashes...)

	got, err := ShuffleCards(cards, hashes)
	require.NoError(t, err)
	assert.Equal(t, origCards, cards)
	assert.Equal(t, origHashes, hashes)
	assert.ElementsMatch(t, origCards, got)

	got[0] = Card{Rank: Two, Suit: Clubs}
	assert.Equal(t, origCards, cards)
}

func TestShuffleCardsSmallDecks(t *testing.T) {
	got, err := ShuffleCards(nil, []string{hashA})
	require.NoError(t, err)
	assert.Empty(t, got)

	one := []Card{{Rank: Ace, Suit: Spades}}
	got, err = ShuffleCards(one, []string{hashA})
	require.NoError(t, err)
	assert.Equal(t, one, got)
}

func TestShuffleErrors(t *testing.T) {
	_, err := Shuffle(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Shuffle([]string{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Shuffle([]string{hashA, "xyz"})
	assert.ErrorIs(t, err, hashchain.ErrInvalidHashFormat)

	_, err = Shuffle([]string{hashA + "ff"})
	assert.ErrorIs(t, err, hashchain.ErrInvalidHashFormat)
}
