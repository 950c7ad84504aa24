// Copyright 2009 The Go Authors. All rights reserved.
// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shuffle reorders sequences deterministically with a Fisher-Yates
// pass whose swap indices are drawn from a hash chain.  Anyone holding the
// seed can recompute the exact same permutation.
package shuffle

import (
	"github.com/decred/fairdeck/hashchain"
	"github.com/pkg/errors"
)

// ShuffleMap records where every element ended up after a shuffle.
type ShuffleMap struct {
	perm []int // permutation map
}

// Shuffle reorders n elements using indices drawn from the hash chain that
// starts at seed.  swap swaps the elements with indexes i and j.  Shuffle
// panics if n is negative or too large.
//
// Position i, counting down from n-1 to 1, is swapped with an index drawn
// from [0, i).  An element is therefore never swapped with itself and the
// resulting permutation is always a single cycle of length n.  This matches
// the published test vectors and must be kept for compatibility.  Exactly
// n-1 draws are made.
func Shuffle(seed hashchain.Hash, n int, swap func(i, j int)) (*ShuffleMap, error) {
	if n < 0 || n > (1<<31-1-1) {
		panic("invalid argument to Shuffle")
	}

	idx := make([]int, n)
	perm := make([]int, n)
	for i := range idx {
		idx[i] = i
		perm[i] = i
	}

	state := seed
	for i := n - 1; i > 0; i-- {
		var j uint64
		var err error
		j, state, err = hashchain.Draw(uint64(i), state)
		if err != nil {
			return nil, errors.Wrapf(err, "draw for position %d", i)
		}
		swap(i, int(j))
		idx[i], idx[j] = idx[j], idx[i]
		perm[idx[i]] = i
		perm[idx[j]] = int(j)
	}
	log.Tracef("Shuffled %d elements with seed %v", n, seed)
	return &ShuffleMap{perm}, nil
}

// Get returns the final position of the element that started at index.
func (s *ShuffleMap) Get(index int) int {
	return s.perm[index]
}

// Len returns the number of shuffled elements.
func (s *ShuffleMap) Len() int {
	return len(s.perm)
}

// Slice returns a shuffled copy of items.  The caller's slice is never
// modified or aliased by the result.
func Slice[T any](items []T, seed hashchain.Hash) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)
	_, err := Shuffle(seed, len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
