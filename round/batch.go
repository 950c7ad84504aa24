// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package round

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the verification outcome of a single round.  Exactly one of
// Result and Err is set.
type Outcome struct {
	Result *Result
	Err    error
}

// VerifyAll verifies rounds with up to workers concurrent goroutines.
// Outcomes are returned in the order of rounds.  A failed round does not
// stop the others; only cancellation of ctx aborts the batch.
func VerifyAll(ctx context.Context, rounds []Round, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(rounds))

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range rounds {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			// Each worker only writes the slots of the rounds it
			// received.
			for i := range jobs {
				res, err := rounds[i].Verify()
				outcomes[i] = Outcome{Result: res, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var failed int
	for i := range outcomes {
		if outcomes[i].Err != nil {
			failed++
		}
	}
	log.Infof("Verified %d rounds with %d workers, %d failed", len(rounds),
		workers, failed)
	return outcomes, nil
}
