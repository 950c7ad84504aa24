// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/fairdeck/deck"
	"github.com/decred/fairdeck/round"
)

const showHelpMessage = "Specify -h to show available options"

var errVerifyFailed = errors.New("round verification failed")

// usage displays the general usage when the help flag is not displayed and
// no hashes were given.
func usage(errorMessage string) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <hash> [<hash>...]\n", appName)
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] --verify=<roundfile>\n\n", appName)
	fmt.Fprintln(os.Stderr, showHelpMessage)
}

func main() {
	os.Exit(run())
}

// run is the main startup and teardown logic performed by the main package.
// It returns the process exit code.
func run() int {
	cfg, args, err := loadConfig()
	if err != nil {
		return 1
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	log.Debugf("Version %s (Go version %s)", version(), runtime.Version())

	// Create a context that is cancelled on an interrupt signal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.Verify != "":
		err = verifyRounds(ctx, os.Stdout, cfg)
	case len(args) == 0:
		usage("No hashes specified")
		return 1
	default:
		err = shuffleDeck(os.Stdout, cfg.cards, args)
	}
	if err != nil {
		if err != errVerifyFailed {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

// shuffleDeck shuffles cards with the hashes and writes every card label on
// its own line.
func shuffleDeck(w io.Writer, cards []deck.Card, hashes []string) error {
	shuffled, err := deck.ShuffleCards(cards, hashes)
	if err != nil {
		return err
	}
	for _, c := range shuffled {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

// verifyRounds verifies every round of the configured round file and writes
// one status line per round.  errVerifyFailed is returned when any round
// fails.
func verifyRounds(ctx context.Context, w io.Writer, cfg *config) error {
	rounds, err := round.LoadFile(cfg.Verify)
	if err != nil {
		return err
	}
	outcomes, err := round.VerifyAll(ctx, rounds, cfg.Workers)
	if err != nil {
		return err
	}

	var failed int
	for i, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", rounds[i].ID, o.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %s %v\n", o.Result.ID, o.Result.Seed)
	}
	if failed > 0 {
		log.Warnf("%d of %d rounds failed verification", failed,
			len(rounds))
		return errVerifyFailed
	}
	return nil
}
