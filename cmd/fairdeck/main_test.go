// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decred/fairdeck/deck"
	"github.com/decred/fairdeck/hashchain"
)

const testHash = "86b827732d3812061fa1e9baaba82b232fa741a04557fa07225dc2b889bb694a"

func TestShuffleDeckOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := shuffleDeck(&buf, deck.Unopened(), []string{testHash}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != deck.DeckSize {
		t.Fatalf("got %d lines, want %d", len(lines), deck.DeckSize)
	}
	want := []string{"4c", "Qd", "4h", "2s", "3s", "Ks"}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
	if lines[len(lines)-1] != "5h" {
		t.Fatalf("last line: got %q, want %q", lines[len(lines)-1], "5h")
	}
}

func TestShuffleDeckMalformedHash(t *testing.T) {
	var buf bytes.Buffer
	err := shuffleDeck(&buf, deck.Unopened(), []string{testHash, "0xnothex"})
	if !errors.Is(err, hashchain.ErrInvalidHashFormat) {
		t.Fatalf("got error %v, want %v", err, hashchain.ErrInvalidHashFormat)
	}
	if buf.Len() != 0 {
		t.Fatal("output written for malformed input")
	}
}

func TestParseDeck(t *testing.T) {
	cards, err := parseDeck("As, Kd ,7c")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(deck.Labels(cards), ","); got != "As,Kd,7c" {
		t.Fatalf("got %s", got)
	}
	if _, err := parseDeck("As,,Kd"); !errors.Is(err, deck.ErrInvalidCard) {
		t.Fatalf("got error %v, want %v", err, deck.ErrInvalidCard)
	}
}

func TestParseAndSetDebugLevels(t *testing.T) {
	valid := []string{"info", "trace", "DECK=debug,SHUF=trace", "RND=warn"}
	for _, level := range valid {
		if err := parseAndSetDebugLevels(level); err != nil {
			t.Fatalf("%q: %v", level, err)
		}
	}
	invalid := []string{"loud", "DECK", "NOPE=info", "DECK=loud"}
	for _, level := range invalid {
		if err := parseAndSetDebugLevels(level); err == nil {
			t.Fatalf("%q: accepted invalid debug level", level)
		}
	}
	setLogLevels("off")
}

const roundFile = `rounds:
  - id: good
    player_hashes: [86b827732d3812061fa1e9baaba82b232fa741a04557fa07225dc2b889bb694a]
  - id: bad
    commitment: 86b827732d3812061fa1e9baaba82b232fa741a04557fa07225dc2b889bb694a
    server_nonce: b6e6985a7c03adf19aa9636b3c748000edd5f9f7363906b8211722acfc44026e
    player_hashes: [86b827732d3812061fa1e9baaba82b232fa741a04557fa07225dc2b889bb694a]
`

func TestVerifyRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.yaml")
	if err := os.WriteFile(path, []byte(roundFile), 0600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg := &config{Verify: path, Workers: 2}
	err := verifyRounds(context.Background(), &buf, cfg)
	if err != errVerifyFailed {
		t.Fatalf("got error %v, want %v", err, errVerifyFailed)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d status lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ok   good "+testHash) {
		t.Fatalf("unexpected status %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "FAIL bad:") {
		t.Fatalf("unexpected status %q", lines[1])
	}
}

func TestVersion(t *testing.T) {
	if !strings.HasPrefix(version(), "0.1.0") {
		t.Fatalf("unexpected version %s", version())
	}
}
