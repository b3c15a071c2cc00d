package strategy

import (
	"testing"

	"github.com/lox/houseedge/internal/deck"
	"github.com/lox/houseedge/internal/rules"
)

func TestLookupFallsBackToHardTotal(t *testing.T) {
	tbl := NewTable()
	tbl.set(Signature{HardTotal, 16}, Up6, RawStand)

	// No 88 row: the pair falls back to its hard total 16
	if got := tbl.Lookup(Signature{Pair, 8}, Up6); got != RawStand {
		t.Errorf("Expected fallback to hard 16 row, got %s", got.Code())
	}
	// No row at all resolves to hit
	if got := tbl.Lookup(Signature{SoftTotal, 3}, Up6); got != RawHit {
		t.Errorf("Expected hit for a missing row, got %s", got.Code())
	}
	// A present cell wins over the fallback
	tbl.set(Signature{Pair, 8}, Up6, RawSplit)
	if got := tbl.Lookup(Signature{Pair, 8}, Up6); got != RawSplit {
		t.Errorf("Expected the pair row to win, got %s", got.Code())
	}
}

func TestLookupSparseRow(t *testing.T) {
	tbl := NewTable()
	tbl.set(Signature{HardTotal, 12}, Up4, RawStand)

	// Same row, different column with no entry
	if got := tbl.Lookup(Signature{HardTotal, 12}, Up9); got != RawHit {
		t.Errorf("Expected hit for an absent cell, got %s", got.Code())
	}
}

func TestActionShortCircuits(t *testing.T) {
	tbl := NewTable()
	upcard := deck.NewCard(deck.Six, deck.Hearts)

	natural := handOf(deck.Ace, deck.King)
	if got := tbl.Action(natural, upcard); got != RawStand {
		t.Errorf("Expected a natural to stand, got %s", got.Code())
	}

	hard20 := handOf(deck.Ten, deck.Six, deck.Four)
	if got := tbl.Action(hard20, upcard); got != RawStand {
		t.Errorf("Expected hard 20 to stand, got %s", got.Code())
	}

	splitAce := handOf(deck.Ace, deck.Nine)
	splitAce.Split = true
	splitAce.SplitAce = true
	if got := tbl.Action(splitAce, upcard); got != RawStand {
		t.Errorf("Expected a split ace to stand on its one card, got %s", got.Code())
	}
}

func TestResolve(t *testing.T) {
	vegas := rules.VegasStrip()
	noDAS := vegas
	noDAS.DoubleAfterSplit = false

	pair := handOf(deck.Eight, deck.Eight)
	twoCard := handOf(deck.Ten, deck.Six)
	threeCard := handOf(deck.Five, deck.Four, deck.Three)
	splitHand := handOf(deck.Ten, deck.Eight)
	splitHand.Split = true

	tests := []struct {
		name string
		raw  RawAction
		hand *deck.Hand
		r    rules.Rules
		want Action
	}{
		{"stand", RawStand, twoCard, vegas, Stand},
		{"hit", RawHit, twoCard, vegas, Hit},
		{"split a pair", RawSplit, pair, vegas, Split},
		{"split without a pair", RawSplit, twoCard, vegas, Hit},
		{"double two cards", RawDouble, twoCard, vegas, Double},
		{"double three cards", RawDouble, threeCard, vegas, Hit},
		{"surrender two cards", RawSurrender, twoCard, vegas, Surrender},
		{"surrender three cards", RawSurrender, threeCard, vegas, Hit},
		{"double-or-stand doubles", RawDoubleOrStand, twoCard, vegas, Double},
		{"double-or-stand stands on three", RawDoubleOrStand, threeCard, vegas, Stand},
		{"double-or-stand stands on split without DAS", RawDoubleOrStand, splitHand, noDAS, Stand},
		{"surrender-or-stand surrenders", RawSurrenderOrStand, twoCard, vegas, Surrender},
		{"surrender-or-stand stands on three", RawSurrenderOrStand, threeCard, vegas, Stand},
		{"surrender-or-split surrenders first", RawSurrenderOrSplit, pair, vegas, Surrender},
		{"surrender-or-split falls to hit on three cards", RawSurrenderOrSplit, threeCard, vegas, Hit},
	}

	for _, tt := range tests {
		if got := Resolve(tt.raw, tt.hand, tt.r); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestResolveSplitAceRespectsResplitRule(t *testing.T) {
	r := rules.VegasStrip()
	r.ResplitAces = false

	h := handOf(deck.Ace, deck.Ace)
	h.Split = true
	h.SplitAce = true
	if got := Resolve(RawSplit, h, r); got != Hit {
		t.Errorf("Expected hit when resplitting aces is off, got %s", got)
	}

	r.ResplitAces = true
	if got := Resolve(RawSplit, h, r); got != Split {
		t.Errorf("Expected split when resplitting aces is on, got %s", got)
	}
}

func TestParseCode(t *testing.T) {
	for _, code := range []string{"S", "H", "D", "P", "X", "B", "U", "Q"} {
		raw, ok := ParseCode(code)
		if !ok {
			t.Errorf("Expected %q to parse", code)
			continue
		}
		if raw.Code() != code {
			t.Errorf("Round trip failed for %q: got %q", code, raw.Code())
		}
	}

	if _, ok := ParseCode(" h "); !ok {
		t.Error("Expected lowercase padded code to parse")
	}
	if _, ok := ParseCode("Z"); ok {
		t.Error("Expected Z to fail")
	}
}
