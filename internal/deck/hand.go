package deck

import (
	"fmt"
	"strings"
)

// Hand is a mutable sequence of dealt cards plus the wager riding on it and
// the per-hand flags the round engine sets as play progresses. The engine
// stops mutating a hand once settlement reads it.
type Hand struct {
	Cards []Card
	Wager float64

	Split       bool // hand was produced by (or survived) a split
	Doubled     bool // wager was doubled down
	Surrendered bool
	SplitAce    bool // hand descends from a split pair of Aces (one-card rule)
}

// NewHand creates an empty hand carrying the given wager.
func NewHand(wager float64) *Hand {
	return &Hand{Wager: wager}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(c Card) {
	h.Cards = append(h.Cards, c)
}

// Totals returns every distinct total reachable given each Ace's dual value,
// in ascending order. A hand with no aces has exactly one total.
func (h *Hand) Totals() []int {
	base := 0
	aces := 0
	for _, c := range h.Cards {
		base += c.HardValue()
		if c.IsAce() {
			aces++
		}
	}
	// Counting any subset of aces as 11 adds 10 per promoted ace. Totals are
	// therefore base, base+10, ..., base+10*aces, already distinct and sorted.
	totals := make([]int, aces+1)
	for i := 0; i <= aces; i++ {
		totals[i] = base + 10*i
	}
	return totals
}

// BestValue returns the largest total not exceeding 21, or the smallest
// total if every total busts.
func (h *Hand) BestValue() int {
	totals := h.Totals()
	best := totals[0]
	for _, t := range totals {
		if t <= 21 {
			best = t
		}
	}
	return best
}

// IsBust reports whether even the smallest total exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Totals()[0] > 21
}

// IsSoft reports whether the hand has an ace still usable as 11: more than
// one reachable total with the highest at most 21. Note A,6,T is hard 17
// under this rule (the 27 total busts), which drives the dealer's soft-17
// decision.
func (h *Hand) IsSoft() bool {
	totals := h.Totals()
	return len(totals) > 1 && totals[len(totals)-1] <= 21
}

// IsNatural reports whether the hand is a natural blackjack: exactly two
// cards totaling 21 on a hand that was not produced by a split.
func (h *Hand) IsNatural() bool {
	if len(h.Cards) != 2 || h.Split {
		return false
	}
	for _, t := range h.Totals() {
		if t == 21 {
			return true
		}
	}
	return false
}

// CanSplit reports whether the hand is a splittable pair: exactly two cards
// whose ranks match after folding ten-value cards together.
func (h *Hand) CanSplit() bool {
	if len(h.Cards) != 2 {
		return false
	}
	a, b := h.Cards[0], h.Cards[1]
	if a.IsTenValue() && b.IsTenValue() {
		return true
	}
	return a.Rank == b.Rank
}

// String renders the hand for logs, e.g. "8♥ 8♠ (16)".
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.BestValue())
}
