package strategy

import (
	"github.com/lox/houseedge/internal/deck"
	"github.com/lox/houseedge/internal/rules"
)

// row holds one table row of actions indexed by Upcard, with a presence mask
// so sparse CSV rows fall back cleanly.
type row struct {
	actions [numUpcards]RawAction
	present [numUpcards]bool
}

// Table maps hand signatures and dealer up-cards to raw actions.
type Table struct {
	rows map[Signature]*row
}

// NewTable returns an empty table. Most callers want Load or Default.
func NewTable() *Table {
	return &Table{rows: make(map[Signature]*row)}
}

// set records an action for a signature/up-card cell.
func (t *Table) set(sig Signature, up Upcard, a RawAction) {
	r, ok := t.rows[sig]
	if !ok {
		r = &row{}
		t.rows[sig] = r
	}
	r.actions[up] = a
	r.present[up] = true
}

// Lookup returns the raw action for a hand signature against a dealer
// up-card. A missing key falls back to the hand's hard-total key; if that is
// missing too the table prescribes Hit, so lookups never fail.
func (t *Table) Lookup(sig Signature, up Upcard) RawAction {
	if r, ok := t.rows[sig]; ok && r.present[up] {
		return r.actions[up]
	}
	if fb := sig.HardFallback(); fb != sig {
		if r, ok := t.rows[fb]; ok && r.present[up] {
			return r.actions[up]
		}
	}
	return RawHit
}

// Action derives the hand's signature and looks up the prescribed raw action
// for it against the dealer's up-card. Split-ace hands that have received
// their one card always stand, as do naturals and hard 20s, without
// consulting the table.
func (t *Table) Action(h *deck.Hand, upcard deck.Card) RawAction {
	if h.SplitAce && len(h.Cards) > 1 {
		return RawStand
	}
	if h.IsNatural() || (h.BestValue() == 20 && !h.IsSoft()) {
		return RawStand
	}
	return t.Lookup(SignatureOf(h), UpcardOf(upcard.Rank))
}

// Resolve reduces a raw table action to a concrete one given the hand's
// state and the rule set:
//
//	B: double with exactly 2 cards unless the hand is split and double after
//	   split is off; else stand.
//	U: surrender with exactly 2 cards if allowed; else stand.
//	Q: surrender if allowed, else split if possible, else hit.
//	D: double with exactly 2 cards, else hit.
//	X: surrender with exactly 2 cards if allowed, else hit.
//	P: split if possible, else hit.
//
// Unrecognized actions resolve to Hit. The engine re-checks double legality
// (split aces, double after split) when it applies the action.
func Resolve(raw RawAction, h *deck.Hand, r rules.Rules) Action {
	twoCards := len(h.Cards) == 2
	canSurrender := twoCards && r.AllowSurrender
	canSplit := h.CanSplit() && (!h.SplitAce || r.ResplitAces)

	switch raw {
	case RawStand:
		return Stand
	case RawHit:
		return Hit
	case RawSplit:
		if canSplit {
			return Split
		}
		return Hit
	case RawDouble:
		if twoCards {
			return Double
		}
		return Hit
	case RawSurrender:
		if canSurrender {
			return Surrender
		}
		return Hit
	case RawDoubleOrStand:
		if twoCards && !(h.Split && !r.DoubleAfterSplit) {
			return Double
		}
		return Stand
	case RawSurrenderOrStand:
		if canSurrender {
			return Surrender
		}
		return Stand
	case RawSurrenderOrSplit:
		if canSurrender {
			return Surrender
		}
		if canSplit {
			return Split
		}
		return Hit
	default:
		return Hit
	}
}
