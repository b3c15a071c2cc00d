package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/houseedge/internal/deck"
)

// Upcard is a dealer up-card bucket for table columns: 2 through 9, any
// ten-value card, or an ace.
type Upcard int

const (
	Up2 Upcard = iota
	Up3
	Up4
	Up5
	Up6
	Up7
	Up8
	Up9
	UpTen
	UpAce

	numUpcards = 10
)

// UpcardOf buckets a dealer up-card rank.
func UpcardOf(r deck.Rank) Upcard {
	switch {
	case r == deck.Ace:
		return UpAce
	case r >= deck.Ten:
		return UpTen
	default:
		return Upcard(int(r) - 2)
	}
}

// ParseUpcard parses a table column header ("2".."9", "T" or "10", "A").
// J, Q and K are accepted as ten-value aliases.
func ParseUpcard(s string) (Upcard, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "10", "J", "Q", "K":
		return UpTen, true
	case "A":
		return UpAce, true
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 || n > 9 {
			return 0, false
		}
		return Upcard(n - 2), true
	}
}

// String returns the column header for the up-card bucket.
func (u Upcard) String() string {
	switch u {
	case UpTen:
		return "T"
	case UpAce:
		return "A"
	default:
		return strconv.Itoa(int(u) + 2)
	}
}

// SigKind classifies a hand signature.
type SigKind int

const (
	// HardTotal keys rows like "16".
	HardTotal SigKind = iota
	// SoftTotal keys rows like "A7": an ace counted as 11 plus the hard sum
	// of everything else.
	SoftTotal
	// Pair keys rows like "88", "TT" or "AA".
	Pair
)

// Signature is the normalized strategy-table key for a hand. It is a small
// comparable value so tables are typed maps rather than nested string
// dictionaries.
type Signature struct {
	Kind SigKind
	// Value is the hard total for HardTotal, the non-ace sum for SoftTotal,
	// and the per-card value for Pair (2-10, or 11 for aces).
	Value int
}

// SignatureOf derives a hand's table key: a pair key if the hand is
// splittable, else a soft key if an ace is still usable as 11, else the hard
// total.
func SignatureOf(h *deck.Hand) Signature {
	if h.CanSplit() {
		c := h.Cards[0]
		switch {
		case c.IsAce():
			return Signature{Kind: Pair, Value: 11}
		case c.IsTenValue():
			return Signature{Kind: Pair, Value: 10}
		default:
			return Signature{Kind: Pair, Value: int(c.Rank)}
		}
	}
	if h.IsSoft() {
		// The smallest total counts every ace as 1; removing the one ace
		// promoted to 11 leaves the hard sum of the rest.
		return Signature{Kind: SoftTotal, Value: h.Totals()[0] - 1}
	}
	return Signature{Kind: HardTotal, Value: h.BestValue()}
}

// HardFallback returns the hard-total key consulted when the derived key has
// no table row.
func (s Signature) HardFallback() Signature {
	switch s.Kind {
	case Pair:
		if s.Value == 11 {
			return Signature{Kind: HardTotal, Value: 12}
		}
		return Signature{Kind: HardTotal, Value: s.Value * 2}
	case SoftTotal:
		return Signature{Kind: HardTotal, Value: s.Value + 11}
	default:
		return s
	}
}

// ParseSignature parses a table row key such as "16", "A7" or "88".
func ParseSignature(s string) (Signature, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case key == "AA", key == "A+A":
		return Signature{Kind: Pair, Value: 11}, true
	case key == "TT", key == "T+T":
		return Signature{Kind: Pair, Value: 10}, true
	case strings.HasPrefix(key, "A"):
		rest := strings.TrimPrefix(key, "A")
		if rest == "T" {
			return Signature{Kind: SoftTotal, Value: 10}, true
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > 10 {
			return Signature{}, false
		}
		return Signature{Kind: SoftTotal, Value: n}, true
	case len(key) == 2 && key[0] == key[1] && key[0] >= '2' && key[0] <= '9':
		return Signature{Kind: Pair, Value: int(key[0] - '0')}, true
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 2 || n > 21 {
			return Signature{}, false
		}
		return Signature{Kind: HardTotal, Value: n}, true
	}
}

// String renders the signature as it appears in a table's first column.
func (s Signature) String() string {
	switch s.Kind {
	case Pair:
		switch s.Value {
		case 11:
			return "AA"
		case 10:
			return "TT"
		default:
			return fmt.Sprintf("%d%d", s.Value, s.Value)
		}
	case SoftTotal:
		return fmt.Sprintf("A%d", s.Value)
	default:
		return strconv.Itoa(s.Value)
	}
}
