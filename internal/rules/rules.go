// Package rules defines the casino rule set a simulation runs under. A Rules
// value is validated once at construction and treated as immutable for the
// life of a session.
package rules

import "fmt"

// Rules is a validated casino rule set.
//
// DealerHitsSoft17 and AllowSurrender are invariant-true in this engine: the
// strategy tables it ships with assume both, so Validate rejects rule sets
// that turn them off instead of silently coercing them.
type Rules struct {
	Decks            int     // number of decks in the shoe (1-8)
	BlackjackPayout  float64 // natural blackjack pays Wager * payout (> 1.0)
	DealerHitsSoft17 bool
	AllowSurrender   bool
	MaxSplits        int // maximum splits per round (1-4)
	ResplitAces      bool
	DoubleAfterSplit bool
}

// Validate checks every field and returns a configuration error on the first
// out-of-range value. No round runs under an invalid rule set.
func (r Rules) Validate() error {
	if r.Decks < 1 || r.Decks > 8 {
		return fmt.Errorf("rules: decks must be between 1 and 8, got %d", r.Decks)
	}
	if r.BlackjackPayout <= 1.0 {
		return fmt.Errorf("rules: blackjack payout must be greater than 1.0, got %.2f", r.BlackjackPayout)
	}
	if r.MaxSplits < 1 || r.MaxSplits > 4 {
		return fmt.Errorf("rules: max splits must be between 1 and 4, got %d", r.MaxSplits)
	}
	if !r.DealerHitsSoft17 {
		return fmt.Errorf("rules: dealer must hit soft 17 in this engine")
	}
	if !r.AllowSurrender {
		return fmt.Errorf("rules: late surrender must be allowed in this engine")
	}
	return nil
}

// VegasStrip returns the default rule set: six decks, 3:2 blackjack, up to
// three splits, resplit aces and double after split allowed.
func VegasStrip() Rules {
	return Rules{
		Decks:            6,
		BlackjackPayout:  1.5,
		DealerHitsSoft17: true,
		AllowSurrender:   true,
		MaxSplits:        3,
		ResplitAces:      true,
		DoubleAfterSplit: true,
	}
}

// DowntownVegas returns double-deck downtown rules.
func DowntownVegas() Rules {
	r := VegasStrip()
	r.Decks = 2
	return r
}

// SingleDeck returns single-deck rules with a 6:5 blackjack payout and
// tighter splitting.
func SingleDeck() Rules {
	return Rules{
		Decks:            1,
		BlackjackPayout:  1.2,
		DealerHitsSoft17: true,
		AllowSurrender:   true,
		MaxSplits:        2,
		ResplitAces:      false,
		DoubleAfterSplit: false,
	}
}

// AtlanticCity returns eight-deck rules without ace resplits.
func AtlanticCity() Rules {
	r := VegasStrip()
	r.Decks = 8
	r.ResplitAces = false
	return r
}

// European returns six-deck rules without ace resplits or double after split.
func European() Rules {
	r := VegasStrip()
	r.ResplitAces = false
	r.DoubleAfterSplit = false
	return r
}

// Wcent returns four-deck rules with a 2:1 blackjack payout.
func Wcent() Rules {
	r := VegasStrip()
	r.Decks = 4
	r.BlackjackPayout = 2.0
	return r
}

// presets maps rule-set names to constructors.
var presets = map[string]func() Rules{
	"vegas_strip":    VegasStrip,
	"downtown_vegas": DowntownVegas,
	"single_deck":    SingleDeck,
	"atlantic_city":  AtlanticCity,
	"european":       European,
	"wcent":          Wcent,
}

// Preset returns the named preset rule set.
func Preset(name string) (Rules, error) {
	ctor, ok := presets[name]
	if !ok {
		return Rules{}, fmt.Errorf("rules: unknown rule set %q", name)
	}
	return ctor(), nil
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	return []string{"vegas_strip", "downtown_vegas", "single_deck", "atlantic_city", "european", "wcent"}
}
