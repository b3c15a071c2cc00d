package deck

// Scenario resolves a named deterministic card sequence used to pin a shoe.
// Sequences are dealt back-to-front: the last element is the first card out.
// Unknown names return nil.
func Scenario(name string) []Card {
	seq, ok := scenarios[name]
	if !ok {
		return nil
	}
	cards := make([]Card, len(seq))
	copy(cards, seq)
	return cards
}

// ScenarioNames lists the available scenario names.
func ScenarioNames() []string {
	return []string{"split_8s", "double_after_split", "soft_17", "soft19v6", "split_aces"}
}

var scenarios = map[string][]Card{
	// Three consecutive rounds: 8,8 vs 6 with doubles after the split, then
	// soft 19 vs 6, then 8,3 vs 6.
	"split_8s": {
		{Four, Spades},     // round 3: dealer's draw card
		{Ten, Spades},      // round 3: dealer's hole card
		{Three, Hearts},    // round 3: player's second card
		{Six, Diamonds},    // round 3: dealer's up card
		{Eight, Clubs},     // round 3: player's first card
		{Seven, Spades},    // round 2: dealer's bust card
		{Ten, Spades},      // round 2: dealer's hole card
		{Ace, Hearts},      // round 2: player's second card
		{Six, Diamonds},    // round 2: dealer's up card
		{Eight, Clubs},     // round 2: player's first card
		{Six, Clubs},       // dealer's bust card
		{Ten, Spades},      // second split hand double
		{Ten, Hearts},      // first split hand double
		{Three, Diamonds},  // second split hand gets 3
		{Three, Clubs},     // first split hand gets 3
		{Ten, Clubs},       // dealer's hole card
		{Eight, Spades},    // player's second card
		{Six, Diamonds},    // dealer's up card
		{Eight, Hearts},    // player's first card
	},
	// 7,7 vs 6: split, then double each resulting hand.
	"double_after_split": {
		{Queen, Hearts},   // spare
		{King, Diamonds},  // double-down card for second split hand
		{King, Spades},    // double-down card for first split hand
		{Jack, Clubs},     // second split hand receives Jack
		{Four, Hearts},    // first split hand receives 4
		{Ten, Clubs},      // dealer's hole card
		{Seven, Diamonds}, // player's second card
		{Six, Spades},     // dealer's up card
		{Seven, Hearts},   // player's first card
	},
	// Dealer shows Ace over a 6 hole card and must draw out of soft 17.
	"soft_17": {
		{Six, Hearts},     // dealer hit card
		{Six, Hearts},     // dealer hit card
		{Seven, Diamonds}, // player hit card
		{Six, Clubs},      // dealer's hole card
		{Three, Spades},   // player's second card
		{Ace, Spades},     // dealer's up card
		{Ten, Spades},     // player's first card
	},
	// Soft 19 against a dealer 6.
	"soft19v6": {
		{Queen, Hearts},  // spare
		{Four, Hearts},   // player hit/double card
		{Ten, Clubs},     // dealer's hole card
		{Ace, Diamonds},  // player's second card
		{Six, Spades},    // dealer's up card
		{Eight, Hearts},  // player's first card
	},
	// A,A vs 6: forced split with the one-card-per-split-ace rule.
	"split_aces": {
		{Queen, Hearts}, // dealer's hit card
		{Jack, Clubs},   // second split hand receives Jack
		{Four, Hearts},  // first split hand receives 4
		{Ten, Clubs},    // dealer's hole card
		{Ace, Diamonds}, // player's second card
		{Six, Spades},   // dealer's up card
		{Ace, Hearts},   // player's first card
	},
}
