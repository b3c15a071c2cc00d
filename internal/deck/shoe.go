package deck

import rand "math/rand/v2"

// cardsPerDeck is the size of one standard deck.
const cardsPerDeck = 52

// Shoe is the working set of cards being dealt from. It holds deckCount
// standard decks and rebuilds itself once penetration drops below a quarter
// of the full shoe.
//
// The top of the shoe is the end of the backing slice: Deal pops the last
// element. A pinned shoe therefore deals its fixed sequence back-to-front,
// which is how the named test scenarios are written.
type Shoe struct {
	cards     []Card
	deckCount int
	rng       *rand.Rand
	pinned    bool
}

// NewShoe builds a shuffled shoe of deckCount standard decks using the given
// RNG stream. The RNG belongs to the shoe's session; shoes are not shared
// across concurrent sessions.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	s := &Shoe{deckCount: deckCount, rng: rng}
	s.rebuild()
	return s
}

// NewPinnedShoe builds a shoe pinned to a fixed sequence for deterministic
// scenario testing. The sequence is dealt last-element-first and is never
// reordered; Reset is a no-op while cards remain.
func NewPinnedShoe(cards []Card) *Shoe {
	pinned := make([]Card, len(cards))
	copy(pinned, cards)
	return &Shoe{cards: pinned, deckCount: 1, pinned: true}
}

func (s *Shoe) rebuild() {
	s.cards = s.cards[:0]
	for d := 0; d < s.deckCount; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(rank, suit))
			}
		}
	}
	s.shuffle()
}

func (s *Shoe) shuffle() {
	if s.pinned {
		return
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Deal removes and returns the top card. An empty shoe is rebuilt and
// shuffled first, so Deal never fails. Exhausting a pinned shoe unpins it:
// the fixed sequence is gone and further deals come from a fresh shoe.
func (s *Shoe) Deal() Card {
	if len(s.cards) == 0 {
		s.pinned = false
		if s.rng == nil {
			// A pinned shoe was built without an RNG stream; fall back to a
			// fixed-seed stream so exhaustion still behaves.
			s.rng = rand.New(rand.NewPCG(1, 1))
		}
		s.rebuild()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Capacity returns the size of the full shoe.
func (s *Shoe) Capacity() int {
	return s.deckCount * cardsPerDeck
}

// NeedsReshuffle reports whether penetration has passed the reshuffle
// threshold: fewer than a quarter of the full shoe remains. Pinned shoes
// never ask for a reshuffle.
func (s *Shoe) NeedsReshuffle() bool {
	if s.pinned {
		return false
	}
	return len(s.cards) < s.Capacity()/4
}

// Reset rebuilds the full multi-deck shoe and shuffles it. On a pinned shoe
// this is a no-op so scenario sequences survive the engine's penetration
// check.
func (s *Shoe) Reset() {
	if s.pinned {
		return
	}
	s.rebuild()
}

// Pinned reports whether the shoe is pinned to a fixed sequence.
func (s *Shoe) Pinned() bool {
	return s.pinned
}
