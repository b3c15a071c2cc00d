package game

import "github.com/lox/houseedge/internal/deck"

// Outcome is the structured result of a single round, consumed by the
// session loop's statistics tracker.
type Outcome struct {
	// Net is the round's profit (positive) or loss (negative) across every
	// player hand, including busted hands and doubled wagers.
	Net float64

	// Blackjack is set when the player held a natural, including the
	// natural-versus-natural push.
	Blackjack bool
	// Surrender is set when a surrender ended the round.
	Surrender bool
	// Bust is set when every player hand busted.
	Bust bool
	// Push is set when the round settled at exactly zero.
	Push bool

	// PlayerHands holds every resolved player hand, busted hands included.
	PlayerHands []*deck.Hand
	// DealerHand is the dealer's final hand.
	DealerHand *deck.Hand
}
