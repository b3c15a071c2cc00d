// Package game implements the round engine: the full lifecycle of one
// blackjack round from the penetration check through settlement, driven by a
// strategy table and a rule set.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/houseedge/internal/deck"
	"github.com/lox/houseedge/internal/rules"
	"github.com/lox/houseedge/internal/strategy"
)

// handStatus is how a single player hand left the play loop.
type handStatus int

const (
	handStood handStatus = iota
	handBusted
	handSurrendered
)

// Engine plays rounds against a shoe using a strategy table and a rule set.
// It is single-threaded: one engine per session.
type Engine struct {
	shoe   *deck.Shoe
	table  *strategy.Table
	rules  rules.Rules
	logger *log.Logger
	events EventBus

	splits int // splits performed in the current round
}

// NewEngine creates a round engine. The rule set is validated once here so
// PlayRound never has to.
func NewEngine(shoe *deck.Shoe, table *strategy.Table, r rules.Rules, logger *log.Logger) (*Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid rules: %w", err)
	}
	return &Engine{
		shoe:   shoe,
		table:  table,
		rules:  r,
		logger: logger,
		events: NewEventBus(),
	}, nil
}

// Events returns the engine's event bus for subscribing observers.
func (e *Engine) Events() EventBus {
	return e.events
}

// PlayRound plays one complete round for the given wager and returns its
// outcome. The shoe is reshuffled first if penetration has passed the
// threshold, never mid-round.
func (e *Engine) PlayRound(wager float64) Outcome {
	if e.shoe.NeedsReshuffle() {
		e.logger.Debug("reshuffling shoe", "remaining", e.shoe.Remaining())
		e.shoe.Reset()
	}
	e.splits = 0

	e.events.Publish(RoundStartEvent{
		Wager:     wager,
		Remaining: e.shoe.Remaining(),
		timestamp: time.Now(),
	})

	player := deck.NewHand(wager)
	dealer := deck.NewHand(0)
	e.dealTo(player, "player")
	e.dealTo(dealer, "dealer")
	e.dealTo(player, "player")
	e.dealTo(dealer, "dealer")
	upcard := dealer.Cards[0]

	e.logger.Debug("round dealt",
		"player", player.String(), "dealer_upcard", upcard.String())

	// Naturals settle before any play.
	if dealer.IsNatural() {
		if player.IsNatural() {
			return e.settle(Outcome{
				Net:         0,
				Blackjack:   true,
				Push:        true,
				PlayerHands: []*deck.Hand{player},
				DealerHand:  dealer,
			})
		}
		return e.settle(Outcome{
			Net:         -wager,
			PlayerHands: []*deck.Hand{player},
			DealerHand:  dealer,
		})
	}
	if player.IsNatural() {
		return e.settle(Outcome{
			Net:         wager * e.rules.BlackjackPayout,
			Blackjack:   true,
			PlayerHands: []*deck.Hand{player},
			DealerHand:  dealer,
		})
	}

	// Play every hand to completion. Splits enqueue the new hand so it is
	// played after the hands ahead of it; inPlay remembers every hand that
	// entered play so the all-bust loss covers doubled and split wagers.
	queue := []*deck.Hand{player}
	inPlay := []*deck.Hand{player}
	var standing []*deck.Hand
	bustLoss := 0.0

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		switch e.playHand(h, upcard, &queue, &inPlay) {
		case handSurrendered:
			loss := h.Wager / 2
			e.events.Publish(SurrenderEvent{
				Hand:      h.String(),
				Loss:      loss,
				timestamp: time.Now(),
			})
			e.logger.Debug("surrendered", "hand", h.String(), "loss", loss)
			return e.settle(Outcome{
				Net:         -loss,
				Surrender:   true,
				PlayerHands: inPlay,
				DealerHand:  dealer,
			})
		case handBusted:
			bustLoss += h.Wager
			e.events.Publish(HandBustEvent{
				Hand:      h.String(),
				Wager:     h.Wager,
				timestamp: time.Now(),
			})
			e.logger.Debug("hand busted", "hand", h.String(), "wager", h.Wager)
		case handStood:
			standing = append(standing, h)
		}
	}

	// Every hand busted: the dealer does not draw and the whole round's
	// wagers are lost.
	if len(standing) == 0 {
		total := 0.0
		for _, h := range inPlay {
			total += h.Wager
		}
		return e.settle(Outcome{
			Net:         -total,
			Bust:        true,
			PlayerHands: inPlay,
			DealerHand:  dealer,
		})
	}

	e.playDealer(dealer)

	net := -bustLoss
	dealerValue := dealer.BestValue()
	dealerBust := dealer.IsBust()
	for _, h := range standing {
		value := h.BestValue()
		switch {
		case dealerBust || value > dealerValue:
			net += h.Wager
		case value < dealerValue:
			net -= h.Wager
		}
	}

	return e.settle(Outcome{
		Net:         net,
		Push:        net == 0,
		PlayerHands: inPlay,
		DealerHand:  dealer,
	})
}

// playHand plays a single hand until it stands, busts or surrenders. Splits
// append the sibling hand to the queue and register it in inPlay.
func (e *Engine) playHand(h *deck.Hand, upcard deck.Card, queue, inPlay *[]*deck.Hand) handStatus {
	for {
		// A split ace receives one card and stands.
		if h.SplitAce && len(h.Cards) > 1 {
			return handStood
		}

		raw := e.table.Action(h, upcard)
		action := strategy.Resolve(raw, h, e.rules)

		if action == strategy.Split && e.splits >= e.rules.MaxSplits {
			// At the split cap the table may still prescribe a split. The
			// hand stays in play as a hit so the strategy is re-queried with
			// the extra card.
			e.logger.Debug("split cap reached, hitting instead",
				"hand", h.String(), "splits", e.splits)
			action = strategy.Hit
		}

		e.events.Publish(ActionChosenEvent{
			Hand:      h.String(),
			HandValue: h.BestValue(),
			Upcard:    upcard,
			Raw:       raw,
			Resolved:  action,
			timestamp: time.Now(),
		})
		e.logger.Debug("action",
			"hand", h.String(), "upcard", upcard.String(),
			"raw", raw.Code(), "resolved", action.String())

		switch action {
		case strategy.Stand:
			return handStood

		case strategy.Hit:
			e.dealTo(h, "player")
			if h.IsBust() {
				return handBusted
			}

		case strategy.Double:
			if len(h.Cards) != 2 || h.SplitAce || (h.Split && !e.rules.DoubleAfterSplit) {
				// Ineligible double plays as a hit.
				e.dealTo(h, "player")
				if h.IsBust() {
					return handBusted
				}
				continue
			}
			h.Doubled = true
			h.Wager *= 2
			e.dealTo(h, "player")
			if h.IsBust() {
				return handBusted
			}
			return handStood

		case strategy.Surrender:
			h.Surrendered = true
			return handSurrendered

		case strategy.Split:
			e.split(h, queue, inPlay)
		}
	}
}

// split divides a pair into two hands, deals one card to each and enqueues
// the sibling. The current hand keeps its first card.
func (e *Engine) split(h *deck.Hand, queue, inPlay *[]*deck.Hand) {
	e.splits++

	moved := h.Cards[1]
	h.Cards = h.Cards[:1]
	h.Split = true

	sibling := deck.NewHand(h.Wager)
	sibling.Split = true
	sibling.AddCard(moved)

	if moved.IsAce() {
		h.SplitAce = true
		sibling.SplitAce = true
	}

	e.dealTo(h, "player")
	e.dealTo(sibling, "split")

	*queue = append(*queue, sibling)
	*inPlay = append(*inPlay, sibling)

	e.events.Publish(HandSplitEvent{
		Rank:      moved.Rank,
		SplitAces: moved.IsAce(),
		Splits:    e.splits,
		timestamp: time.Now(),
	})
	e.logger.Debug("split pair",
		"rank", moved.Rank.String(), "hand", h.String(),
		"sibling", sibling.String(), "splits", e.splits)
}

// playDealer draws the dealer's hand to completion: hit below 17, hit soft 17
// when the rules say so, stand otherwise.
func (e *Engine) playDealer(h *deck.Hand) {
	for {
		value := h.BestValue()
		if value > 17 {
			break
		}
		if value == 17 && !(e.rules.DealerHitsSoft17 && h.IsSoft()) {
			break
		}
		e.dealTo(h, "dealer")
	}
	e.events.Publish(DealerStandEvent{
		Hand:      h.String(),
		Value:     h.BestValue(),
		Busted:    h.IsBust(),
		timestamp: time.Now(),
	})
	e.logger.Debug("dealer stands", "hand", h.String(), "busted", h.IsBust())
}

// dealTo deals one card from the shoe into a hand and publishes it.
func (e *Engine) dealTo(h *deck.Hand, to string) {
	card := e.shoe.Deal()
	h.AddCard(card)
	e.events.Publish(CardDealtEvent{
		To:        to,
		Card:      card,
		timestamp: time.Now(),
	})
}

// settle publishes the round's final outcome and returns it.
func (e *Engine) settle(o Outcome) Outcome {
	e.events.Publish(RoundSettledEvent{
		Net:       o.Net,
		Blackjack: o.Blackjack,
		Surrender: o.Surrender,
		Bust:      o.Bust,
		Push:      o.Push,
		timestamp: time.Now(),
	})
	e.logger.Debug("round settled",
		"net", o.Net, "blackjack", o.Blackjack, "surrender", o.Surrender,
		"bust", o.Bust, "push", o.Push)
	return o
}
