// Package simulator runs bankroll sessions: repeated rounds against a rule
// set with a flat bet until the hand budget runs out or the bankroll can no
// longer cover a bet.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/houseedge/internal/deck"
	"github.com/lox/houseedge/internal/game"
	"github.com/lox/houseedge/internal/randutil"
	"github.com/lox/houseedge/internal/rules"
	"github.com/lox/houseedge/internal/statistics"
	"github.com/lox/houseedge/internal/strategy"
)

// Config holds configuration for running sessions.
type Config struct {
	Rules    rules.Rules
	Table    *strategy.Table
	Stake    float64 // bankroll each session starts with
	Bet      float64 // flat wager per round
	Hands    int     // hand budget per session
	Sessions int
	Seed     int64
	Parallel int    // max concurrent sessions; values below 2 run serially
	Scenario string // pinned card sequence name, empty for shuffled play

	// Subscriber, when set, receives every round event. Only useful with
	// serial runs: parallel sessions interleave their events.
	Subscriber game.EventSubscriber

	Clock  quartz.Clock
	Logger *log.Logger
}

// SessionResult is one finished session with its full per-round statistics.
type SessionResult struct {
	ID       string
	Index    int
	Stats    *statistics.Statistics
	Bankrupt bool
	Elapsed  time.Duration
}

// Simulator runs sessions against a fixed rule set and strategy table.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Parallel < 1 {
		config.Parallel = 1
	}
	return &Simulator{config: config}
}

// newShoe builds the session's shoe: a copy of the pinned scenario sequence
// when one is configured, otherwise a shuffled shoe on the session's own
// seed-derived RNG stream.
func (s *Simulator) newShoe(index int) (*deck.Shoe, error) {
	if s.config.Scenario != "" {
		cards := deck.Scenario(s.config.Scenario)
		if cards == nil {
			return nil, fmt.Errorf("simulator: unknown scenario %q", s.config.Scenario)
		}
		return deck.NewPinnedShoe(cards), nil
	}
	return deck.NewShoe(s.config.Rules.Decks, randutil.Derive(s.config.Seed, index)), nil
}

// RunSession plays one session to completion. The session ends at the hand
// budget or as soon as the bankroll cannot cover the next bet, whichever
// comes first.
func (s *Simulator) RunSession(ctx context.Context, index int) (*SessionResult, error) {
	start := s.config.Clock.Now()
	id := uuid.New().String()
	logger := s.config.Logger.With("session", id[:8])

	shoe, err := s.newShoe(index)
	if err != nil {
		return nil, err
	}
	engine, err := game.NewEngine(shoe, s.config.Table, s.config.Rules, logger)
	if err != nil {
		return nil, err
	}
	if s.config.Subscriber != nil {
		engine.Events().Subscribe(s.config.Subscriber)
	}

	stats := statistics.New(s.config.Stake)
	bankrupt := false
	for round := 0; round < s.config.Hands; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if stats.Bankroll < s.config.Bet {
			bankrupt = true
			logger.Debug("bankroll exhausted",
				"round", round, "bankroll", stats.Bankroll, "bet", s.config.Bet)
			break
		}
		outcome := engine.PlayRound(s.config.Bet)
		stats.Add(toRoundResult(outcome))
	}

	if stats.Rounds > 0 {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("simulator: session %s: %w", id, err)
		}
	}

	logger.Debug("session finished",
		"rounds", stats.Rounds, "bankroll", stats.Bankroll, "bankrupt", bankrupt)

	return &SessionResult{
		ID:       id,
		Index:    index,
		Stats:    stats,
		Bankrupt: bankrupt,
		Elapsed:  s.config.Clock.Since(start),
	}, nil
}

// Run plays every configured session, up to Parallel at a time, and
// aggregates them. Session seeds derive from the root seed and the session
// index, so results are reproducible regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.SessionSet, []*SessionResult, error) {
	results := make([]*SessionResult, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallel)
	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			result, err := s.RunSession(ctx, i)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	set := statistics.NewSessionSet(s.config.Stake)
	for _, r := range results {
		set.Add(statistics.SessionOutcome{
			ID:            r.ID,
			Rounds:        r.Stats.Rounds,
			FinalBankroll: r.Stats.Bankroll,
			Net:           r.Stats.Net(),
			Bankrupt:      r.Bankrupt,
		})
	}
	return set, results, nil
}

// toRoundResult flattens a round outcome into the record the statistics
// tracker consumes.
func toRoundResult(o game.Outcome) statistics.RoundResult {
	doubled := 0
	for _, h := range o.PlayerHands {
		if h.Doubled {
			doubled++
		}
	}
	return statistics.RoundResult{
		Net:       o.Net,
		Blackjack: o.Blackjack,
		Surrender: o.Surrender,
		Bust:      o.Bust,
		Push:      o.Push,
		Hands:     len(o.PlayerHands),
		Doubled:   doubled,
	}
}
