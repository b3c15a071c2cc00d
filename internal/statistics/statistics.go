// Package statistics accumulates per-round results into session-level
// estimators and aggregates finished sessions into run-level summaries.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is the per-round record the tracker consumes. The simulator
// builds one from each round outcome so this package stays independent of the
// engine.
type RoundResult struct {
	Net       float64 // net profit or loss for the round
	Blackjack bool    // player held a natural
	Surrender bool    // round ended in surrender
	Bust      bool    // every player hand busted
	Push      bool    // round settled at exactly zero
	Hands     int     // player hands resolved, splits included
	Doubled   int     // hands that doubled down
}

// Statistics tracks one session's results: outcome counters, bankroll
// watermarks, streaks and the per-round net values needed for the
// distribution estimators.
type Statistics struct {
	Rounds int
	SumNet float64
	SumNet2 float64   // sum of squares for variance calculation
	Values []float64 // per-round nets for median/percentile calculation

	Wins       int // rounds settled above zero
	Losses     int
	Pushes     int
	Blackjacks int // rounds where the player held a natural, pushes included
	Surrenders int
	Busts      int // rounds where every player hand busted

	SplitRounds  int // rounds that resolved more than one player hand
	DoubledHands int

	InitialBankroll float64
	Bankroll        float64
	PeakBankroll    float64
	TroughBankroll  float64
	MaxDrawdown     float64 // largest peak-to-bankroll drop observed

	winStreak     int
	lossStreak    int
	MaxWinStreak  int
	MaxLossStreak int
}

// New returns a tracker starting from the given bankroll.
func New(initialBankroll float64) *Statistics {
	return &Statistics{
		InitialBankroll: initialBankroll,
		Bankroll:        initialBankroll,
		PeakBankroll:    initialBankroll,
		TroughBankroll:  initialBankroll,
	}
}

// Add incorporates a round result into the statistics.
func (s *Statistics) Add(r RoundResult) {
	s.Rounds++
	s.SumNet += r.Net
	s.SumNet2 += r.Net * r.Net
	s.Values = append(s.Values, r.Net)

	s.Bankroll += r.Net
	if s.Bankroll > s.PeakBankroll {
		s.PeakBankroll = s.Bankroll
	}
	if s.Bankroll < s.TroughBankroll {
		s.TroughBankroll = s.Bankroll
	}
	if dd := s.PeakBankroll - s.Bankroll; dd > s.MaxDrawdown {
		s.MaxDrawdown = dd
	}

	switch {
	case r.Net > 0:
		s.Wins++
		s.winStreak++
		s.lossStreak = 0
		if s.winStreak > s.MaxWinStreak {
			s.MaxWinStreak = s.winStreak
		}
	case r.Net < 0:
		s.Losses++
		s.lossStreak++
		s.winStreak = 0
		if s.lossStreak > s.MaxLossStreak {
			s.MaxLossStreak = s.lossStreak
		}
	default:
		s.Pushes++
		s.winStreak = 0
		s.lossStreak = 0
	}

	if r.Blackjack {
		s.Blackjacks++
	}
	if r.Surrender {
		s.Surrenders++
	}
	if r.Bust {
		s.Busts++
	}
	if r.Hands > 1 {
		s.SplitRounds++
	}
	s.DoubledHands += r.Doubled
}

// Mean returns the arithmetic mean of the per-round nets.
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the per-round nets.
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the per-round nets.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-round net.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0), linearly
// interpolated between neighbouring per-round nets.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of rounds settled above zero.
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Net returns the session's total profit or loss.
func (s *Statistics) Net() float64 {
	return s.Bankroll - s.InitialBankroll
}

// Validate checks the tracker's internal accounting for consistency.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}
	if got := s.Wins + s.Losses + s.Pushes; got != s.Rounds {
		return fmt.Errorf("outcome counters total (%d) does not match rounds count (%d)",
			got, s.Rounds)
	}
	if math.Abs(s.InitialBankroll+s.SumNet-s.Bankroll) > 1e-6 {
		return fmt.Errorf("ledger mismatch: initial=%.6f, sum=%.6f, bankroll=%.6f",
			s.InitialBankroll, s.SumNet, s.Bankroll)
	}
	if s.TroughBankroll > s.Bankroll || s.PeakBankroll < s.Bankroll {
		return fmt.Errorf("watermarks out of order: trough=%.6f, bankroll=%.6f, peak=%.6f",
			s.TroughBankroll, s.Bankroll, s.PeakBankroll)
	}
	return nil
}
