package statistics

import "sort"

// SessionOutcome is the summary of one finished session.
type SessionOutcome struct {
	ID            string
	Rounds        int
	FinalBankroll float64
	Net           float64
	Bankrupt      bool // session stopped because the bankroll could not cover a bet
}

// binWidth is the width of one histogram bin as a fraction of the initial
// bankroll, and binCeiling the point past which outcomes land in the
// overflow bin.
const (
	binWidth   = 0.4
	binCeiling = 3.0
)

// Bin is one bucket of the final-bankroll histogram. Bounds are fractions of
// the initial bankroll; the overflow bin has no upper bound.
type Bin struct {
	LowPct   float64
	HighPct  float64
	Count    int
	Overflow bool
}

// SessionSet aggregates finished sessions into run-level summaries.
type SessionSet struct {
	Initial  float64 // starting bankroll each session began with
	Sessions []SessionOutcome
}

// NewSessionSet returns an aggregator for sessions that started from the
// given bankroll.
func NewSessionSet(initial float64) *SessionSet {
	return &SessionSet{Initial: initial}
}

// Add records a finished session.
func (ss *SessionSet) Add(o SessionOutcome) {
	ss.Sessions = append(ss.Sessions, o)
}

// Count returns the number of sessions recorded.
func (ss *SessionSet) Count() int {
	return len(ss.Sessions)
}

// TotalRounds returns the number of rounds played across all sessions.
func (ss *SessionSet) TotalRounds() int {
	total := 0
	for _, o := range ss.Sessions {
		total += o.Rounds
	}
	return total
}

// BankruptcyRate returns the fraction of sessions that ran out of money.
func (ss *SessionSet) BankruptcyRate() float64 {
	if len(ss.Sessions) == 0 {
		return 0
	}
	n := 0
	for _, o := range ss.Sessions {
		if o.Bankrupt {
			n++
		}
	}
	return float64(n) / float64(len(ss.Sessions))
}

// DoublingRate returns the fraction of sessions that finished with at least
// twice the initial bankroll.
func (ss *SessionSet) DoublingRate() float64 {
	if len(ss.Sessions) == 0 {
		return 0
	}
	n := 0
	for _, o := range ss.Sessions {
		if o.FinalBankroll >= 2*ss.Initial {
			n++
		}
	}
	return float64(n) / float64(len(ss.Sessions))
}

// AverageFinal returns the mean final bankroll across sessions.
func (ss *SessionSet) AverageFinal() float64 {
	if len(ss.Sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range ss.Sessions {
		sum += o.FinalBankroll
	}
	return sum / float64(len(ss.Sessions))
}

// BestFinal returns the highest final bankroll seen.
func (ss *SessionSet) BestFinal() float64 {
	best := 0.0
	for i, o := range ss.Sessions {
		if i == 0 || o.FinalBankroll > best {
			best = o.FinalBankroll
		}
	}
	return best
}

// WorstFinal returns the lowest final bankroll seen.
func (ss *SessionSet) WorstFinal() float64 {
	worst := 0.0
	for i, o := range ss.Sessions {
		if i == 0 || o.FinalBankroll < worst {
			worst = o.FinalBankroll
		}
	}
	return worst
}

// MedianFinal returns the median final bankroll across sessions.
func (ss *SessionSet) MedianFinal() float64 {
	if len(ss.Sessions) == 0 {
		return 0
	}
	sorted := make([]float64, len(ss.Sessions))
	for i, o := range ss.Sessions {
		sorted[i] = o.FinalBankroll
	}
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Histogram buckets final bankrolls into bins 40% of the initial bankroll
// wide, from zero up to 300%, with one overflow bin above that.
func (ss *SessionSet) Histogram() []Bin {
	var bins []Bin
	for low := 0.0; low < binCeiling; low += binWidth {
		high := low + binWidth
		if high > binCeiling {
			high = binCeiling
		}
		bins = append(bins, Bin{LowPct: low, HighPct: high})
	}
	bins = append(bins, Bin{LowPct: binCeiling, Overflow: true})

	if ss.Initial <= 0 {
		return bins
	}
	for _, o := range ss.Sessions {
		frac := o.FinalBankroll / ss.Initial
		placed := false
		for i := range bins {
			if bins[i].Overflow {
				continue
			}
			if frac >= bins[i].LowPct && frac < bins[i].HighPct {
				bins[i].Count++
				placed = true
				break
			}
		}
		if !placed {
			bins[len(bins)-1].Count++
		}
	}
	return bins
}
