package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/houseedge/internal/fileutil"
	"github.com/lox/houseedge/internal/rules"
	"github.com/lox/houseedge/internal/simulator"
	"github.com/lox/houseedge/internal/statistics"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

func printReport(cli CLI, r rules.Rules, seed int64, set *statistics.SessionSet, results []*simulator.SessionResult, elapsed time.Duration) {
	fmt.Println(headerStyle.Render("=== SIMULATION ==="))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Rule set"), cli.RuleSet)
	fmt.Fprintf(w, "%s\t%d decks, %.2fx blackjack, %d splits\n",
		labelStyle.Render("Rules"), r.Decks, r.BlackjackPayout, r.MaxSplits)
	fmt.Fprintf(w, "%s\t%.2f stake, %.2f flat bet, %d hand budget\n",
		labelStyle.Render("Bankroll"), cli.Stake, cli.Bet, cli.Hands)
	fmt.Fprintf(w, "%s\t%d (%d concurrent)\n", labelStyle.Render("Sessions"), cli.Sessions, cli.Parallel)
	if cli.Scenario != "" {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Scenario"), cli.Scenario)
	}
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("Seed"), seed)
	fmt.Fprintf(w, "%s\t%d rounds in %v\n", labelStyle.Render("Played"),
		set.TotalRounds(), elapsed.Round(time.Millisecond))
	w.Flush()

	if len(results) == 1 {
		printSessionDetail(results[0], cli.Bet)
	}
	if len(results) > 1 {
		printRunSummary(set)
	}
}

// printSessionDetail reports one session's per-round estimators and counters.
func printSessionDetail(result *simulator.SessionResult, bet float64) {
	stats := result.Stats
	if stats.Rounds == 0 {
		fmt.Println("\nNo rounds played.")
		return
	}

	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()

	fmt.Println()
	fmt.Println(headerStyle.Render("=== RESULTS ==="))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("Rounds"), stats.Rounds)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Final bankroll"), money(stats.Bankroll, stats.InitialBankroll))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Net"), signedMoney(stats.Net()))
	fmt.Fprintf(w, "%s\t%.4f per round\n", labelStyle.Render("Mean"), mean)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("Median"), stats.Median())
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("Std dev"), stats.StdDev())
	fmt.Fprintf(w, "%s\t[%.4f, %.4f] per round\n", labelStyle.Render("95% CI"), low, high)
	fmt.Fprintf(w, "%s\tP5=%.2f P25=%.2f P75=%.2f P95=%.2f\n", labelStyle.Render("Percentiles"),
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	if bet > 0 {
		fmt.Fprintf(w, "%s\t%.3f%% of the flat bet\n", labelStyle.Render("House edge"), -mean/bet*100)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(headerStyle.Render("=== ROUNDS ==="))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d (%.1f%%)\n", labelStyle.Render("Wins"), stats.Wins, pct(stats.Wins, stats.Rounds))
	fmt.Fprintf(w, "%s\t%d (%.1f%%)\n", labelStyle.Render("Losses"), stats.Losses, pct(stats.Losses, stats.Rounds))
	fmt.Fprintf(w, "%s\t%d (%.1f%%)\n", labelStyle.Render("Pushes"), stats.Pushes, pct(stats.Pushes, stats.Rounds))
	fmt.Fprintf(w, "%s\t%d blackjacks, %d surrenders, %d all-bust\n",
		labelStyle.Render("Outcomes"), stats.Blackjacks, stats.Surrenders, stats.Busts)
	fmt.Fprintf(w, "%s\t%d split rounds, %d doubled hands\n",
		labelStyle.Render("Plays"), stats.SplitRounds, stats.DoubledHands)
	fmt.Fprintf(w, "%s\t%d wins / %d losses\n",
		labelStyle.Render("Longest streaks"), stats.MaxWinStreak, stats.MaxLossStreak)
	fmt.Fprintf(w, "%s\tpeak %.2f, trough %.2f, max drawdown %.2f\n",
		labelStyle.Render("Bankroll"), stats.PeakBankroll, stats.TroughBankroll, stats.MaxDrawdown)
	w.Flush()
}

// printRunSummary reports the aggregate of a multi-session run with a
// final-bankroll histogram.
func printRunSummary(set *statistics.SessionSet) {
	fmt.Println()
	fmt.Println(headerStyle.Render("=== SESSIONS ==="))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("Sessions"), set.Count())
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Bankruptcy rate"),
		lossStyle.Render(fmt.Sprintf("%.1f%%", set.BankruptcyRate()*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Doubled stake"),
		winStyle.Render(fmt.Sprintf("%.1f%%", set.DoublingRate()*100)))
	fmt.Fprintf(w, "%s\t%.2f average, %.2f median\n",
		labelStyle.Render("Final bankroll"), set.AverageFinal(), set.MedianFinal())
	fmt.Fprintf(w, "%s\t%.2f best, %.2f worst\n",
		labelStyle.Render("Extremes"), set.BestFinal(), set.WorstFinal())
	w.Flush()

	fmt.Println()
	fmt.Println(headerStyle.Render("=== FINAL BANKROLL DISTRIBUTION ==="))
	bins := set.Histogram()
	max := 0
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	for _, b := range bins {
		label := fmt.Sprintf("%3.0f%%-%3.0f%%", b.LowPct*100, b.HighPct*100)
		if b.Overflow {
			label = fmt.Sprintf(">%3.0f%%    ", b.LowPct*100)
		}
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", b.Count*40/max)
		}
		fmt.Printf("  %s  %4d  %s\n", label, b.Count, barStyle.Render(bar))
	}
}

// writeCSV writes one row per session for downstream analysis. The file is
// written atomically so an interrupted run never leaves a truncated export.
func writeCSV(filename string, results []*simulator.SessionResult) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"session_id", "rounds", "final_bankroll", "net", "bankrupt", "elapsed_ms"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.ID,
			strconv.Itoa(r.Stats.Rounds),
			strconv.FormatFloat(r.Stats.Bankroll, 'f', 2, 64),
			strconv.FormatFloat(r.Stats.Net(), 'f', 2, 64),
			strconv.FormatBool(r.Bankrupt),
			strconv.FormatInt(r.Elapsed.Milliseconds(), 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return fileutil.WriteAtomic(filename, buf.Bytes(), 0o644)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func money(value, baseline float64) string {
	s := fmt.Sprintf("%.2f", value)
	if value >= baseline {
		return winStyle.Render(s)
	}
	return lossStyle.Render(s)
}

func signedMoney(value float64) string {
	s := fmt.Sprintf("%+.2f", value)
	if value >= 0 {
		return winStyle.Render(s)
	}
	return lossStyle.Render(s)
}
