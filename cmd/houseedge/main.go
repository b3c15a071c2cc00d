package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/houseedge/internal/game"
	"github.com/lox/houseedge/internal/rules"
	"github.com/lox/houseedge/internal/simulator"
	"github.com/lox/houseedge/internal/strategy"
)

type CLI struct {
	RuleSet   string `default:"vegas_strip" help:"Named rule set: vegas_strip, downtown_vegas, single_deck, atlantic_city, european, wcent"`
	RulesFile string `type:"path" help:"HCL file with custom rule sets"`
	Decks     *int   `help:"Override the number of decks in the shoe"`
	Payout    string `help:"Override the blackjack payout, e.g. 3:2, 6:5, 2:1"`

	Stake    float64 `default:"1000" help:"Bankroll each session starts with"`
	Bet      float64 `default:"10" help:"Flat bet per round"`
	Hands    int     `default:"1000" help:"Hand budget per session"`
	Sessions int     `default:"1" help:"Number of sessions to run"`
	Parallel int     `default:"1" help:"Concurrent sessions"`

	Strategy string `type:"path" help:"Strategy table CSV (defaults to the built-in conservative table)"`
	Scenario string `help:"Play a pinned card scenario: split_8s, double_after_split, soft_17, soft19v6, split_aces"`
	Seed     *int64 `help:"Random seed for reproducible runs"`

	CSV     string `name:"csv" type:"path" help:"Write per-session results to a CSV file"`
	Verbose bool   `short:"v" help:"Round-by-round event logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("houseedge"),
		kong.Description("Blackjack strategy simulator for measuring the house edge"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	r, err := resolveRules(cli, logger)
	if err != nil {
		logger.Fatal("invalid rules", "error", err)
	}

	var table *strategy.Table
	if cli.Strategy != "" {
		table = strategy.Load(cli.Strategy, logger)
	} else {
		table = strategy.Default()
	}

	var subscriber game.EventSubscriber
	if cli.Verbose && cli.Sessions == 1 {
		subscriber = &eventLogger{logger: logger}
	}

	sim := simulator.New(simulator.Config{
		Rules:      r,
		Table:      table,
		Stake:      cli.Stake,
		Bet:        cli.Bet,
		Hands:      cli.Hands,
		Sessions:   cli.Sessions,
		Seed:       seed,
		Parallel:   cli.Parallel,
		Scenario:   cli.Scenario,
		Subscriber: subscriber,
		Logger:     logger,
	})

	start := time.Now()
	set, results, err := sim.Run(context.Background())
	if err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
	elapsed := time.Since(start)

	printReport(cli, r, seed, set, results, elapsed)

	if cli.CSV != "" {
		if err := writeCSV(cli.CSV, results); err != nil {
			logger.Fatal("writing csv", "error", err)
		}
		fmt.Printf("\nSession results written to %s\n", cli.CSV)
	}

	ctx.Exit(0)
}

// resolveRules builds the rule set from the named preset or rules file, then
// applies any flag overrides.
func resolveRules(cli CLI, logger *log.Logger) (rules.Rules, error) {
	var r rules.Rules
	if cli.RulesFile != "" {
		sets, err := rules.LoadFile(cli.RulesFile)
		if err != nil {
			return r, err
		}
		found, ok := sets[cli.RuleSet]
		if !ok {
			// fall through to the built-in presets
			preset, err := rules.Preset(cli.RuleSet)
			if err != nil {
				return r, fmt.Errorf("rule set %q not in %s or the built-in presets", cli.RuleSet, cli.RulesFile)
			}
			found = preset
		}
		r = found
	} else {
		preset, err := rules.Preset(cli.RuleSet)
		if err != nil {
			return r, fmt.Errorf("unknown rule set %q (have: %s)", cli.RuleSet, strings.Join(rules.PresetNames(), ", "))
		}
		r = preset
	}

	if cli.Decks != nil {
		r.Decks = *cli.Decks
	}
	if cli.Payout != "" {
		payout, err := parsePayout(cli.Payout)
		if err != nil {
			return r, err
		}
		r.BlackjackPayout = payout
	}

	if err := r.Validate(); err != nil {
		return r, err
	}
	logger.Debug("rules resolved",
		"rule_set", cli.RuleSet, "decks", r.Decks, "payout", r.BlackjackPayout)
	return r, nil
}

// parsePayout parses a blackjack payout as a ratio like "3:2" or a plain
// multiplier like "1.5".
func parsePayout(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, ":"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid payout %q", s)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid payout %q", s)
		}
		return n / d, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid payout %q", s)
	}
	return f, nil
}

// eventLogger narrates round events through the logger for verbose runs.
type eventLogger struct {
	logger *log.Logger
}

func (l *eventLogger) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		l.logger.Info("round start", "wager", e.Wager, "shoe", e.Remaining)
	case game.CardDealtEvent:
		l.logger.Info("card dealt", "to", e.To, "card", e.Card.String())
	case game.ActionChosenEvent:
		l.logger.Info("action", "hand", e.Hand, "upcard", e.Upcard.String(),
			"table", e.Raw.Code(), "plays", e.Resolved.String())
	case game.HandSplitEvent:
		l.logger.Info("split", "rank", e.Rank.String(), "aces", e.SplitAces, "splits", e.Splits)
	case game.HandBustEvent:
		l.logger.Info("bust", "hand", e.Hand, "wager", e.Wager)
	case game.SurrenderEvent:
		l.logger.Info("surrender", "hand", e.Hand, "loss", e.Loss)
	case game.DealerStandEvent:
		l.logger.Info("dealer", "hand", e.Hand, "value", e.Value, "busted", e.Busted)
	case game.RoundSettledEvent:
		l.logger.Info("settled", "net", e.Net, "blackjack", e.Blackjack,
			"surrender", e.Surrender, "bust", e.Bust, "push", e.Push)
	}
}
