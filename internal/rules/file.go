package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the on-disk representation of custom rule sets:
//
//	ruleset "my_casino" {
//	  decks              = 6
//	  blackjack_payout   = 1.5
//	  max_splits         = 3
//	  resplit_aces       = true
//	  double_after_split = true
//	}
//
// Omitted fields fall back to Vegas Strip values. The invariant-true fields
// are not configurable from a file.
type File struct {
	RuleSets []FileRuleSet `hcl:"ruleset,block"`
}

// FileRuleSet is a single named rule-set block.
type FileRuleSet struct {
	Name             string   `hcl:"name,label"`
	Decks            *int     `hcl:"decks,optional"`
	BlackjackPayout  *float64 `hcl:"blackjack_payout,optional"`
	MaxSplits        *int     `hcl:"max_splits,optional"`
	ResplitAces      *bool    `hcl:"resplit_aces,optional"`
	DoubleAfterSplit *bool    `hcl:"double_after_split,optional"`
}

// LoadFile parses an HCL rules file and returns the named rule sets it
// defines, each validated. A missing file is an error here; callers that
// treat the file as optional should stat it first.
func LoadFile(filename string) (map[string]Rules, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("rules: failed to parse %s: %s", filename, diags.Error())
	}

	var decoded File
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("rules: failed to decode %s: %s", filename, diags.Error())
	}

	sets := make(map[string]Rules, len(decoded.RuleSets))
	for _, rs := range decoded.RuleSets {
		r := VegasStrip()
		if rs.Decks != nil {
			r.Decks = *rs.Decks
		}
		if rs.BlackjackPayout != nil {
			r.BlackjackPayout = *rs.BlackjackPayout
		}
		if rs.MaxSplits != nil {
			r.MaxSplits = *rs.MaxSplits
		}
		if rs.ResplitAces != nil {
			r.ResplitAces = *rs.ResplitAces
		}
		if rs.DoubleAfterSplit != nil {
			r.DoubleAfterSplit = *rs.DoubleAfterSplit
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rules: ruleset %q: %w", rs.Name, err)
		}
		sets[rs.Name] = r
	}
	return sets, nil
}
