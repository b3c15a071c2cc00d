// Package strategy maps player hands and dealer up-cards to prescribed
// actions. Tables are loaded from CSV or fall back to a built-in
// conservative matrix; lookups are pure and never fail.
package strategy

import "strings"

// RawAction is an action code as written in a strategy table. Conditional
// codes (B, U, Q) and the context-dependent ones (D, X, P) are reduced to a
// concrete Action by Resolve before the engine applies them.
type RawAction int

const (
	RawStand            RawAction = iota // S
	RawHit                               // H
	RawDouble                            // D: double, else hit
	RawSplit                             // P: split, else hit
	RawSurrender                         // X: surrender, else hit
	RawDoubleOrStand                     // B: double, else stand
	RawSurrenderOrStand                  // U: surrender, else stand
	RawSurrenderOrSplit                  // Q: surrender, else split, else hit
)

// Code returns the single-letter table code for the action.
func (a RawAction) Code() string {
	switch a {
	case RawStand:
		return "S"
	case RawHit:
		return "H"
	case RawDouble:
		return "D"
	case RawSplit:
		return "P"
	case RawSurrender:
		return "X"
	case RawDoubleOrStand:
		return "B"
	case RawSurrenderOrStand:
		return "U"
	case RawSurrenderOrSplit:
		return "Q"
	default:
		return "?"
	}
}

// ParseCode parses a single-letter action code, case-insensitively.
func ParseCode(s string) (RawAction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return RawStand, true
	case "H":
		return RawHit, true
	case "D":
		return RawDouble, true
	case "P":
		return RawSplit, true
	case "X":
		return RawSurrender, true
	case "B":
		return RawDoubleOrStand, true
	case "U":
		return RawSurrenderOrStand, true
	case "Q":
		return RawSurrenderOrSplit, true
	default:
		return 0, false
	}
}

// Action is a concrete action the engine can apply to a hand.
type Action int

const (
	Stand Action = iota
	Hit
	Double
	Split
	Surrender
)

// String returns the action name for logs and events.
func (a Action) String() string {
	switch a {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}
