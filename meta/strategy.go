package meta

import (
	"github.com/coregx/tinygrep/prefilter"
	"github.com/coregx/tinygrep/syntax"
)

// Strategy identifies how the engine searches the input.
type Strategy int

const (
	// UseScan tries a backtracking attempt at every start offset
	// 0..len(input). The default when nothing better applies.
	UseScan Strategy = iota

	// UseAnchoredStart runs a single attempt at offset 0. Selected for
	// patterns that begin with '^'.
	UseAnchoredStart

	// UsePrefilteredScan runs attempts only at positions where one of
	// the pattern's required prefix literals occurs.
	UsePrefilteredScan

	// UseLiteralScan answers boolean matching from the prefilter alone:
	// the pattern is a plain literal alternation, so finding any of its
	// literals is already a match.
	UseLiteralScan
)

var strategyNames = [...]string{
	UseScan:            "Scan",
	UseAnchoredStart:   "AnchoredStart",
	UsePrefilteredScan: "PrefilteredScan",
	UseLiteralScan:     "LiteralScan",
}

// String returns the strategy name for debugging.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "Unknown"
}

// selectStrategy picks the execution strategy for a compiled pattern.
//
// Anchoring wins over prefiltering: an anchored search is a single
// attempt, which no candidate scan can beat. A complete prefilter (pure
// literal alternation) bypasses verification entirely for boolean
// matching; Find still verifies so that match spans follow the
// engine's leftmost preference order rather than the automaton's.
func selectStrategy(re *syntax.Regexp, pf prefilter.Prefilter) Strategy {
	if re.StartAnchored {
		return UseAnchoredStart
	}
	if pf == nil {
		return UseScan
	}
	if pf.IsComplete() && re.NumCaptures == 0 && !re.EndAnchored {
		return UseLiteralScan
	}
	return UsePrefilteredScan
}
