package meta

import (
	"github.com/coregx/tinygrep/backtrack"
	"github.com/coregx/tinygrep/prefilter"
	"github.com/coregx/tinygrep/syntax"
)

// Engine is a compiled pattern bound to an execution strategy.
//
// The Engine itself is immutable after compilation; per-search mutable
// state (the capture table and step counter) lives in pooled
// backtrack.State values, so one Engine may be used from any number of
// goroutines concurrently.
type Engine struct {
	prog      *syntax.Regexp
	searcher  *backtrack.Searcher
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	statePool *searchStatePool
}

// Pattern returns the source pattern text.
func (e *Engine) Pattern() string {
	return e.prog.String()
}

// NumCaptures returns the number of capturing groups in the pattern.
func (e *Engine) NumCaptures() int {
	return e.prog.NumCaptures
}

// Strategy returns the selected execution strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prefilter returns the candidate filter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// scanFrom returns the next start offset to attempt, at or after 'at'.
// With a prefilter, offsets between candidates cannot start a match and
// are skipped. Returns -1 when no further offset can start a match.
func (e *Engine) scanFrom(haystack []byte, at int) int {
	if at > len(haystack) {
		return -1
	}
	if e.strategy != UsePrefilteredScan && e.strategy != UseLiteralScan {
		return at
	}
	return e.prefilter.Find(haystack, at)
}
