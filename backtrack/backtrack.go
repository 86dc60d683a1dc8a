// Package backtrack implements the execution engine for parsed patterns:
// a recursive-descent backtracking matcher with capture tracking.
//
// Back-references rule out a pure automaton simulation (matching them is
// NP-hard in general), so the engine walks the AST directly, trying
// alternatives and quantifier expansions in preference order and
// unwinding capture state on failure. Preference order is the
// conventional one: quantifiers are greedy, alternation prefers the left
// branch, '?' prefers presence. The first match found in that order wins.
//
// A Searcher is immutable and safe for concurrent use; each concurrent
// search needs its own State.
package backtrack

import (
	"bytes"
	"errors"

	"github.com/coregx/tinygrep/syntax"
)

// ErrTooComplex is returned when a single match attempt exhausts its
// step budget. It is surfaced at match time only; a pattern that
// compiled successfully never fails to compile here.
var ErrTooComplex = errors.New("backtrack: pattern too complex")

// DefaultMaxSteps is the default per-attempt step budget. Each visited
// AST node costs one step, so the budget bounds both runtime and
// recursion depth on pathological patterns.
const DefaultMaxSteps = 1 << 22

// Span is a half-open byte range [Start, End) into the input. An unset
// capture has Start < 0.
type Span struct {
	Start int
	End   int
}

// IsSet reports whether the span holds a captured range.
func (s Span) IsSet() bool {
	return s.Start >= 0
}

// Searcher executes one compiled pattern. It holds no per-search state.
type Searcher struct {
	prog     *syntax.Regexp
	maxSteps int
}

// NewSearcher creates a Searcher for prog. maxSteps bounds the work of a
// single attempt; zero or negative selects DefaultMaxSteps.
func NewSearcher(prog *syntax.Regexp, maxSteps int) *Searcher {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Searcher{prog: prog, maxSteps: maxSteps}
}

// State holds the per-attempt mutable state: the capture table and the
// step counter. A State must not be shared between goroutines; obtain
// one per concurrent search and reuse it across attempts.
type State struct {
	caps  []Span
	steps int
}

// NewState creates a State sized for a pattern with numCaptures groups.
func NewState(numCaptures int) *State {
	st := &State{caps: make([]Span, numCaptures)}
	st.clearCaps()
	return st
}

func (st *State) clearCaps() {
	for i := range st.caps {
		st.caps[i] = Span{Start: -1, End: -1}
	}
}

// Captures returns the capture table of the most recent successful
// attempt. Index 0 holds group 1. The slice is valid until the next
// attempt on this State.
func (st *State) Captures() []Span {
	return st.caps
}

// TryAt runs one anchored match attempt at start. It returns the end
// offset of the match, or -1 when the pattern cannot match at start.
// ErrTooComplex is returned when the attempt exceeds the step budget.
//
// The capture table in st is reset before the attempt; on success it
// holds the winning captures.
func (s *Searcher) TryAt(st *State, input []byte, start int) (int, error) {
	st.steps = s.maxSteps
	st.clearCaps()

	m := &machine{st: st, input: input}
	end := -1
	matched := m.match(s.prog.Root, start, func(pos int) bool {
		// A trailing $ in the pattern became a flag; enforce it here so
		// partial matches that leave trailing input are rejected.
		if s.prog.EndAnchored && pos != len(input) {
			return false
		}
		end = pos
		return true
	})
	if m.overflow {
		return -1, ErrTooComplex
	}
	if !matched {
		return -1, nil
	}
	return end, nil
}

// machine is the per-attempt evaluator. match is written in
// continuation-passing style: k receives the position after the node
// matched, and its boolean result propagates back so every construct
// shares one backtracking mechanism. Capture writes are undone on the
// failure path, which is observably identical to snapshotting the whole
// table at each decision point.
type machine struct {
	st       *State
	input    []byte
	overflow bool
}

func (m *machine) match(n *syntax.Node, pos int, k func(int) bool) bool {
	if m.st.steps <= 0 {
		m.overflow = true
		return false
	}
	m.st.steps--

	switch n.Op {
	case syntax.OpLiteral:
		if pos < len(m.input) && m.input[pos] == n.Byte {
			return k(pos + 1)
		}
		return false

	case syntax.OpAnyByte:
		if pos < len(m.input) {
			return k(pos + 1)
		}
		return false

	case syntax.OpDigit:
		if pos < len(m.input) && syntax.IsDigit(m.input[pos]) {
			return k(pos + 1)
		}
		return false

	case syntax.OpWord:
		if pos < len(m.input) && syntax.IsWord(m.input[pos]) {
			return k(pos + 1)
		}
		return false

	case syntax.OpClass:
		if pos < len(m.input) && n.Set.Contains(m.input[pos]) != n.Negate {
			return k(pos + 1)
		}
		return false

	case syntax.OpBegin:
		if pos == 0 {
			return k(pos)
		}
		return false

	case syntax.OpEnd:
		if pos == len(m.input) {
			return k(pos)
		}
		return false

	case syntax.OpConcat:
		return m.matchSeq(n.Sub, 0, pos, k)

	case syntax.OpAlternate:
		if m.match(n.Sub[0], pos, k) {
			return true
		}
		return m.match(n.Sub[1], pos, k)

	case syntax.OpQuest:
		if m.match(n.Sub[0], pos, k) {
			return true
		}
		return k(pos)

	case syntax.OpPlus:
		return m.matchPlus(n.Sub[0], pos, k)

	case syntax.OpCapture:
		idx := n.Index - 1
		old := m.st.caps[idx]
		return m.match(n.Sub[0], pos, func(end int) bool {
			m.st.caps[idx] = Span{Start: pos, End: end}
			if k(end) {
				return true
			}
			m.st.caps[idx] = old
			return false
		})

	case syntax.OpBackRef:
		sp := m.st.caps[n.Index-1]
		if !sp.IsSet() {
			// An unset capture is a normal state during backtracking,
			// not an error; the reference simply fails to match.
			return false
		}
		ref := m.input[sp.Start:sp.End]
		if !bytes.HasPrefix(m.input[pos:], ref) {
			return false
		}
		return k(pos + len(ref))
	}

	return false
}

// matchSeq matches sub[i:] starting at pos, threading the final
// continuation through every element so later elements can drive
// backtracking in earlier ones.
func (m *machine) matchSeq(sub []*syntax.Node, i, pos int, k func(int) bool) bool {
	if i == len(sub) {
		return k(pos)
	}
	return m.match(sub[i], pos, func(next int) bool {
		return m.matchSeq(sub, i+1, next, k)
	})
}

// matchPlus implements greedy one-or-more: take iterations as long as
// the child advances, then yield positions back to k one iteration at a
// time. An iteration that consumes nothing ends the loop immediately so
// empty-matching atoms (nested empty groups, empty alternatives) cannot
// spin forever.
func (m *machine) matchPlus(child *syntax.Node, pos int, k func(int) bool) bool {
	var more func(int) bool
	more = func(p int) bool {
		if m.match(child, p, func(next int) bool {
			if next == p {
				return false
			}
			return more(next)
		}) {
			return true
		}
		return k(p)
	}
	// The first iteration is required. If it matches without consuming
	// input, further iterations are skipped.
	return m.match(child, pos, func(next int) bool {
		if next == pos {
			return k(next)
		}
		return more(next)
	})
}
