// Package literal extracts literal byte sequences from parsed patterns
// for prefilter optimization.
//
// Every literal in an extracted sequence is a required prefix of some
// match: a position where none of the literals occur cannot start a
// match, so the sequence drives fast candidate filtering before the
// backtracking engine runs.
package literal

import (
	"bytes"
	"sort"
)

// Literal is one byte sequence extracted from a pattern. Complete
// reports that the literal is an entire match on its own, not just a
// required prefix of one.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is a set of alternative literals extracted from one pattern,
// typically produced by alternation (cat|dog yields "cat" and "dog").
type Seq struct {
	lits []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// Push appends a literal.
func (s *Seq) Push(l Literal) {
	s.lits = append(s.lits, l)
}

// AllComplete reports whether every literal is a complete match. When
// true (and the sequence is non-empty), finding any literal in the
// input is already a match; no verification is needed.
func (s *Seq) AllComplete() bool {
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return len(s.lits) > 0
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// Minimize sorts the literals, removes duplicates, and removes literals
// that have another literal of the sequence as a proper prefix: for
// prefix filtering, "foo" makes "foobar" redundant. The surviving shorter
// literal keeps its own Complete flag; duplicates merge into one literal
// that is Complete if any of them was.
func (s *Seq) Minimize() {
	if len(s.lits) < 2 {
		return
	}
	sort.Slice(s.lits, func(i, j int) bool {
		return bytes.Compare(s.lits[i].Bytes, s.lits[j].Bytes) < 0
	})
	out := s.lits[:0]
	for _, l := range s.lits {
		if len(out) > 0 && bytes.HasPrefix(l.Bytes, out[len(out)-1].Bytes) {
			if bytes.Equal(l.Bytes, out[len(out)-1].Bytes) {
				out[len(out)-1].Complete = out[len(out)-1].Complete || l.Complete
			}
			// A literal with another literal as prefix adds no candidate
			// positions; drop it. Completeness of the survivor is
			// unchanged, which keeps AllComplete conservative.
			continue
		}
		out = append(out, l)
	}
	s.lits = out
}
