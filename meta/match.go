package meta

import (
	"github.com/coregx/tinygrep/backtrack"
)

// Match describes one successful match: the overall span plus the
// capture table of the winning attempt.
type Match struct {
	start    int
	end      int
	haystack []byte
	groups   []backtrack.Span
}

func newMatch(start, end int, haystack []byte, captures []backtrack.Span) *Match {
	groups := make([]backtrack.Span, len(captures))
	copy(groups, captures)
	return &Match{start: start, end: end, haystack: haystack, groups: groups}
}

// Start returns the byte offset where the match begins.
func (m *Match) Start() int {
	return m.start
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.end
}

// Bytes returns the matched input slice. The slice aliases the searched
// input.
func (m *Match) Bytes() []byte {
	return m.haystack[m.start:m.end]
}

// String returns the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}

// NumGroups returns the number of capturing groups in the pattern.
func (m *Match) NumGroups() int {
	return len(m.groups)
}

// GroupSpan returns the span captured by group index (1-based) and
// whether the group participated in the match.
func (m *Match) GroupSpan(index int) (backtrack.Span, bool) {
	if index < 1 || index > len(m.groups) {
		return backtrack.Span{Start: -1, End: -1}, false
	}
	sp := m.groups[index-1]
	return sp, sp.IsSet()
}

// Group returns the text captured by group index (1-based), or nil when
// the group did not participate in the match.
func (m *Match) Group(index int) []byte {
	sp, ok := m.GroupSpan(index)
	if !ok {
		return nil
	}
	return m.haystack[sp.Start:sp.End]
}
