package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/tinygrep/literal"
)

func build(t *testing.T, complete bool, lits ...string) Prefilter {
	t.Helper()
	seq := literal.NewSeq()
	for _, l := range lits {
		seq.Push(literal.Literal{Bytes: []byte(l), Complete: complete})
	}
	pf := NewBuilder(seq).Build()
	if pf == nil {
		t.Fatalf("Build() = nil for literals %v", lits)
	}
	return pf
}

// TestBuilderSelection tests that the builder picks the cheapest
// strategy for the literal set.
func TestBuilderSelection(t *testing.T) {
	tests := []struct {
		name string
		lits []string
		want string
	}{
		{"single byte", []string{"x"}, "memchr"},
		{"single substring", []string{"hello"}, "memmem"},
		{"two literals", []string{"cat", "dog"}, "aho-corasick"},
		{"many literals", []string{"a1", "b2", "c3", "d4", "e5"}, "aho-corasick"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := build(t, true, tt.lits...)
			if !strings.HasPrefix(pf.String(), tt.want) {
				t.Errorf("String() = %q, want prefix %q", pf.String(), tt.want)
			}
		})
	}
}

// TestBuilderRejects tests sequences that admit no prefilter.
func TestBuilderRejects(t *testing.T) {
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Errorf("Build(nil seq) = %v, want nil", pf)
	}
	if pf := NewBuilder(literal.NewSeq()).Build(); pf != nil {
		t.Errorf("Build(empty seq) = %v, want nil", pf)
	}
	empty := literal.NewSeq(literal.Literal{Bytes: nil, Complete: true})
	if pf := NewBuilder(empty).Build(); pf != nil {
		t.Errorf("Build(seq with empty literal) = %v, want nil", pf)
	}
}

// TestFind tests candidate positions across all three strategies.
func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		lits     []string
		haystack string
		start    int
		want     int
	}{
		{"memchr hit", []string{"x"}, "aaxaa", 0, 2},
		{"memchr from start", []string{"x"}, "xaxaa", 1, 2},
		{"memchr miss", []string{"x"}, "aaaaa", 0, -1},
		{"memchr start at end", []string{"x"}, "ax", 2, -1},
		{"memmem hit", []string{"cat"}, "a cat sat", 0, 2},
		{"memmem later", []string{"cat"}, "cat cat", 1, 4},
		{"memmem miss", []string{"cat"}, "a dog sat", 0, -1},
		{"aho first of two", []string{"cat", "dog"}, "a dog and a cat", 0, 2},
		{"aho second", []string{"cat", "dog"}, "a dog and a cat", 3, 12},
		{"aho miss", []string{"cat", "dog"}, "birds only", 0, -1},
		{"aho overlapping starts", []string{"abc", "b"}, "abc", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := build(t, false, tt.lits...)
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d",
					tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

// TestIsComplete tests that completeness follows the literal flags.
func TestIsComplete(t *testing.T) {
	if pf := build(t, true, "cat", "dog"); !pf.IsComplete() {
		t.Error("complete literal set reports IsComplete = false")
	}
	if pf := build(t, false, "cat", "dog"); pf.IsComplete() {
		t.Error("incomplete literal set reports IsComplete = true")
	}
	if pf := build(t, true, "x"); !pf.IsComplete() {
		t.Error("complete single byte reports IsComplete = false")
	}
}
