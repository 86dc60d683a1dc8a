// Package prefilter provides fast candidate filtering for regex search
// using extracted literal sequences.
//
// A prefilter quickly rejects positions that cannot start a match: the
// backtracking engine only runs at positions where one of the pattern's
// required prefix literals occurs. The builder picks the cheapest
// strategy for the literal set:
//   - a single one-byte literal → byte scan (bytes.IndexByte)
//   - a single literal → substring scan (bytes.Index)
//   - several literals → Aho-Corasick automaton
//
// Prefilters are immutable and safe for concurrent use.
package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinygrep/literal"
)

// Prefilter finds candidate match positions before the full engine runs.
type Prefilter interface {
	// Find returns the smallest index >= start where one of the
	// prefilter literals occurs, or -1 when there is none. The caller
	// verifies the candidate with the full engine unless IsComplete
	// reports otherwise.
	Find(haystack []byte, start int) int

	// IsComplete reports that a candidate is already a full match of
	// the pattern, so boolean matching needs no verification.
	IsComplete() bool

	// String describes the strategy for debugging.
	String() string
}

// Builder constructs a Prefilter from an extracted literal sequence.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a builder for seq. seq may be nil.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build returns the best prefilter for the sequence, or nil when the
// sequence admits none (empty, or an automaton could not be built).
func (b *Builder) Build() Prefilter {
	if b.seq == nil || b.seq.IsEmpty() || b.seq.MinLen() == 0 {
		return nil
	}
	complete := b.seq.AllComplete()

	if b.seq.Len() == 1 {
		lit := b.seq.Get(0)
		if lit.Len() == 1 {
			return &memchrPrefilter{b: lit.Bytes[0], complete: complete}
		}
		return &memmemPrefilter{needle: lit.Bytes, complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < b.seq.Len(); i++ {
		builder.AddPattern(b.seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoPrefilter{auto: auto, patterns: b.seq.Len(), complete: complete}
}

// memchrPrefilter scans for a single byte.
type memchrPrefilter struct {
	b        byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.b)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) String() string {
	return fmt.Sprintf("memchr(%q)", string(p.b))
}

// memmemPrefilter scans for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) String() string {
	return fmt.Sprintf("memmem(%q)", p.needle)
}

// ahoPrefilter scans for any of several literals with an Aho-Corasick
// automaton, the multi-pattern engine used for literal alternations.
type ahoPrefilter struct {
	auto     *ahocorasick.Automaton
	patterns int
	complete bool
}

func (p *ahoPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoPrefilter) IsComplete() bool { return p.complete }

func (p *ahoPrefilter) String() string {
	return fmt.Sprintf("aho-corasick(%d patterns)", p.patterns)
}
