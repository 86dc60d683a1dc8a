package literal

import (
	"github.com/coregx/tinygrep/syntax"
)

// ExtractorConfig bounds extraction so complex patterns cannot blow up
// the literal set.
type ExtractorConfig struct {
	// MaxLiterals caps the number of literals in the result. Crossing a
	// concatenation multiplies alternatives; extraction stops extending
	// once the cap would be exceeded. Default: 64.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal. Longer prefixes
	// stop extending and are kept as incomplete. Default: 64.
	MaxLiteralLen int

	// MaxClassSize is the largest character class to expand into its
	// member bytes. Larger classes end extraction instead. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor computes the prefix-literal sequence of a pattern.
//
// The result is sound for candidate filtering: every match of the
// pattern starts with one of the returned literals. When no such finite
// set exists (the pattern can start with '.', a negated class, a
// back-reference and so on), ExtractPrefixes returns nil.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = 64
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = 64
	}
	if config.MaxClassSize <= 0 {
		config.MaxClassSize = 10
	}
	return &Extractor{config: config}
}

// ExtractPrefixes returns the prefix literals of re, minimized, or nil
// when the pattern yields no usable literal set. Literals marked
// Complete cover an entire match of the pattern.
func (e *Extractor) ExtractPrefixes(re *syntax.Regexp) *Seq {
	seq := e.prefixes(re.Root)
	if seq == nil || seq.IsEmpty() {
		return nil
	}
	seq.Minimize()
	// An empty literal makes every position a candidate; the sequence
	// filters nothing.
	if seq.MinLen() == 0 {
		return nil
	}
	return seq
}

// prefixes returns the prefix literals of a single node, or nil when the
// node admits no finite prefix set. A returned literal is Complete when
// it is exactly one full match of the node.
func (e *Extractor) prefixes(n *syntax.Node) *Seq {
	switch n.Op {
	case syntax.OpLiteral:
		return NewSeq(Literal{Bytes: []byte{n.Byte}, Complete: true})

	case syntax.OpClass:
		if n.Negate || n.Set.Len() > e.config.MaxClassSize {
			return nil
		}
		seq := NewSeq()
		for b := 0; b < 256; b++ {
			if n.Set.Contains(byte(b)) {
				seq.Push(Literal{Bytes: []byte{byte(b)}, Complete: true})
			}
		}
		return seq

	case syntax.OpCapture:
		return e.prefixes(n.Sub[0])

	case syntax.OpConcat:
		return e.concatPrefixes(n.Sub)

	case syntax.OpAlternate:
		left := e.prefixes(n.Sub[0])
		right := e.prefixes(n.Sub[1])
		if left == nil || right == nil {
			// One branch can start with anything, so the union filters
			// nothing.
			return nil
		}
		if left.Len()+right.Len() > e.config.MaxLiterals {
			return nil
		}
		for i := 0; i < right.Len(); i++ {
			left.Push(right.Get(i))
		}
		return left

	case syntax.OpPlus:
		// One occurrence of the child is required, so the child's
		// prefixes are prefixes here too, but more input may follow.
		return incomplete(e.prefixes(n.Sub[0]))

	default:
		// '.', \d, \w, anchors, '?' and back-references end extraction:
		// either they admit too many first bytes or they can match
		// empty, making the accumulated prefix optional.
		return nil
	}
}

// concatPrefixes crosses child literal sets left to right while every
// accumulated literal is still a complete match of the consumed
// children. The first child that yields no literals (or blows a limit)
// downgrades the accumulated set to incomplete prefixes.
func (e *Extractor) concatPrefixes(sub []*syntax.Node) *Seq {
	acc := NewSeq(Literal{Bytes: nil, Complete: true})
	for _, child := range sub {
		cs := e.prefixes(child)
		if cs == nil {
			return incomplete(acc)
		}
		if !cs.AllComplete() {
			// The child contributes prefixes of itself, not complete
			// matches; extend the accumulated literals one step and stop.
			if crossed, ok := e.cross(acc, cs); ok {
				return incomplete(crossed)
			}
			return incomplete(acc)
		}
		crossed, ok := e.cross(acc, cs)
		if !ok {
			return incomplete(acc)
		}
		acc = crossed
	}
	return acc
}

// cross concatenates every literal of a with every literal of b.
// Reports false when a limit would be exceeded.
func (e *Extractor) cross(a, b *Seq) (*Seq, bool) {
	if a.Len()*b.Len() > e.config.MaxLiterals {
		return nil, false
	}
	out := NewSeq()
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			la, lb := a.Get(i), b.Get(j)
			if la.Len()+lb.Len() > e.config.MaxLiteralLen {
				return nil, false
			}
			joined := make([]byte, 0, la.Len()+lb.Len())
			joined = append(joined, la.Bytes...)
			joined = append(joined, lb.Bytes...)
			out.Push(Literal{Bytes: joined, Complete: la.Complete && lb.Complete})
		}
	}
	return out, true
}

// incomplete clears the Complete flag on every literal of seq and drops
// empty literals. Returns nil when nothing usable remains.
func incomplete(seq *Seq) *Seq {
	if seq == nil {
		return nil
	}
	out := NewSeq()
	for i := 0; i < seq.Len(); i++ {
		l := seq.Get(i)
		if l.Len() == 0 {
			continue
		}
		out.Push(Literal{Bytes: l.Bytes, Complete: false})
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}
