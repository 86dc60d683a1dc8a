// Package syntax parses tinygrep regular expressions into an abstract
// syntax tree.
//
// The dialect is deliberately small: literals, '.', the classes \d and \w,
// bracket classes (no ranges), the anchors ^ and $, grouping with capture,
// single-digit back-references, alternation, and the quantifiers '+' and '?'.
// Patterns are byte-oriented; multi-byte code points in a pattern are
// matched literally byte by byte.
//
// A parsed pattern is immutable and may be shared freely across goroutines.
package syntax

import "math/bits"

// Op identifies the variant of an AST node. Nodes form a closed set of
// variants; consumers dispatch on Op rather than on concrete types.
type Op uint8

const (
	// OpLiteral matches exactly one byte (Node.Byte).
	OpLiteral Op = 1 + iota

	// OpAnyByte matches any single byte ('.').
	OpAnyByte

	// OpDigit matches any byte in '0'-'9' (the class \d).
	OpDigit

	// OpWord matches any byte in 'A'-'Z', 'a'-'z', '0'-'9' or '_' (the class \w).
	OpWord

	// OpClass matches a byte inside (or, with Negate, outside) Node.Set.
	OpClass

	// OpBegin matches the empty string at the start of the input.
	OpBegin

	// OpEnd matches the empty string at the end of the input.
	OpEnd

	// OpConcat matches the concatenation of Node.Sub, in order.
	// An OpConcat with no children matches the empty string.
	OpConcat

	// OpAlternate matches either Sub[0] or Sub[1], preferring Sub[0].
	OpAlternate

	// OpPlus matches one or more occurrences of Sub[0], greedily.
	OpPlus

	// OpQuest matches zero or one occurrence of Sub[0], preferring one.
	OpQuest

	// OpCapture matches Sub[0] and records the matched span under
	// Node.Index (1-based, assigned in left-parenthesis order).
	OpCapture

	// OpBackRef matches the exact bytes previously captured by group
	// Node.Index. An unset capture never matches.
	OpBackRef
)

var opNames = [...]string{
	OpLiteral:   "Literal",
	OpAnyByte:   "AnyByte",
	OpDigit:     "Digit",
	OpWord:      "Word",
	OpClass:     "Class",
	OpBegin:     "Begin",
	OpEnd:       "End",
	OpConcat:    "Concat",
	OpAlternate: "Alternate",
	OpPlus:      "Plus",
	OpQuest:     "Quest",
	OpCapture:   "Capture",
	OpBackRef:   "BackRef",
}

// String returns the name of the op for debugging.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Unknown"
}

// Node is a single AST node. Which fields are meaningful depends on Op:
//
//	OpLiteral            Byte
//	OpClass              Set, Negate
//	OpCapture, OpBackRef Index
//	OpConcat             Sub (any length, possibly empty)
//	OpAlternate          Sub[0], Sub[1]
//	OpPlus, OpQuest      Sub[0]
//
// Nodes are immutable after Parse returns.
type Node struct {
	Op     Op
	Sub    []*Node
	Set    *ByteSet
	Index  int
	Byte   byte
	Negate bool
}

// Regexp is a compiled pattern: the AST root plus the metadata the
// matcher and the meta-engine need to execute it.
type Regexp struct {
	// Root is the top of the AST. It never contains the leading ^ or
	// trailing $ that set the anchor flags below; anchors elsewhere in
	// the pattern appear as OpBegin/OpEnd nodes.
	Root *Node

	// NumCaptures is the number of capturing groups in the pattern.
	NumCaptures int

	// StartAnchored reports that the pattern began with '^'. The
	// meta-engine then pins matching to offset 0 instead of scanning
	// every start offset.
	StartAnchored bool

	// EndAnchored reports that the pattern ended with '$'. The matcher
	// then rejects attempts that leave trailing input.
	EndAnchored bool

	pattern string
}

// String returns the source pattern text.
func (re *Regexp) String() string {
	return re.pattern
}

// ByteSet is a set of byte values, stored as a 256-bit vector.
type ByteSet struct {
	bits [4]uint64
}

// Add inserts b into the set. Duplicate adds are idempotent.
func (s *ByteSet) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// AddRange inserts every byte in [lo, hi] into the set.
func (s *ByteSet) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsDigit reports whether b matches the \d class.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsWord reports whether b matches the \w class.
func IsWord(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
