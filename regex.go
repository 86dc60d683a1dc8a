// Package tinygrep provides the regular-expression engine behind the
// tinygrep line-search tool.
//
// The dialect supports literals, '.', the classes \d and \w, bracket
// classes (without ranges), the anchors ^ and $, capturing groups,
// single-digit back-references \1-\9, alternation, and the quantifiers
// '+' and '?'. Back-references require a backtracking matcher, so the
// engine walks the pattern AST directly instead of simulating an
// automaton; literal prefilters keep the common cases fast.
//
// Basic usage:
//
//	re, err := tinygrep.Compile(`(cat) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := re.MatchString("cat and cat")
//	// ok == true
//
// A compiled Regexp is safe for concurrent use.
package tinygrep

import (
	"github.com/coregx/tinygrep/meta"
)

// Regexp is a compiled regular expression.
type Regexp struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern. A malformed pattern is reported with the
// byte offset of the problem; see the syntax package for the error
// taxonomy.
func Compile(pattern string) (*Regexp, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern}, nil
}

// MustCompile is like Compile but panics on a malformed pattern. Useful
// for patterns known to be valid at program start.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinygrep: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom engine configuration.
func CompileWithConfig(pattern string, config meta.Config) (*Regexp, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default engine configuration, suitable for
// customizing and passing to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// String returns the source pattern text.
func (r *Regexp) String() string {
	return r.pattern
}

// NumCaptures returns the number of capturing groups in the pattern.
func (r *Regexp) NumCaptures() int {
	return r.engine.NumCaptures()
}

// Match reports whether b contains any match of the pattern.
//
// A pattern that compiled always yields a definite boolean; the only
// possible error is backtrack.ErrTooComplex when a pathological
// pattern/input pair exhausts the backtracking step budget.
func (r *Regexp) Match(b []byte) (bool, error) {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) (bool, error) {
	return r.Match([]byte(s))
}

// Find returns the text of the leftmost match in b, or nil when there
// is no match. The result aliases b.
func (r *Regexp) Find(b []byte) ([]byte, error) {
	m, err := r.engine.Find(b)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// FindString returns the text of the leftmost match in s, or "" when
// there is no match. An empty match and no match are distinguishable
// only through FindStringIndex.
func (r *Regexp) FindString(s string) (string, error) {
	m, err := r.engine.Find([]byte(s))
	if err != nil || m == nil {
		return "", err
	}
	return m.String(), nil
}

// FindIndex returns the span [loc[0], loc[1]) of the leftmost match in
// b, or nil when there is no match.
func (r *Regexp) FindIndex(b []byte) ([]int, error) {
	m, err := r.engine.Find(b)
	if err != nil || m == nil {
		return nil, err
	}
	return []int{m.Start(), m.End()}, nil
}

// FindStringIndex is FindIndex on a string input.
func (r *Regexp) FindStringIndex(s string) ([]int, error) {
	return r.FindIndex([]byte(s))
}

// FindSubmatchIndex returns the spans of the leftmost match and its
// capturing groups: index pairs 2i, 2i+1 hold group i, with the overall
// match as group 0. A group that did not participate holds -1, -1.
// Returns nil when there is no match.
func (r *Regexp) FindSubmatchIndex(b []byte) ([]int, error) {
	m, err := r.engine.FindSubmatch(b)
	if err != nil || m == nil {
		return nil, err
	}
	loc := make([]int, 0, 2*(m.NumGroups()+1))
	loc = append(loc, m.Start(), m.End())
	for i := 1; i <= m.NumGroups(); i++ {
		sp, ok := m.GroupSpan(i)
		if !ok {
			loc = append(loc, -1, -1)
			continue
		}
		loc = append(loc, sp.Start, sp.End)
	}
	return loc, nil
}

// FindStringSubmatch returns the text of the leftmost match and its
// capturing groups, with the overall match first. A group that did not
// participate yields "". Returns nil when there is no match.
func (r *Regexp) FindStringSubmatch(s string) ([]string, error) {
	b := []byte(s)
	m, err := r.engine.FindSubmatch(b)
	if err != nil || m == nil {
		return nil, err
	}
	out := make([]string, 0, m.NumGroups()+1)
	out = append(out, m.String())
	for i := 1; i <= m.NumGroups(); i++ {
		out = append(out, string(m.Group(i)))
	}
	return out, nil
}
