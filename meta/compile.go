package meta

import (
	"errors"
	"fmt"

	"github.com/coregx/tinygrep/backtrack"
	"github.com/coregx/tinygrep/literal"
	"github.com/coregx/tinygrep/prefilter"
	"github.com/coregx/tinygrep/syntax"
)

// Compile compiles a pattern into an executable Engine.
//
// Steps:
//  1. Parse the pattern into its AST
//  2. Extract prefix literals
//  3. Build a prefilter when the literals are usable
//  4. Select the execution strategy
//
// The only compile-time failure is a malformed pattern, reported as a
// *CompileError wrapping the *syntax.ParseError.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	prog, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter && !prog.StartAnchored {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxClassSize:  config.MaxClassSize,
			MaxLiteralLen: 64,
		})
		seq := extractor.ExtractPrefixes(prog)
		if seq != nil && seq.MinLen() >= config.MinLiteralLen {
			pf = prefilter.NewBuilder(seq).Build()
		}
	}

	return &Engine{
		prog:      prog,
		searcher:  backtrack.NewSearcher(prog, config.MaxSteps),
		prefilter: pf,
		strategy:  selectStrategy(prog, pf),
		config:    config,
		statePool: newSearchStatePool(prog.NumCaptures),
	}, nil
}

// CompileError wraps a pattern compilation failure.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface. Parse errors already carry the
// pattern and offset, so they are returned as-is.
func (e *CompileError) Error() string {
	var parseErr *syntax.ParseError
	if errors.As(e.Err, &parseErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("meta: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
