// Package meta implements the meta-engine orchestrator that compiles a
// pattern and selects the execution strategy for matching it.
//
// The meta-engine coordinates three stages:
//   - syntax: pattern → AST
//   - literal/prefilter: extracted prefix literals → fast candidate scan
//   - backtrack: AST-walking backtracking matcher with captures
//
// Strategy selection is automatic: start-anchored patterns run a single
// attempt at offset 0, pure literal alternations are answered by the
// prefilter alone, patterns with usable prefixes scan only candidate
// positions, and everything else tries every start offset.
package meta

import "fmt"

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Always scan every offset
//	engine, err := meta.CompileWithConfig(`(cat|dog) food`, config)
type Config struct {
	// EnablePrefilter enables literal-based candidate filtering.
	// When false, no prefilter is built even if literals are available.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of the shortest extracted
	// literal for a prefilter to be worth building. Shorter literals
	// produce too many false candidates. Default: 1
	MinLiteralLen int

	// MaxLiterals limits how many prefix literals extraction may
	// produce. Default: 64
	MaxLiterals int

	// MaxClassSize is the largest character class expanded into
	// literals during extraction. Default: 10
	MaxClassSize int

	// MaxSteps bounds the work of a single backtracking attempt.
	// Exceeding it surfaces backtrack.ErrTooComplex at match time.
	// Default: backtrack.DefaultMaxSteps
	MaxSteps int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
		MaxClassSize:    10,
		MaxSteps:        1 << 22,
	}
}

// Validate checks that every parameter is in range.
func (c Config) Validate() error {
	if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
		return &ConfigError{Field: "MinLiteralLen", Message: "must be between 1 and 64"}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
	}
	if c.MaxClassSize < 1 || c.MaxClassSize > 256 {
		return &ConfigError{Field: "MaxClassSize", Message: "must be between 1 and 256"}
	}
	if c.MaxSteps < 1 {
		return &ConfigError{Field: "MaxSteps", Message: "must be positive"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("meta: invalid config field %s: %s", e.Field, e.Message)
}
