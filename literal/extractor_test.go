package literal

import (
	"testing"

	"github.com/coregx/tinygrep/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	re, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return New(DefaultConfig()).ExtractPrefixes(re)
}

func literalStrings(seq *Seq) []string {
	if seq == nil {
		return nil
	}
	out := make([]string, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		out = append(out, string(seq.Get(i).Bytes))
	}
	return out
}

func wantLiterals(t *testing.T, seq *Seq, want ...string) {
	t.Helper()
	got := literalStrings(seq)
	if len(got) != len(want) {
		t.Fatalf("literals = %v, want %v", got, want)
	}
	seen := map[string]bool{}
	for _, g := range got {
		seen[g] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Fatalf("literals = %v, want %v", got, want)
		}
	}
}

// TestExtractPrefixes tests the literal sets produced for common shapes.
func TestExtractPrefixes(t *testing.T) {
	t.Run("pure literal", func(t *testing.T) {
		seq := extract(t, "hello")
		wantLiterals(t, seq, "hello")
		if !seq.AllComplete() {
			t.Error("pure literal should be complete")
		}
	})

	t.Run("literal alternation", func(t *testing.T) {
		seq := extract(t, "cat|dog|bird")
		wantLiterals(t, seq, "cat", "dog", "bird")
		if !seq.AllComplete() {
			t.Error("literal alternation should be complete")
		}
	})

	t.Run("prefix before dot", func(t *testing.T) {
		seq := extract(t, "grep.")
		wantLiterals(t, seq, "grep")
		if seq.AllComplete() {
			t.Error("prefix cut at '.' must be incomplete")
		}
	})

	t.Run("group transparent", func(t *testing.T) {
		seq := extract(t, "(cat|dog) food")
		wantLiterals(t, seq, "cat food", "dog food")
		if !seq.AllComplete() {
			t.Error("literal-only pattern should stay complete")
		}
	})

	t.Run("alternation prefixes via dot", func(t *testing.T) {
		seq := extract(t, "(c.t|d.g)")
		wantLiterals(t, seq, "c", "d")
		if seq.AllComplete() {
			t.Error("cut prefixes must be incomplete")
		}
	})

	t.Run("plus keeps child prefix incomplete", func(t *testing.T) {
		seq := extract(t, "ab+")
		wantLiterals(t, seq, "ab")
		if seq.AllComplete() {
			t.Error("prefix before + must be incomplete")
		}
	})

	t.Run("small class expands", func(t *testing.T) {
		seq := extract(t, "[abc]x")
		wantLiterals(t, seq, "ax", "bx", "cx")
	})

	t.Run("backref cuts", func(t *testing.T) {
		seq := extract(t, `(cat) and \1`)
		wantLiterals(t, seq, "cat and ")
		if seq.AllComplete() {
			t.Error("backref tail must leave the prefix incomplete")
		}
	})
}

// TestExtractNoLiterals tests shapes that admit no finite prefix set.
func TestExtractNoLiterals(t *testing.T) {
	patterns := []string{
		".",       // any first byte
		".at",     // any first byte
		"a?bc",    // optional lead
		"[^x]y",   // negated class lead
		`\w+`,     // 63 member bytes, above MaxClassSize
		"x|.y",    // one branch unbounded
		"",        // empty pattern matches everywhere
		"(a|b?)c", // right branch can be empty
	}
	for _, pattern := range patterns {
		if seq := extract(t, pattern); seq != nil {
			t.Errorf("ExtractPrefixes(%q) = %v, want nil", pattern, literalStrings(seq))
		}
	}
}

// TestDigitLead tests that \d and \w are not expanded; they end
// extraction like a large class.
func TestDigitLead(t *testing.T) {
	if seq := extract(t, `\d apple`); seq != nil {
		t.Errorf("ExtractPrefixes(\\d apple) = %v, want nil", literalStrings(seq))
	}
}

// TestExtractorLimits tests the blow-up guards.
func TestExtractorLimits(t *testing.T) {
	t.Run("cross product cap", func(t *testing.T) {
		// [ab][ab][ab][ab][ab][ab][ab] would cross to 128 > 64 literals;
		// extraction stops extending and keeps the shorter prefixes.
		seq := extract(t, "[ab][ab][ab][ab][ab][ab][ab]")
		if seq == nil {
			t.Fatal("expected truncated prefixes, got nil")
		}
		if seq.AllComplete() {
			t.Error("truncated prefixes must be incomplete")
		}
		if seq.Len() > 64 {
			t.Errorf("literal count %d exceeds MaxLiterals", seq.Len())
		}
	})

	t.Run("alternation cap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxLiterals = 2
		re, err := syntax.Parse("aa|bb|cc")
		if err != nil {
			t.Fatal(err)
		}
		if seq := New(cfg).ExtractPrefixes(re); seq != nil {
			t.Errorf("got %v, want nil above MaxLiterals", literalStrings(seq))
		}
	})
}

// TestSeqMinimize tests dedup and prefix domination.
func TestSeqMinimize(t *testing.T) {
	seq := NewSeq(
		Literal{Bytes: []byte("foobar"), Complete: true},
		Literal{Bytes: []byte("foo"), Complete: false},
		Literal{Bytes: []byte("foo"), Complete: true},
		Literal{Bytes: []byte("bar"), Complete: true},
	)
	seq.Minimize()
	wantLiterals(t, seq, "foo", "bar")
	// Duplicate "foo" merged its Complete flags.
	for i := 0; i < seq.Len(); i++ {
		if !seq.Get(i).Complete {
			t.Errorf("literal %q lost its Complete flag", seq.Get(i).Bytes)
		}
	}
}

func TestSeqMinLen(t *testing.T) {
	if got := NewSeq().MinLen(); got != 0 {
		t.Errorf("empty MinLen = %d, want 0", got)
	}
	seq := NewSeq(
		Literal{Bytes: []byte("abc")},
		Literal{Bytes: []byte("x")},
	)
	if got := seq.MinLen(); got != 1 {
		t.Errorf("MinLen = %d, want 1", got)
	}
}
