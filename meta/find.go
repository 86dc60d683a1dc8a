package meta

// Find returns the leftmost match in the haystack, or nil when there is
// none. "Leftmost" follows the backtracking preference order: the first
// start offset with a match wins, and at that offset greedy quantifiers
// and left-preferring alternation pick the reported span.
//
// Strategies that skip verification for boolean matching still verify
// here, so the span and captures always come from the backtracker.
func (e *Engine) Find(haystack []byte) (*Match, error) {
	st := e.statePool.get()
	defer e.statePool.put(st)

	if e.strategy == UseAnchoredStart {
		end, err := e.searcher.TryAt(st, haystack, 0)
		if err != nil {
			return nil, err
		}
		if end < 0 {
			return nil, nil
		}
		return newMatch(0, end, haystack, st.Captures()), nil
	}

	for at := 0; at <= len(haystack); at++ {
		at = e.scanFrom(haystack, at)
		if at < 0 {
			return nil, nil
		}
		end, err := e.searcher.TryAt(st, haystack, at)
		if err != nil {
			return nil, err
		}
		if end >= 0 {
			return newMatch(at, end, haystack, st.Captures()), nil
		}
	}
	return nil, nil
}

// FindSubmatch is Find under a name that makes the capture content
// explicit at call sites; the returned Match carries the full capture
// table either way.
func (e *Engine) FindSubmatch(haystack []byte) (*Match, error) {
	return e.Find(haystack)
}
