package meta

// IsMatch reports whether the pattern matches anywhere in the haystack.
//
// The only possible error is backtrack.ErrTooComplex, returned when a
// backtracking attempt exceeds the configured step budget. A no-match
// is never an error.
func (e *Engine) IsMatch(haystack []byte) (bool, error) {
	switch e.strategy {
	case UseAnchoredStart:
		return e.isMatchAnchored(haystack)
	case UseLiteralScan:
		// The prefilter literals are complete matches; finding one is
		// the answer and no verification is needed.
		return e.prefilter.Find(haystack, 0) >= 0, nil
	default:
		return e.isMatchScan(haystack)
	}
}

func (e *Engine) isMatchAnchored(haystack []byte) (bool, error) {
	st := e.statePool.get()
	defer e.statePool.put(st)

	end, err := e.searcher.TryAt(st, haystack, 0)
	if err != nil {
		return false, err
	}
	return end >= 0, nil
}

func (e *Engine) isMatchScan(haystack []byte) (bool, error) {
	st := e.statePool.get()
	defer e.statePool.put(st)

	// Offset len(haystack) is a legal start for empty-matching patterns.
	for at := 0; at <= len(haystack); at++ {
		at = e.scanFrom(haystack, at)
		if at < 0 {
			return false, nil
		}
		end, err := e.searcher.TryAt(st, haystack, at)
		if err != nil {
			return false, err
		}
		if end >= 0 {
			return true, nil
		}
	}
	return false, nil
}
