package meta

import (
	"sync"

	"github.com/coregx/tinygrep/backtrack"
)

// searchStatePool provides thread-safe pooling of per-search mutable
// state, following the stdlib regexp pattern: the compiled Engine stays
// immutable and each concurrent search borrows a backtrack.State.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool(numCaptures int) *searchStatePool {
	return &searchStatePool{
		pool: sync.Pool{
			New: func() any {
				return backtrack.NewState(numCaptures)
			},
		},
	}
}

func (p *searchStatePool) get() *backtrack.State {
	return p.pool.Get().(*backtrack.State)
}

func (p *searchStatePool) put(st *backtrack.State) {
	p.pool.Put(st)
}
