package explorer

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"mccse/internal/voyage"
)

// defaultMemoSize bounds the memoization cache; a bounded LRU keeps repeated
// slider tweaks cheap without letting a long session grow without limit.
const defaultMemoSize = 512

// Memo caches scenario results keyed by the full input tuple. The voyage
// model is pure, so a cached result can never go stale.
type Memo struct {
	cache *lru.Cache[voyage.Request, voyage.Result]
	hits  atomic.Int64
}

// NewMemo creates a memoization cache holding up to size results. A size
// <= 0 falls back to the default.
func NewMemo(size int) (*Memo, error) {
	if size <= 0 {
		size = defaultMemoSize
	}
	c, err := lru.New[voyage.Request, voyage.Result](size)
	if err != nil {
		return nil, err
	}
	return &Memo{cache: c}, nil
}

// Get returns the cached result for req, if present.
func (m *Memo) Get(req voyage.Request) (voyage.Result, bool) {
	res, ok := m.cache.Get(req)
	if ok {
		m.hits.Add(1)
	}
	return res, ok
}

// Add stores a computed result for req.
func (m *Memo) Add(req voyage.Request, res voyage.Result) {
	m.cache.Add(req, res)
}

// Hits returns the number of cache hits so far.
func (m *Memo) Hits() int64 {
	return m.hits.Load()
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	return m.cache.Len()
}
