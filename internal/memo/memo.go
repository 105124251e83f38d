// Package memo provides per-computation result caches for pure functions.
//
// A [Func] wraps a deterministic function and stores every result it has
// produced, keyed by the full argument value. Multi-argument computations
// use a comparable struct as the key:
//
//	type levelKey struct {
//	    Level int
//	    T     float64
//	}
//	p := memo.New(func(k levelKey) float64 { ... })
//	v := p.Get(levelKey{Level: 0, T: 300})
//
// Keys that do not equal themselves, such as a NaN float or a struct holding
// one, are computed on every call and never stored. Entries are never
// evicted. Correctness depends entirely on the wrapped
// function being pure.
package memo

import "sync"

// Func memoizes a pure function of a single comparable key.
// It is safe for concurrent use.
type Func[K comparable, V any] struct {
	mu    sync.Mutex
	fn    func(K) V
	cache map[K]V
}

func New[K comparable, V any](fn func(K) V) *Func[K, V] {
	return &Func[K, V]{
		fn:    fn,
		cache: make(map[K]V),
	}
}

// Get returns the cached result for k, computing and storing it on a miss.
// The lock is released while fn runs so that fn may consult other caches
// (or this one, for a different key) without deadlocking.
func (f *Func[K, V]) Get(k K) V {
	if k != k {
		return f.fn(k)
	}

	f.mu.Lock()
	if v, ok := f.cache[k]; ok {
		f.mu.Unlock()
		return v
	}
	f.mu.Unlock()

	v := f.fn(k)

	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.cache[k]; ok {
		return prev
	}
	f.cache[k] = v
	return v
}

// Len reports the number of stored results.
func (f *Func[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}
