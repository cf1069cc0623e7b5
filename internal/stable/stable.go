// Package stable provides a memoizing wrapper for pure, deterministic
// functions. The original motivation is series-based math (sin, cos, ln)
// whose exact-decimal evaluation is expensive and frequently repeated with
// identical arguments.
package stable

import "sync"

// outcome records one completed call, success or failure. Failures are
// cached too: a deterministic function fails the same way every time.
type outcome[V any] struct {
	val V
	err error
}

// Func memoizes a deterministic func(K) (V, error) per distinct key.
// Concurrent callers with the same key share a single execution.
type Func[K comparable, V any] struct {
	fn func(K) (V, error)

	mu      sync.Mutex
	done    map[K]outcome[V]
	pending map[K]chan struct{}
}

// New wraps fn with memoization.
func New[K comparable, V any](fn func(K) (V, error)) *Func[K, V] {
	return &Func[K, V]{
		fn:      fn,
		done:    make(map[K]outcome[V]),
		pending: make(map[K]chan struct{}),
	}
}

// Do returns the cached outcome for k, computing it on first use.
func (f *Func[K, V]) Do(k K) (V, error) {
	for {
		f.mu.Lock()
		if out, ok := f.done[k]; ok {
			f.mu.Unlock()
			return out.val, out.err
		}
		if wait, ok := f.pending[k]; ok {
			f.mu.Unlock()
			<-wait
			continue
		}
		wait := make(chan struct{})
		f.pending[k] = wait
		f.mu.Unlock()

		val, err := f.fn(k)

		f.mu.Lock()
		f.done[k] = outcome[V]{val: val, err: err}
		delete(f.pending, k)
		close(wait)
		f.mu.Unlock()
		return val, err
	}
}

// Size reports how many distinct keys have completed.
func (f *Func[K, V]) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.done)
}

// Reset drops all cached outcomes.
func (f *Func[K, V]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done = make(map[K]outcome[V])
}
