package recycle

import (
	"errors"
	"fmt"

	"github.com/eapache/queue"
	"github.com/zeebo/swapbuf"
)

// ErrInvalidArgument is returned for negative or over capacity sizes.
var ErrInvalidArgument = errors.New("recycle: invalid argument")

// Recyclable is a value that can be returned to its initial state.
type Recyclable interface {
	Reset()
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	lock swapbuf.Locker
}

// WithLocker sets the lock guarding the pool. The default is a swapbuf.Mutex.
// The locker is cloned.
func WithLocker(lock swapbuf.Locker) Option {
	return func(o *options) { o.lock = lock }
}

// Pool holds up to a fixed number of reset values for reuse. It is safe for
// concurrent use.
type Pool[T Recyclable] struct {
	generate func() T
	capacity int
	lock     swapbuf.Locker
	free     *queue.Queue
}

// New constructs a Pool of the given capacity that generates values when it
// is empty, filled with preallocated generated values.
func New[T Recyclable](generate func() T, capacity, preallocated int, opts ...Option) (*Pool[T], error) {
	if generate == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidArgument)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidArgument, capacity)
	}

	o := options{lock: new(swapbuf.Mutex)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lock == nil {
		return nil, fmt.Errorf("%w: nil locker", ErrInvalidArgument)
	}

	p := &Pool[T]{
		generate: generate,
		capacity: capacity,
		lock:     o.lock.Clone(),
		free:     queue.New(),
	}
	if err := p.Fill(preallocated); err != nil {
		return nil, err
	}
	return p, nil
}

// Cap returns the most values the pool holds.
func (p *Pool[T]) Cap() int { return p.capacity }

// Len returns the number of values in the pool.
func (p *Pool[T]) Len() (n int) {
	if err := swapbuf.WithLock(p.lock, swapbuf.Read, func() { n = p.free.Length() }); err != nil {
		panic(err)
	}
	return n
}

// Fill generates values until the pool holds at least n of them.
func (p *Pool[T]) Fill(n int) error {
	if n < 0 || n > p.capacity {
		return fmt.Errorf("%w: fill %d with capacity %d", ErrInvalidArgument, n, p.capacity)
	}
	if n == 0 {
		return nil
	}

	for p.Len() < n {
		// a concurrent Put may fill the pool first, and then the value is
		// dropped.
		p.Put(p.generate())
	}
	return nil
}

// Take removes a value from the pool, generating one if the pool is empty.
func (p *Pool[T]) Take() T {
	h := p.lock.Lock(swapbuf.Write)
	if p.free.Length() == 0 {
		release(h)
		return p.generate()
	}
	v := p.free.Remove().(T)
	release(h)
	return v
}

// TakeN takes n values.
func (p *Pool[T]) TakeN(n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.Take())
	}
	return out
}

// Put resets v and keeps it for reuse. It reports false, leaving v untouched,
// if the pool is already full.
func (p *Pool[T]) Put(v T) bool {
	h := p.lock.Lock(swapbuf.Write)
	defer release(h)

	if p.free.Length() >= p.capacity {
		return false
	}
	v.Reset()
	p.free.Add(v)
	return true
}

// PutAll puts every value in vs and returns how many were kept.
func (p *Pool[T]) PutAll(vs []T) (kept int) {
	for _, v := range vs {
		if p.Put(v) {
			kept++
		}
	}
	return kept
}

// release releases a handle the pool acquired itself. An error means the
// locker's state is corrupt, so it panics.
func release(h *swapbuf.Handle) {
	if err := h.Release(); err != nil {
		panic(err)
	}
}
