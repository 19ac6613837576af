package swapbuf

import (
	"fmt"
	"runtime"

	"github.com/joeycumines/logiface"
)

// Skip is a buffer of independently locked resources. Instead of waiting on a
// particular resource, readers and writers walk a shared round robin cursor
// and take whichever resource is not locked, trading per resource fairness for
// throughput under contention.
//
// Updates to any one resource are mutually exclusive, but there is no
// ordering between resources.
type Skip[T, S any] struct {
	cur   cursor
	slots []slot[T, S]
	log   *logiface.Logger[logiface.Event]
}

// NewSkip constructs a Skip holding an independent copy of each resource, so
// that no two slots share a lock. It returns ErrNoSlots when resources is
// empty.
func NewSkip[T, S any](resources []*Resource[T, S], opts ...Option) (*Skip[T, S], error) {
	if len(resources) == 0 {
		return nil, ErrNoSlots
	}

	o := resolveOptions(opts)
	s := &Skip[T, S]{
		slots: make([]slot[T, S], len(resources)),
		log:   o.logger,
	}
	for i, res := range resources {
		if res == nil {
			return nil, fmt.Errorf("%w: nil resource at %d", ErrInvalidArgument, i)
		}
		s.slots[i].res = res.Copy(false)
	}

	s.log.Debug().
		Int("slots", len(s.slots)).
		Log("skip buffer constructed")

	return s, nil
}

// Len returns the number of slots.
func (s *Skip[T, S]) Len() int { return len(s.slots) }

// Updater returns the updating side of the Skip.
func (s *Skip[T, S]) Updater() SkipUpdater[T, S] { return SkipUpdater[T, S]{s: s} }

// TryUpdate updates the slot at index if it can be write locked without
// waiting. It reports if the update happened.
func (s *Skip[T, S]) TryUpdate(index int, state S) bool {
	sl := &s.slots[index]
	h, ok := sl.res.TryLock(Write)
	if !ok {
		return false
	}
	sl.res.Apply(state)
	sl.info = sl.info.Next()
	h.mustRelease()
	return true
}

// UpdateNextUnlocked updates the first slot along the cursor that can be
// write locked and returns its index. It busy waits while every slot is
// locked, yielding the processor after each fruitless lap.
func (s *Skip[T, S]) UpdateNextUnlocked(state S) int {
	for attempt := 1; ; attempt++ {
		i := s.cur.next(len(s.slots))
		if s.TryUpdate(i, state) {
			return i
		}
		s.backoff(attempt)
	}
}

// ReadNextUnlocked reads the first slot along the cursor that can be read
// locked, returning its value, token and index. It busy waits like
// UpdateNextUnlocked.
func (s *Skip[T, S]) ReadNextUnlocked() (T, Info, int) {
	for attempt := 1; ; attempt++ {
		i := s.cur.next(len(s.slots))
		sl := &s.slots[i]
		if h, ok := sl.res.TryLock(Read); ok {
			value, info := sl.res.value, sl.info
			h.mustRelease()
			return value, info, i
		}
		s.backoff(attempt)
	}
}

// Read blocks until the slot at index can be read locked and returns its
// value and token.
func (s *Skip[T, S]) Read(index int) (T, Info) {
	sl := &s.slots[index]
	h := sl.res.Lock(Read)
	value, info := sl.res.value, sl.info
	h.mustRelease()
	return value, info
}

// Infos returns the token of every slot, locking each in turn.
func (s *Skip[T, S]) Infos() []Info {
	infos := make([]Info, len(s.slots))
	for i := range s.slots {
		sl := &s.slots[i]
		h := sl.res.Lock(Read)
		infos[i] = sl.info
		h.mustRelease()
	}
	return infos
}

func (s *Skip[T, S]) backoff(attempt int) {
	if attempt%len(s.slots) == 0 {
		runtime.Gosched()
	}
}

// SkipUpdater is the updating side of a Skip. It holds no state of its own.
type SkipUpdater[T, S any] struct {
	s *Skip[T, S]
}

// TryUpdate is Skip.TryUpdate.
func (u SkipUpdater[T, S]) TryUpdate(index int, state S) bool { return u.s.TryUpdate(index, state) }

// UpdateNextUnlocked is Skip.UpdateNextUnlocked.
func (u SkipUpdater[T, S]) UpdateNextUnlocked(state S) int { return u.s.UpdateNextUnlocked(state) }
