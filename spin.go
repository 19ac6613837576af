package swapbuf

import (
	"runtime"
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

// DefaultSpinLimit is the number of attempts a Spin makes when Limit is zero.
const DefaultSpinLimit = 10_000

// Spin is a spin lock for short, latency sensitive critical sections. The
// requested Access is ignored. The zero value is ready to use.
//
// Lock gives up after Limit attempts and proceeds without the lock, returning
// a Handle whose Held method reports false. That trades a liveness problem for
// a correctness one, so it is only suitable where critical sections are always
// short, as they are for buffer reads and swaps.
type Spin struct {
	// Limit is the number of acquisition attempts Lock makes. Zero means
	// DefaultSpinLimit.
	Limit int

	// Logger receives a warning whenever Lock gives up.
	Logger *logiface.Logger[logiface.Event]

	state atomic.Uint32
}

var _ Locker = (*Spin)(nil)

// Lock spins until the lock is acquired or the attempt budget runs out.
func (s *Spin) Lock(access Access) *Handle {
	limit := s.limit()
	for i := 0; i < limit; i++ {
		if s.state.CompareAndSwap(0, 1) {
			return newHandle(s, access, true)
		}
		runtime.Gosched()
	}

	s.Logger.Warning().
		Int("limit", limit).
		Str("access", access.String()).
		Log("spin lock budget exhausted, proceeding without the lock")
	return newHandle(s, access, false)
}

// TryLock makes a single acquisition attempt.
func (s *Spin) TryLock(access Access) (*Handle, bool) {
	if !s.state.CompareAndSwap(0, 1) {
		return nil, false
	}
	return newHandle(s, access, true), true
}

// Unlock releases the lock if h holds it.
func (s *Spin) Unlock(h *Handle) error {
	if err := h.claim(s); err != nil {
		return err
	}
	if h.held {
		s.state.Store(0)
	}
	return nil
}

// Clone returns a new, unlocked Spin with the same Limit and Logger.
func (s *Spin) Clone() Locker {
	return &Spin{Limit: s.Limit, Logger: s.Logger}
}

// Locked reports if the lock is currently held.
func (s *Spin) Locked() bool { return s.state.Load() != 0 }

func (s *Spin) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return DefaultSpinLimit
}
