package swapbuf

import "sync/atomic"

// Handle represents a lock held on a resource. It must be Released exactly
// once, through the Locker that issued it, as soon as the resource is no
// longer being read or written. A Handle must not be copied.
type Handle struct {
	owner  Locker
	access Access
	held   bool
	done   atomic.Bool
}

func newHandle(owner Locker, access Access, held bool) *Handle {
	return &Handle{owner: owner, access: access, held: held}
}

// Release invalidates the Handle by unlocking it through the Locker that
// issued it. It returns ErrReleased if it was already released.
func (h *Handle) Release() error {
	if h == nil || h.owner == nil {
		return ErrOwnerMismatch
	}
	return h.owner.Unlock(h)
}

// Access reports the access the Handle was acquired with.
func (h *Handle) Access() Access { return h.access }

// Owner returns the Locker that issued the Handle.
func (h *Handle) Owner() Locker { return h.owner }

// Held reports if the Handle actually holds its lock. Only a Spin that ran
// out of its spin budget issues handles that do not.
func (h *Handle) Held() bool { return h.held }

// claim checks that l issued the handle and marks it released. Lockers call it
// before touching their own state so a foreign or stale handle never does.
func (h *Handle) claim(l Locker) error {
	if h == nil || h.owner != l {
		return ErrOwnerMismatch
	}
	if !h.done.CompareAndSwap(false, true) {
		return ErrReleased
	}
	return nil
}

// mustRelease releases a handle the package acquired itself. Failing here
// means lock state is already corrupt, so it panics.
func (h *Handle) mustRelease() {
	if err := h.Release(); err != nil {
		panic(err)
	}
}
