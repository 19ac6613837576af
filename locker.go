package swapbuf

// Locker is a pluggable locking strategy for a resource. Every resource holds
// its own Clone of the Locker it was configured with, so lock state is never
// shared between resources that should be independently lockable.
type Locker interface {
	// Lock blocks until access is granted and returns a Handle to release it.
	Lock(access Access) *Handle

	// TryLock attempts to acquire access without blocking longer than the
	// strategy's own bounded policy. It reports false when not acquired.
	TryLock(access Access) (*Handle, bool)

	// Unlock releases a Handle issued by this Locker. It returns
	// ErrOwnerMismatch for handles issued by any other Locker and ErrReleased
	// for handles that were already released.
	Unlock(h *Handle) error

	// Clone returns a new, unlocked Locker of the same kind and configuration.
	Clone() Locker
}

// WithLock acquires access on l, runs fn and releases the lock, even if fn
// panics. The returned error is from the release.
func WithLock(l Locker, access Access, fn func()) (err error) {
	h := l.Lock(access)
	defer func() {
		if rerr := h.Release(); err == nil {
			err = rerr
		}
	}()
	fn()
	return nil
}

// TryWithLock is like WithLock but uses TryLock. It reports if fn was run.
func TryWithLock(l Locker, access Access, fn func()) (ok bool, err error) {
	h, ok := l.TryLock(access)
	if !ok {
		return false, nil
	}
	defer func() {
		if rerr := h.Release(); err == nil {
			err = rerr
		}
	}()
	fn()
	return true, nil
}
