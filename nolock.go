package swapbuf

import "sync/atomic"

// NoLock never blocks and grants any access to any number of goroutines. It
// is for resources used from a single goroutine or synchronized externally.
type NoLock struct {
	issued atomic.Uint64
}

var _ Locker = (*NoLock)(nil)

// Lock returns a Handle immediately.
func (n *NoLock) Lock(access Access) *Handle {
	n.issued.Add(1)
	return newHandle(n, access, true)
}

// TryLock always succeeds.
func (n *NoLock) TryLock(access Access) (*Handle, bool) {
	return n.Lock(access), true
}

// Unlock validates and invalidates the Handle.
func (n *NoLock) Unlock(h *Handle) error {
	return h.claim(n)
}

// Clone returns a new NoLock.
func (n *NoLock) Clone() Locker { return new(NoLock) }

// Issued reports how many handles the NoLock has handed out.
func (n *NoLock) Issued() uint64 { return n.issued.Load() }
