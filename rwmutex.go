package swapbuf

import (
	"sync"
	"sync/atomic"
)

// RWMutex grants any number of readers or a single writer access to a
// resource. Lock and TryLock require Read or Write access and panic with
// ErrInvalidAccess otherwise. Write wins if both are requested. Fairness
// between readers and writers is that of sync.RWMutex: a blocked writer
// holds out new readers.
type RWMutex struct {
	mu      sync.RWMutex
	readers atomic.Int32
}

var _ Locker = (*RWMutex)(nil)

// Lock blocks until the requested access is granted.
func (l *RWMutex) Lock(access Access) *Handle {
	switch {
	case access&Write != 0:
		l.mu.Lock()
		return newHandle(l, Write, true)

	case access&Read != 0:
		l.mu.RLock()
		l.readers.Add(1)
		return newHandle(l, Read, true)
	}
	panic(ErrInvalidAccess)
}

// TryLock acquires the requested access if it is available. Readers only fail
// while a writer holds or waits for the lock.
func (l *RWMutex) TryLock(access Access) (*Handle, bool) {
	switch {
	case access&Write != 0:
		if !l.mu.TryLock() {
			return nil, false
		}
		return newHandle(l, Write, true), true

	case access&Read != 0:
		if !l.mu.TryRLock() {
			return nil, false
		}
		l.readers.Add(1)
		return newHandle(l, Read, true), true
	}
	panic(ErrInvalidAccess)
}

// Unlock releases the access held by h.
func (l *RWMutex) Unlock(h *Handle) error {
	if err := h.claim(l); err != nil {
		return err
	}
	if h.access == Write {
		l.mu.Unlock()
		return nil
	}
	l.readers.Add(-1)
	l.mu.RUnlock()
	return nil
}

// Clone returns a new, unlocked RWMutex.
func (l *RWMutex) Clone() Locker { return new(RWMutex) }

// Readers returns the number of readers holding the lock. Readers waiting
// on a writer are not counted.
func (l *RWMutex) Readers() int { return int(l.readers.Load()) }
