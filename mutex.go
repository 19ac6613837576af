package swapbuf

import "sync"

// Mutex grants one goroutine at a time access to a resource. The requested
// Access is ignored. It suits one writer and one reader.
type Mutex struct {
	mu sync.Mutex
}

var _ Locker = (*Mutex)(nil)

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock(access Access) *Handle {
	m.mu.Lock()
	return newHandle(m, access, true)
}

// TryLock acquires the mutex if it is free.
func (m *Mutex) TryLock(access Access) (*Handle, bool) {
	if !m.mu.TryLock() {
		return nil, false
	}
	return newHandle(m, access, true), true
}

// Unlock releases the mutex held by h.
func (m *Mutex) Unlock(h *Handle) error {
	if err := h.claim(m); err != nil {
		return err
	}
	m.mu.Unlock()
	return nil
}

// Clone returns a new, unlocked Mutex.
func (m *Mutex) Clone() Locker { return new(Mutex) }
