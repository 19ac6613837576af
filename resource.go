package swapbuf

import "fmt"

// Initializer produces the value a resource holds before its first update.
type Initializer[T any] func() T

// Updater updates value in place. fromUpdate reports if value was produced by
// an earlier update rather than the Initializer. An Updater may be shared by
// many resources and must not rely on locks outside of the resource.
type Updater[T, S any] func(value *T, fromUpdate bool, state S)

// ResourceConfig describes how to build a Resource.
type ResourceConfig[T, S any] struct {
	Init   Initializer[T]
	Update Updater[T, S]

	// Lock is cloned, never used directly.
	Lock Locker
}

// Resource is a value together with how to initialize it, how to update it
// and a private lock guarding it. It is not synchronized internally: callers
// decide how to guard updates.
type Resource[T, S any] struct {
	cfg        ResourceConfig[T, S]
	value      T
	fromUpdate bool
}

// NewResource constructs a Resource, running Init once.
func NewResource[T, S any](cfg ResourceConfig[T, S]) (*Resource[T, S], error) {
	switch {
	case cfg.Init == nil:
		return nil, fmt.Errorf("%w: nil initializer", ErrInvalidArgument)
	case cfg.Update == nil:
		return nil, fmt.Errorf("%w: nil updater", ErrInvalidArgument)
	case cfg.Lock == nil:
		return nil, fmt.Errorf("%w: nil lock", ErrInvalidArgument)
	}

	r := &Resource[T, S]{cfg: cfg}
	r.cfg.Lock = cfg.Lock.Clone()
	r.value = cfg.Init()
	return r, nil
}

// Copy returns a Resource with the same configuration and a fresh lock. Its
// value is initialized again unless skipInit is set, in which case it starts
// as the zero value and the caller is expected to overwrite it.
func (r *Resource[T, S]) Copy(skipInit bool) *Resource[T, S] {
	c := &Resource[T, S]{cfg: r.cfg}
	c.cfg.Lock = r.cfg.Lock.Clone()
	if !skipInit {
		c.value = c.cfg.Init()
	}
	return c
}

// Apply runs the updater on the value and marks it as coming from an update.
func (r *Resource[T, S]) Apply(state S) {
	r.cfg.Update(&r.value, r.fromUpdate, state)
	r.fromUpdate = true
}

// Value returns the current value.
func (r *Resource[T, S]) Value() T { return r.value }

// Ptr returns a pointer to the value for in place access by its owner.
func (r *Resource[T, S]) Ptr() *T { return &r.value }

// FromUpdate reports if the value has been through the updater.
func (r *Resource[T, S]) FromUpdate() bool { return r.fromUpdate }

// Lock locks the resource's private lock.
func (r *Resource[T, S]) Lock(access Access) *Handle { return r.cfg.Lock.Lock(access) }

// TryLock tries to lock the resource's private lock.
func (r *Resource[T, S]) TryLock(access Access) (*Handle, bool) { return r.cfg.Lock.TryLock(access) }

// Locker returns the resource's private lock.
func (r *Resource[T, S]) Locker() Locker { return r.cfg.Lock }

// copyFrom overwrites the value with o's, using copier when set.
func (r *Resource[T, S]) copyFrom(o *Resource[T, S], copier func(dst *T, src *T)) {
	if copier != nil {
		copier(&r.value, &o.value)
	} else {
		r.value = o.value
	}
	r.fromUpdate = o.fromUpdate
}
