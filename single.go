package swapbuf

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// Single is a buffer where updates and reads happen on the same resource
// under the same lock, so a long update holds out every reader for its
// duration. Double avoids that by only locking to read and to swap.
type Single[T, S any] struct {
	res    *Resource[T, S]
	info   Info
	access Access
	log    *logiface.Logger[logiface.Event]
}

// NewSingle constructs a Single that takes ownership of res.
//
// Updates lock res with Read access unless WithUpdateAccess says otherwise.
// With a Locker that admits many readers, like RWMutex, readers can then
// observe the resource while it is being updated.
func NewSingle[T, S any](res *Resource[T, S], opts ...Option) (*Single[T, S], error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil resource", ErrInvalidArgument)
	}

	o := resolveOptions(opts)
	if o.updateAccess&(Generic|Read|Write) == 0 {
		return nil, fmt.Errorf("%w: update access %v", ErrInvalidArgument, o.updateAccess)
	}
	if _, ok := res.Locker().(*RWMutex); ok && o.updateAccess&(Read|Write) == 0 {
		return nil, fmt.Errorf("%w: update access %v", ErrInvalidAccess, o.updateAccess)
	}

	s := &Single[T, S]{
		res:    res,
		access: o.updateAccess,
		log:    o.logger,
	}

	s.log.Debug().
		Str("update_access", o.updateAccess.String()).
		Log("single buffer constructed")

	return s, nil
}

// Read locks the resource for reading and copies out its value and token.
func (s *Single[T, S]) Read() (T, Info) {
	h := s.res.Lock(Read)
	value, info := s.res.value, s.info
	h.mustRelease()
	return value, info
}

// Update locks the resource, runs the updater and publishes a new token.
func (s *Single[T, S]) Update(state S) {
	h := s.res.Lock(s.access)
	defer h.mustRelease()

	s.res.Apply(state)
	s.info = s.info.Next()
}
