package swapbuf

import "errors"

var (
	// ErrOwnerMismatch is returned when a Handle is released through a Locker
	// that did not issue it.
	ErrOwnerMismatch = errors.New("swapbuf: lock handle not owned by lock queried for unlocking")

	// ErrReleased is returned when a Handle is released more than once.
	ErrReleased = errors.New("swapbuf: lock handle already released")

	// ErrInvalidAccess is the panic value when a Locker that distinguishes
	// readers from writers is asked for access that is neither.
	ErrInvalidAccess = errors.New("swapbuf: generic or unspecified access not supported")

	// ErrUnsupportedSwap is returned by a swap with an unknown SwapEffect.
	ErrUnsupportedSwap = errors.New("swapbuf: unsupported swap effect")

	// ErrNoSlots is returned when a Skip is constructed without resources.
	ErrNoSlots = errors.New("swapbuf: there must be at least 1 resource")

	// ErrInvalidArgument is returned for nil or out of range constructor arguments.
	ErrInvalidArgument = errors.New("swapbuf: invalid argument")

	// ErrNotClonable is returned when the Copy swap effect is configured for a
	// value type holding references without a copier to deep clone it.
	ErrNotClonable = errors.New("swapbuf: value type contains references and no copier was given")
)
