package swapbuf

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// Option configures a buffer. Options that do not apply to a buffer kind are
// ignored by it.
type Option func(*options)

type options struct {
	swap         SwapEffect
	copier       any
	logger       *logiface.Logger[logiface.Event]
	updateAccess Access
}

func resolveOptions(opts []Option) options {
	o := options{
		swap:         Flip,
		updateAccess: Read,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSwapEffect selects how a Double publishes its back value. The default
// is Flip. The value is checked when swapping, not here.
func WithSwapEffect(effect SwapEffect) Option {
	return func(o *options) { o.swap = effect }
}

// WithCopier sets the function a Double uses to deep copy values. Reads copy
// the front into the value they return with it, and the Copy swap effect
// copies the back into the front with it. It is required for Copy when T
// holds pointers, slices, maps or other references.
//
// The copier must leave dst sharing no memory with src. It may reuse memory
// dst already owns.
func WithCopier[T any](copier func(dst *T, src *T)) Option {
	return func(o *options) { o.copier = copier }
}

// WithLogger sets the logger buffers report construction and swaps to.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return func(o *options) { o.logger = logger }
}

// WithUpdateAccess sets the access a Single locks its resource with while
// updating. The default is Read, which lets lockers that tell readers from
// writers, like RWMutex, admit readers during an update. Pass Write to make
// updates exclusive.
func WithUpdateAccess(access Access) Option {
	return func(o *options) { o.updateAccess = access }
}

// copierFor extracts a typed copier from the options.
func copierFor[T any](o options) (func(dst *T, src *T), error) {
	if o.copier == nil {
		return nil, nil
	}
	copier, ok := o.copier.(func(dst *T, src *T))
	if !ok {
		return nil, fmt.Errorf("%w: copier is %T", ErrInvalidArgument, o.copier)
	}
	return copier, nil
}
