package swapbuf

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

// SwapEffect selects how a Double publishes its back value.
type SwapEffect int

const (
	// Flip exchanges the front and back resources in O(1). The back then holds
	// what used to be the front, so consecutive updates alternate between the
	// two resources and each one only sees every other update. It should be
	// used in most cases.
	Flip SwapEffect = iota

	// Copy copies the back value into the front, so the back keeps its own
	// value for the next update. Values holding references need a copier, see
	// WithCopier.
	Copy
)

func (e SwapEffect) String() string {
	switch e {
	case Flip:
		return "Flip"
	case Copy:
		return "Copy"
	default:
		return fmt.Sprintf("SwapEffect(%d)", int(e))
	}
}

// Double is a double buffer. Readers lock the front resource only long enough
// to copy its value out, while a single writer goroutine updates the back
// resource without any locking and periodically swaps it to the front.
//
// Use FrontReader for the reading side and BackController for the writing
// side.
type Double[T, S any] struct {
	// front is swapped atomically so that readers can find it without a lock.
	// it only changes while its current value is write locked.
	front atomic.Pointer[Resource[T, S]]

	// the fields below are only written by the writer goroutine. info is
	// written while the front is write locked and read while it is read locked.
	back   *Resource[T, S]
	info   Info
	dirty  bool
	swap   SwapEffect
	copier func(dst *T, src *T)
	log    *logiface.Logger[logiface.Event]
}

// NewDouble constructs a Double whose front and back are independent copies of
// template, each initialized and holding its own clone of the template's lock.
//
// Values read from the Double are plain copies of the front, so a T holding
// pointers, slices or maps shares that memory with the resource it was read
// from, which the writer later updates. Pass WithCopier to have every read and
// every Copy swap deep copy instead.
func NewDouble[T, S any](template *Resource[T, S], opts ...Option) (*Double[T, S], error) {
	if template == nil {
		return nil, fmt.Errorf("%w: nil resource", ErrInvalidArgument)
	}

	o := resolveOptions(opts)
	copier, err := copierFor[T](o)
	if err != nil {
		return nil, err
	}
	if o.swap == Copy && copier == nil && typeContainsReferences[T]() {
		return nil, fmt.Errorf("%w: %v", ErrNotClonable, reflect.TypeOf((*T)(nil)).Elem())
	}

	d := &Double[T, S]{
		back:   template.Copy(false),
		swap:   o.swap,
		copier: copier,
		log:    o.logger,
	}
	d.front.Store(template.Copy(false))

	d.log.Debug().
		Str("swap", o.swap.String()).
		Log("double buffer constructed")

	return d, nil
}

// FrontReader returns the reading side of the Double.
func (d *Double[T, S]) FrontReader() FrontReader[T, S] { return FrontReader[T, S]{d: d} }

// BackController returns the writing side of the Double.
func (d *Double[T, S]) BackController() BackController[T, S] { return BackController[T, S]{d: d} }

// read locks the front for reading and copies out its value and token.
func (d *Double[T, S]) read() (T, Info) {
	for {
		front := d.front.Load()
		h := front.Lock(Read)

		// a flip may have moved the resource to the back while we waited for
		// it. once we hold it and it is still the front, no swap can move it.
		if d.front.Load() != front {
			h.mustRelease()
			continue
		}

		var value T
		if d.copier != nil {
			d.copier(&value, &front.value)
		} else {
			value = front.value
		}
		info := d.info
		h.mustRelease()
		return value, info
	}
}

// updateBack applies an update to the back resource. It does no locking and
// must only be called from the writer goroutine.
func (d *Double[T, S]) updateBack(state S) {
	d.back.Apply(state)
	d.dirty = true
}

// swapBuffers publishes the back according to the swap effect. If the back was
// not updated since the last swap, the front value is republished as is with
// a new token.
func (d *Double[T, S]) swapBuffers() error {
	next := d.info.Next()
	front := d.front.Load()
	moved := d.dirty

	switch d.swap {
	case Flip:
		h := front.Lock(Write)
		// info must be stored before the new front is, since readers of the
		// new front do not wait on this lock.
		d.info = next
		if moved {
			d.front.Store(d.back)
			d.back = front
		}
		h.mustRelease()

	case Copy:
		h := front.Lock(Write)
		if moved {
			front.copyFrom(d.back, d.copier)
		}
		d.info = next
		h.mustRelease()

	default:
		d.log.Err().
			Err(ErrUnsupportedSwap).
			Str("swap", d.swap.String()).
			Log("double buffer swap failed")
		return fmt.Errorf("%w: %v", ErrUnsupportedSwap, d.swap)
	}

	d.dirty = false
	if d.front.Load() == d.back {
		panic("swapbuf: front and back resources are the same after a swap")
	}

	d.log.Trace().
		Int("id", int(next.ID)).
		Bool("moved", moved).
		Log("double buffer swapped")

	return nil
}
