package swapbuf

// FrontReader reads the front of a Double. It holds no state of its own, is
// cheap to copy and safe to use from any number of goroutines.
type FrontReader[T, S any] struct {
	d *Double[T, S]
}

// Read locks the front for reading just long enough to copy out its value and
// token. Without a copier, references in the value still point into the
// front resource. See NewDouble.
func (r FrontReader[T, S]) Read() (T, Info) { return r.d.read() }

// BackController updates and swaps the back of a Double. It holds no state of
// its own. Its methods do no locking of the back and must all be called from
// the same goroutine.
type BackController[T, S any] struct {
	d *Double[T, S]
}

// UpdateBack runs the updater on the back value.
func (c BackController[T, S]) UpdateBack(state S) { c.d.updateBack(state) }

// Swap publishes the back value to readers. It returns ErrUnsupportedSwap if
// the Double was configured with an unknown SwapEffect.
func (c BackController[T, S]) Swap() error { return c.d.swapBuffers() }

// Back returns the current back value.
func (c BackController[T, S]) Back() T { return c.d.back.value }
