package swapbuf

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// slot is one independently locked resource of a Skip along with the token of
// its last update. Slots are padded so that goroutines hammering neighbouring
// slots do not share cache lines through the slot headers.
type slot[T, S any] struct {
	_    cpu.CacheLinePad
	res  *Resource[T, S]
	info Info
	_    cpu.CacheLinePad
}

// cursor is the shared round robin index of a Skip, alone on its cache line
// since every selection attempt writes it.
type cursor struct {
	_ cpu.CacheLinePad
	n atomic.Uint32
	_ cpu.CacheLinePad
}

// next returns the next candidate index below n. The counter wraps around at
// 2^32, which skips or repeats a few indexes when n is not a power of two.
// That only changes which slot is tried next.
func (c *cursor) next(n int) int {
	return int((c.n.Add(1) - 1) % uint32(n))
}
