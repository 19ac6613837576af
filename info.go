package swapbuf

import "fmt"

// Info is the freshness token attached to every value read from a buffer. The
// zero value describes the initial, never updated value.
type Info struct {
	// ID is bumped by exactly one for every published update. It wraps around
	// to zero after math.MaxUint32, so it is not globally unique.
	ID uint32

	// FromBuffer is false only until the first update is published.
	FromBuffer bool
}

// Next returns the token that follows i.
func (i Info) Next() Info {
	return Info{ID: i.ID + 1, FromBuffer: true}
}

// Before reports if i was published before o, treating IDs as serial numbers
// so that ordering survives wraparound as long as the two are less than 2^31
// updates apart.
func (i Info) Before(o Info) bool {
	return int32(o.ID-i.ID) > 0
}

// After reports if i was published after o. See Before.
func (i Info) After(o Info) bool { return o.Before(i) }

// Since returns how many updates were published after o up to i, modulo 2^32.
func (i Info) Since(o Info) uint32 { return i.ID - o.ID }

func (i Info) String() string {
	return fmt.Sprintf("Info{ID: %d, FromBuffer: %t}", i.ID, i.FromBuffer)
}
