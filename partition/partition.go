// package partition splits slices into contiguous chunks and processes them
// on a fixed number of goroutines.
package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidChunks is returned when asked for fewer than one chunk.
var ErrInvalidChunks = errors.New("partition: chunk count must be positive")

// Range is the half open interval [Start, End) of a slice.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }

// Ranges splits length elements into chunks ranges. Every range but the last
// holds ceil(length/chunks) elements and the last holds the remainder, so
// trailing ranges are empty when there are too few elements to go around.
func Ranges(length, chunks int) ([]Range, error) {
	if chunks <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunks, chunks)
	}
	if length < 0 {
		return nil, fmt.Errorf("partition: negative length %d", length)
	}

	size := (length + chunks - 1) / chunks
	ranges := make([]Range, chunks)
	for i := range ranges {
		start, end := min(i*size, length), min((i+1)*size, length)
		if i == chunks-1 {
			end = length
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges, nil
}
