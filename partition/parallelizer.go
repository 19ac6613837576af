package partition

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Parallelizer runs a handler over every element of a slice using a fixed
// number of workers. Elements are handled in place through pointers into the
// slice.
//
// When there are as many workers as chunks, each worker handles exactly one
// chunk. Otherwise workers claim chunks one at a time from a shared index.
type Parallelizer[T any] struct {
	data    []T
	ranges  []Range
	workers int
	handle  func(*T)
}

// New constructs a Parallelizer splitting data into chunks handled by workers
// goroutines.
func New[T any](data []T, chunks, workers int, handle func(*T)) (*Parallelizer[T], error) {
	ranges, err := Ranges(len(data), chunks)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("partition: worker count must be positive: %d", workers)
	}
	if handle == nil {
		return nil, fmt.Errorf("partition: nil handler")
	}

	return &Parallelizer[T]{
		data:    data,
		ranges:  ranges,
		workers: workers,
		handle:  handle,
	}, nil
}

// Chunks returns the chunk ranges.
func (p *Parallelizer[T]) Chunks() []Range { return append([]Range(nil), p.ranges...) }

// Workers returns the number of workers.
func (p *Parallelizer[T]) Workers() int { return p.workers }

// Run handles every element once and waits for all workers. Workers check ctx
// before every chunk, and Run returns the context's error if it was canceled
// before every chunk was handled.
func (p *Parallelizer[T]) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if p.workers == len(p.ranges) {
		for _, r := range p.ranges {
			g.Go(func() error { return p.chunk(ctx, r) })
		}
		return g.Wait()
	}

	var next atomic.Int64
	for i := 0; i < p.workers; i++ {
		g.Go(func() error {
			for {
				j := int(next.Add(1) - 1)
				if j >= len(p.ranges) {
					return nil
				}
				if err := p.chunk(ctx, p.ranges[j]); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}

func (p *Parallelizer[T]) chunk(ctx context.Context, r Range) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i := r.Start; i < r.End; i++ {
		p.handle(&p.data[i])
	}
	return nil
}
