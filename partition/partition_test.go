package partition

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/zeebo/assert"
)

func TestRanges(t *testing.T) {
	for _, tc := range []struct {
		length, chunks int
		want           []Range
	}{
		{10, 3, []Range{{0, 4}, {4, 8}, {8, 10}}},
		{9, 3, []Range{{0, 3}, {3, 6}, {6, 9}}},
		{10, 1, []Range{{0, 10}}},
		{3, 5, []Range{{0, 1}, {1, 2}, {2, 3}, {3, 3}, {3, 3}}},
		{0, 2, []Range{{0, 0}, {0, 0}}},
	} {
		got, err := Ranges(tc.length, tc.chunks)
		assert.NoError(t, err)
		assert.DeepEqual(t, got, tc.want)

		total := 0
		for _, r := range got {
			total += r.Len()
		}
		assert.Equal(t, total, tc.length)
	}
}

func TestRangesInvalid(t *testing.T) {
	_, err := Ranges(10, 0)
	assert.That(t, errors.Is(err, ErrInvalidChunks))

	_, err = Ranges(10, -1)
	assert.That(t, errors.Is(err, ErrInvalidChunks))

	_, err = Ranges(-1, 1)
	assert.Error(t, err)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, Range{Start: 2, End: 5}.String(), "[2, 5)")
}

func TestParallelizer(t *testing.T) {
	for _, tc := range []struct {
		chunks, workers int
	}{
		{4, 4},
		{8, 3},
		{3, 8},
		{1, 1},
	} {
		data := make([]int, 1000)
		for i := range data {
			data[i] = i
		}

		p, err := New(data, tc.chunks, tc.workers, func(v *int) { *v *= 2 })
		assert.NoError(t, err)
		assert.Equal(t, len(p.Chunks()), tc.chunks)
		assert.Equal(t, p.Workers(), tc.workers)
		assert.NoError(t, p.Run(context.Background()))

		for i, v := range data {
			assert.Equal(t, v, 2*i)
		}
	}
}

func TestParallelizerInvalid(t *testing.T) {
	_, err := New([]int{1}, 0, 1, func(*int) {})
	assert.That(t, errors.Is(err, ErrInvalidChunks))

	_, err = New([]int{1}, 1, 0, func(*int) {})
	assert.Error(t, err)

	_, err = New[int]([]int{1}, 1, 1, nil)
	assert.Error(t, err)
}

func TestParallelizerCanceled(t *testing.T) {
	var handled atomic.Int64
	p, err := New(make([]int, 100), 10, 2, func(*int) { handled.Add(1) })
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.That(t, errors.Is(p.Run(ctx), context.Canceled))
	assert.Equal(t, handled.Load(), 0)
}

func BenchmarkParallelizer(b *testing.B) {
	data := make([]float64, 1<<16)
	p, err := New(data, 8, 8, func(v *float64) { *v += 1.5 })
	assert.NoError(b, err)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = p.Run(context.Background())
	}
}
