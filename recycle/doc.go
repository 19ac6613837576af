// package recycle provides a bounded pool of reusable values.
//
// Values are reset when they are put back, so that a value taken from the pool
// always looks freshly generated:
//
//	pool, _ := recycle.New(func() *Frame { return new(Frame) }, 64, 0)
//	f := pool.Take()
//	...
//	pool.Put(f)
//
// Unlike sync.Pool, a Pool never drops values on its own and holds at most its
// capacity.
package recycle
