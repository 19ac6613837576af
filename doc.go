// package swapbuf provides buffers for sharing a frequently updated value between
// a writer and many readers with short, bounded critical sections.
//
// Consider a simulation that recomputes some state every tick while other
// goroutines render it. Guarding the state with a single mutex means that readers
// wait for the whole recomputation:
//
//	var (
//		mu    sync.Mutex
//		world World
//	)
//
//	func Tick(dt float64) {
//		mu.Lock()
//		world.Step(dt) // readers wait for this
//		mu.Unlock()
//	}
//
// Using a Double, the writer steps a private back copy of the state without any
// locking and only locks the published front copy for the instant it takes to
// swap the two:
//
//	res, _ := swapbuf.NewResource(swapbuf.ResourceConfig[World, float64]{
//		Init:   NewWorld,
//		Update: func(w *World, _ bool, dt float64) { w.Step(dt) },
//		Lock:   new(swapbuf.Mutex),
//	})
//	db, _ := swapbuf.NewDouble(res)
//	back, front := db.BackController(), db.FrontReader()
//
//	func Tick(dt float64) {
//		back.UpdateBack(dt)
//		_ = back.Swap()
//	}
//
//	func Render() {
//		world, info := front.Read()
//		...
//	}
//
// Every read also returns an Info, a freshness token whose ID is bumped by one
// for every published update, so readers can tell if they have seen a value
// before without inspecting it.
//
// How resources are locked is pluggable through the Locker interface: NoLock,
// Mutex, RWMutex and Spin are provided. Every resource clones its own Locker, so
// no two resources ever contend on the same lock.
//
// Single is the simplest buffer, where updates and reads share one resource and
// one lock. Skip holds many independently locked resources and lets readers and
// writers take whichever one is not locked, which keeps every goroutine making
// progress under heavy contention at the cost of any ordering between resources.
package swapbuf
