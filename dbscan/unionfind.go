package dbscan

import "sync/atomic"

// atomicBool is a one-way latch: set() may be called concurrently from many
// goroutines, get() observes true once any of them has called set().
type atomicBool struct {
	v atomic.Bool
}

func (b *atomicBool) set() { b.v.Store(true) }

func (b *atomicBool) get() bool { return b.v.Load() }

// unionFind is a lock-free concurrent disjoint-set over [0, n). Every
// element starts as its own root. find uses path halving with a
// best-effort CAS: if another goroutine has already moved x's parent, the
// CAS just loses and find still returns the correct root. unite always
// attaches the larger root under the smaller one, so the winning root of
// any set is its minimum original index — callers never need a separate
// "representative" lookup.
type unionFind struct {
	parent []atomic.Int32
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]atomic.Int32, n)}
	for i := range uf.parent {
		uf.parent[i].Store(int32(i))
	}
	return uf
}

func (uf *unionFind) find(x int32) int32 {
	for {
		px := uf.parent[x].Load()
		if px == x {
			return x
		}
		ppx := uf.parent[px].Load()
		if px == ppx {
			return px
		}
		// Path halving: skip x directly to its grandparent. If another
		// goroutine races us here, losing the CAS is harmless - x still
		// points somewhere on the path to the root.
		uf.parent[x].CompareAndSwap(px, ppx)
		x = ppx
	}
}

func (uf *unionFind) unite(x, y int32) {
	for {
		rx := uf.find(x)
		ry := uf.find(y)
		if rx == ry {
			return
		}
		lo, hi := rx, ry
		if lo > hi {
			lo, hi = hi, lo
		}
		// Attach hi under lo only if hi is still its own root; otherwise
		// someone else unioned it first and we retry from the top.
		if uf.parent[hi].CompareAndSwap(hi, lo) {
			return
		}
	}
}
