package heap

import "github.com/jtalgo/grafalgo/internal/adt"

// LazyLheap augments Lheap with implicit, client-driven deletion and a
// lazy meld that defers the real merge work to the next findMin
// (spec.md §4.4.b), grounded on
// original_source/cpp/dataStructures/heaps/LlheapSet.cpp. Handles n+1..2n
// are reserved as a pool of dummy nodes; lmeld grabs one from the pool
// to serve as a placeholder parent of two heaps, and findMin/insert purge
// the deleted/dummy nodes off the top of the tree before doing real work.
type LazyLheap[K any] struct {
	*Lheap[K]
	n         int
	dummyHead adt.Handle
	isDeleted func(adt.Handle) bool
}

// NewLazyLheap constructs a LazyLheap over real items 1..n. isDeleted, if
// non-nil, reports whether an item has been implicitly removed from
// whatever heap it appears to be in.
func NewLazyLheap[K any](n int, less func(a, b K) bool, isDeleted func(adt.Handle) bool) *LazyLheap[K] {
	ll := &LazyLheap[K]{Lheap: NewLheap[K](2*n, less), n: n, isDeleted: isDeleted}
	ll.initDummies()
	return ll
}

func (ll *LazyLheap[K]) initDummies() {
	for i := ll.n + 1; i < 2*ll.n; i++ {
		ll.left[i] = adt.Handle(i + 1)
	}
	if 2*ll.n > ll.n {
		ll.dummyHead = adt.Handle(ll.n + 1)
		ll.left[2*ll.n] = 0
	}
}

// Resize drops all contents and reallocates for real-item capacity n.
func (ll *LazyLheap[K]) Resize(n int) {
	ll.n = n
	ll.Lheap.Resize(2 * n)
	ll.initDummies()
}

// Clear resets every real item to a singleton and rebuilds the dummy free
// list.
func (ll *LazyLheap[K]) Clear() {
	ll.Lheap.Clear()
	ll.initDummies()
}

func (ll *LazyLheap[K]) deleted(h adt.Handle) bool {
	return int(h) > ll.n || (ll.isDeleted != nil && ll.isDeleted(h))
}

// Lmeld performs a lazy meld of h1 and h2: it allocates a dummy node as
// their common parent and returns it as the new heap's canonical element,
// in O(1).
func (ll *LazyLheap[K]) Lmeld(h1, h2 adt.Handle) adt.Handle {
	i := ll.dummyHead
	ll.dummyHead = ll.left[i]
	ll.left[i], ll.right[i] = h1, h2
	return i
}

// purge walks down from h, skipping deleted nodes (reclaiming them and
// any dummy nodes along the way), and appends the roots of the surviving
// non-deleted subtrees to acc.
func (ll *LazyLheap[K]) purge(h adt.Handle, acc *[]adt.Handle) {
	if h == 0 {
		return
	}
	if !ll.deleted(h) {
		*acc = append(*acc, h)
		return
	}
	ll.purge(ll.left[h], acc)
	ll.purge(ll.right[h], acc)
	if int(h) > ll.n {
		ll.left[h] = ll.dummyHead
		ll.dummyHead = h
		ll.right[h] = 0
	} else {
		ll.left[h], ll.right[h] = 0, 0
		ll.rank[h] = 1
	}
}

// heapify repeatedly melds the two shortest-rank heaps on roots until one
// remains, returning its canonical element (spec.md §4.4.b).
func (ll *LazyLheap[K]) heapify(roots []adt.Handle) adt.Handle {
	if len(roots) == 0 {
		return 0
	}
	for len(roots) > 1 {
		i1, i2 := 0, 1
		if ll.rank[roots[i2]] < ll.rank[roots[i1]] {
			i1, i2 = i2, i1
		}
		for k := 2; k < len(roots); k++ {
			r := ll.rank[roots[k]]
			switch {
			case r < ll.rank[roots[i1]]:
				i2 = i1
				i1 = k
			case r < ll.rank[roots[i2]]:
				i2 = k
			}
		}
		merged := ll.Meld(roots[i1], roots[i2])
		next := make([]adt.Handle, 0, len(roots)-1)
		for idx, r := range roots {
			if idx != i1 && idx != i2 {
				next = append(next, r)
			}
		}
		roots = append(next, merged)
	}
	return roots[0]
}

// FindMin purges deleted/dummy nodes from the top of the heap named by h
// and heapifies the survivors, returning the canonical element of the
// resulting heap — which, as in Lheap, is also the minimum item.
func (ll *LazyLheap[K]) FindMin(h adt.Handle) adt.Handle {
	var roots []adt.Handle
	ll.purge(h, &roots)
	return ll.heapify(roots)
}

// Insert melds singleton i (its key already set via SetKey) into the heap
// named by h, purging h first.
func (ll *LazyLheap[K]) Insert(i, h adt.Handle) adt.Handle {
	return ll.Meld(i, ll.FindMin(h))
}

// MakeHeap combines a slice of singleton items into a single heap.
func (ll *LazyLheap[K]) MakeHeap(items []adt.Handle) adt.Handle {
	return ll.heapify(append([]adt.Handle(nil), items...))
}
