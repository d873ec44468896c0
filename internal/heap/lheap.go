package heap

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
)

// Lheap is a collection of leftist heaps over handles 1..n, named by the
// handle of each heap's root (spec.md §4.4.a), grounded on
// original_source/cpp/dataStructures/heaps/LheapSet.cpp.
type Lheap[K any] struct {
	adt.Base
	left, right []adt.Handle
	rank        []int
	key         []K
	less        func(a, b K) bool
}

// NewLheap constructs an Lheap over 1..n with every handle a singleton
// heap of rank 1.
func NewLheap[K any](n int, less func(a, b K) bool) *Lheap[K] {
	lh := &Lheap[K]{Base: adt.NewBase(n), less: less}
	lh.allocate(n)
	return lh
}

func (lh *Lheap[K]) allocate(n int) {
	lh.left = make([]adt.Handle, n+1)
	lh.right = make([]adt.Handle, n+1)
	lh.rank = make([]int, n+1)
	lh.key = make([]K, n+1)
	for i := 1; i <= n; i++ {
		lh.rank[i] = 1
	}
}

// Resize drops all contents and reallocates for capacity n.
func (lh *Lheap[K]) Resize(n int) {
	lh.SetN(n)
	lh.allocate(n)
}

// Clear resets every handle to its own singleton heap.
func (lh *Lheap[K]) Clear() { lh.allocate(lh.N()) }

// Key returns h's key.
func (lh *Lheap[K]) Key(h adt.Handle) K { return lh.key[h] }

// SetKey assigns h's key. h must currently be a singleton.
func (lh *Lheap[K]) SetKey(h adt.Handle, k K) { lh.key[h] = k }

// Rank returns h's leftist rank (length of its right spine + 1).
func (lh *Lheap[K]) Rank(h adt.Handle) int { return lh.rank[h] }

// Left returns h's left child, 0 if none.
func (lh *Lheap[K]) Left(h adt.Handle) adt.Handle { return lh.left[h] }

// Right returns h's right child, 0 if none.
func (lh *Lheap[K]) Right(h adt.Handle) adt.Handle { return lh.right[h] }

// FindMin returns the item with the smallest key in the heap named by h —
// always h itself, since the root is always the minimum.
func (lh *Lheap[K]) FindMin(h adt.Handle) adt.Handle { return h }

// Meld combines h1 and h2, returning the canonical element of the combined
// heap.
func (lh *Lheap[K]) Meld(h1, h2 adt.Handle) adt.Handle {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	if lh.less(lh.key[h2], lh.key[h1]) {
		h1, h2 = h2, h1
	}
	lh.right[h1] = lh.Meld(lh.right[h1], h2)
	if lh.rank[lh.left[h1]] < lh.rank[lh.right[h1]] {
		lh.left[h1], lh.right[h1] = lh.right[h1], lh.left[h1]
	}
	lh.rank[h1] = lh.rank[lh.right[h1]] + 1
	return h1
}

// Insert melds singleton i (its key already set via SetKey) into h.
func (lh *Lheap[K]) Insert(i, h adt.Handle) adt.Handle { return lh.Meld(i, h) }

// DeleteMin removes the minimum (h itself) from the heap named by h,
// returning the canonical element of the resulting heap.
func (lh *Lheap[K]) DeleteMin(h adt.Handle) adt.Handle {
	h1 := lh.Meld(lh.left[h], lh.right[h])
	lh.left[h], lh.right[h] = 0, 0
	lh.rank[h] = 1
	return h1
}

// String renders every heap's tree, one per line, as
// "(left item:key,rank* right)", root marked with '*'.
func (lh *Lheap[K]) String() string {
	isRoot := make([]bool, lh.N()+1)
	for i := 1; i <= lh.N(); i++ {
		isRoot[i] = true
	}
	for i := 1; i <= lh.N(); i++ {
		if lh.left[i] != 0 {
			isRoot[lh.left[i]] = false
		}
		if lh.right[i] != 0 {
			isRoot[lh.right[i]] = false
		}
	}
	var sb strings.Builder
	for i := 1; i <= lh.N(); i++ {
		if isRoot[i] && (lh.left[i] != 0 || lh.right[i] != 0) {
			sb.WriteString(lh.treeString(adt.Handle(i), true))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (lh *Lheap[K]) treeString(h adt.Handle, isRoot bool) string {
	if h == 0 {
		return ""
	}
	if lh.left[h] == 0 && lh.right[h] == 0 {
		return fmt.Sprintf("%s:%v,%d", adt.RenderHandle(h, lh.N()), lh.key[h], lh.rank[h])
	}
	var sb strings.Builder
	sb.WriteByte('(')
	if lh.left[h] != 0 {
		sb.WriteString(lh.treeString(lh.left[h], false))
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "%s:%v,%d", adt.RenderHandle(h, lh.N()), lh.key[h], lh.rank[h])
	if isRoot {
		sb.WriteByte('*')
	}
	if lh.right[h] != 0 {
		sb.WriteByte(' ')
		sb.WriteString(lh.treeString(lh.right[h], false))
	}
	sb.WriteByte(')')
	return sb.String()
}
