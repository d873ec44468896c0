// Package heap provides the d-ary and meldable priority-queue families:
// Dheap, DiffHeap, DheapSet, Lheap, LazyLheap and Fheap (spec.md §4.3,
// §4.4).
package heap

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Dheap is a d-ary min-heap over handles 1..n keyed by a generic,
// caller-supplied ordering (spec.md §4.3.a), grounded on
// original_source/cpp/include/Ddheap.h and
// original_source/cpp/dataStructures/heaps/unit/testDheap.cpp (the plain
// Dheap<K> base class those files extend/exercise is not itself in the
// retrieved pack, so the array/pos layout below follows the teacher's
// PriorityQueue array-heap idiom in internal/stdlib/collections, adapted
// to the handle/pos-array representation spec.md §4.3.a requires).
type Dheap[K any] struct {
	adt.Base
	d    int
	h    []adt.Handle // h[1..hn]: handle stored at each heap position
	pos  []int        // pos[handle]: position in h, 0 if absent
	key  []K
	hn   int
	less func(a, b K) bool
}

// NewDheap constructs a Dheap over 1..n with d-way branching.
func NewDheap[K any](n, d int, less func(a, b K) bool) *Dheap[K] {
	if d < 2 {
		d = 2
	}
	dh := &Dheap[K]{Base: adt.NewBase(n), d: d, less: less}
	dh.allocate(n)
	return dh
}

func (dh *Dheap[K]) allocate(n int) {
	dh.h = make([]adt.Handle, n+1)
	dh.pos = make([]int, n+1)
	dh.key = make([]K, n+1)
	dh.hn = 0
}

// Resize drops all contents and reallocates for capacity n.
func (dh *Dheap[K]) Resize(n int) {
	dh.SetN(n)
	dh.allocate(n)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (dh *Dheap[K]) Expand(n int) {
	if n <= dh.N() {
		return
	}
	oldH, oldPos, oldKey := dh.h, dh.pos, dh.key
	old := dh.N()
	dh.SetN(n)
	dh.h = make([]adt.Handle, n+1)
	dh.pos = make([]int, n+1)
	dh.key = make([]K, n+1)
	copy(dh.h, oldH)
	copy(dh.pos, oldPos)
	copy(dh.key, oldKey)
	_ = old
}

// Clear empties the heap without discarding its capacity.
func (dh *Dheap[K]) Clear() {
	for i := 1; i <= dh.hn; i++ {
		dh.pos[dh.h[i]] = 0
	}
	dh.hn = 0
}

// Size returns the number of items currently in the heap.
func (dh *Dheap[K]) Size() int { return dh.hn }

// Empty reports whether the heap has no items.
func (dh *Dheap[K]) Empty() bool { return dh.hn == 0 }

// Member reports whether h is currently in the heap.
func (dh *Dheap[K]) Member(h adt.Handle) bool {
	return dh.Base.Valid(h) && dh.pos[h] != 0
}

// Key returns h's current key. Behaviour is undefined if h is absent.
func (dh *Dheap[K]) Key(h adt.Handle) K { return dh.key[h] }

// FindMin returns the handle with the smallest key, or 0 if empty.
func (dh *Dheap[K]) FindMin() adt.Handle {
	if dh.hn == 0 {
		return 0
	}
	return dh.h[1]
}

// Insert adds h with key k. h must not already be a member.
func (dh *Dheap[K]) Insert(h adt.Handle, k K) error {
	if err := dh.Base.CheckValid("Dheap.Insert", h); err != nil {
		return err
	}
	if dh.pos[h] != 0 {
		return gferrors.InvalidArgument("Dheap.Insert", "handle already a member", map[string]any{"handle": h})
	}
	dh.hn++
	dh.key[h] = k
	dh.siftup(h, dh.hn)
	return nil
}

// DeleteMin removes and returns the handle with the smallest key, or 0 if
// empty.
func (dh *Dheap[K]) DeleteMin() adt.Handle {
	if dh.hn == 0 {
		return 0
	}
	h := dh.h[1]
	last := dh.h[dh.hn]
	dh.hn--
	dh.pos[h] = 0
	if dh.hn > 0 {
		dh.siftdown(last, 1)
	}
	return h
}

// Remove takes h out of the heap, wherever it currently sits.
func (dh *Dheap[K]) Remove(h adt.Handle) error {
	if err := dh.Base.CheckValid("Dheap.Remove", h); err != nil {
		return err
	}
	p := dh.pos[h]
	if p == 0 {
		return gferrors.InvalidArgument("Dheap.Remove", "handle not a member", map[string]any{"handle": h})
	}
	last := dh.h[dh.hn]
	dh.hn--
	dh.pos[h] = 0
	if p <= dh.hn {
		if dh.less(dh.key[last], dh.key[h]) {
			dh.siftup(last, p)
		} else {
			dh.siftdown(last, p)
		}
	}
	return nil
}

// ChangeKey assigns h a new key and restores heap order.
func (dh *Dheap[K]) ChangeKey(h adt.Handle, k K) error {
	if err := dh.Base.CheckValid("Dheap.ChangeKey", h); err != nil {
		return err
	}
	p := dh.pos[h]
	if p == 0 {
		return gferrors.InvalidArgument("Dheap.ChangeKey", "handle not a member", map[string]any{"handle": h})
	}
	old := dh.key[h]
	dh.key[h] = k
	if dh.less(k, old) {
		dh.siftup(h, p)
	} else {
		dh.siftdown(h, p)
	}
	return nil
}

func (dh *Dheap[K]) parent(p int) int { return (p-2)/dh.d + 1 }

func (dh *Dheap[K]) siftup(h adt.Handle, p int) {
	for p > 1 {
		pp := dh.parent(p)
		if !dh.less(dh.key[h], dh.key[dh.h[pp]]) {
			break
		}
		dh.h[p] = dh.h[pp]
		dh.pos[dh.h[p]] = p
		p = pp
	}
	dh.h[p] = h
	dh.pos[h] = p
}

func (dh *Dheap[K]) siftdown(h adt.Handle, p int) {
	for {
		first := dh.d*(p-1) + 2
		if first > dh.hn {
			break
		}
		last := first + dh.d - 1
		if last > dh.hn {
			last = dh.hn
		}
		smallest := first
		for c := first + 1; c <= last; c++ {
			if dh.less(dh.key[dh.h[c]], dh.key[dh.h[smallest]]) {
				smallest = c
			}
		}
		if !dh.less(dh.key[dh.h[smallest]], dh.key[h]) {
			break
		}
		dh.h[p] = dh.h[smallest]
		dh.pos[dh.h[p]] = p
		p = smallest
	}
	dh.h[p] = h
	dh.pos[h] = p
}

// String renders the heap in breadth-first array order as "(h:k) (h:k) ...".
func (dh *Dheap[K]) String() string {
	var sb strings.Builder
	for i := 1; i <= dh.hn; i++ {
		if i > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%s:%v)", adt.RenderHandle(dh.h[i], dh.N()), dh.key[dh.h[i]])
	}
	return sb.String()
}

// IsConsistent audits the heap-order and pos/array agreement invariants.
func (dh *Dheap[K]) IsConsistent() error {
	for p := 2; p <= dh.hn; p++ {
		if dh.less(dh.key[dh.h[p]], dh.key[dh.h[dh.parent(p)]]) {
			return gferrors.Inconsistent("Dheap.IsConsistent", "heap order violated", map[string]any{"pos": p})
		}
	}
	for p := 1; p <= dh.hn; p++ {
		if dh.pos[dh.h[p]] != p {
			return gferrors.Inconsistent("Dheap.IsConsistent", "pos/array disagreement", map[string]any{"pos": p})
		}
	}
	return nil
}
