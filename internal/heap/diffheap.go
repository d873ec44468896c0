package heap

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
)

// Number is the constraint DiffHeap requires of its key type: anything with
// the usual numeric operators, so a single heap-wide offset can be added
// and subtracted in O(1).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DiffHeap is a Dheap variant that supports an O(1) addToAll(Δ) by storing
// every inserted key relative to a single heap-wide delta rather than its
// true value (spec.md §4.3.b), grounded on
// original_source/cpp/include/Ddheap.h, whose Ddheap<K> keeps exactly one
// delta field rather than the per-node delta-to-parent scheme floated in
// early design notes — the single offset gives identical O(1) addToAll and
// O(1) findMin behaviour with a much simpler implementation.
type DiffHeap[K Number] struct {
	inner *Dheap[K]
	delta K
}

// NewDiffHeap constructs a DiffHeap over 1..n with d-way branching.
func NewDiffHeap[K Number](n, d int) *DiffHeap[K] {
	return &DiffHeap[K]{inner: NewDheap[K](n, d, func(a, b K) bool { return a < b })}
}

// Resize drops all contents and reallocates for capacity n.
func (dh *DiffHeap[K]) Resize(n int) { dh.inner.Resize(n); dh.delta = 0 }

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (dh *DiffHeap[K]) Expand(n int) { dh.inner.Expand(n) }

// Clear empties the heap and resets the accumulated offset.
func (dh *DiffHeap[K]) Clear() { dh.inner.Clear(); dh.delta = 0 }

func (dh *DiffHeap[K]) N() int                      { return dh.inner.N() }
func (dh *DiffHeap[K]) Size() int                   { return dh.inner.Size() }
func (dh *DiffHeap[K]) Empty() bool                 { return dh.inner.Empty() }
func (dh *DiffHeap[K]) Member(h adt.Handle) bool    { return dh.inner.Member(h) }
func (dh *DiffHeap[K]) Key(h adt.Handle) K          { return dh.inner.Key(h) + dh.delta }
func (dh *DiffHeap[K]) FindMin() adt.Handle         { return dh.inner.FindMin() }
func (dh *DiffHeap[K]) DeleteMin() adt.Handle       { return dh.inner.DeleteMin() }

// Insert adds h with key k. h must not already be a member.
func (dh *DiffHeap[K]) Insert(h adt.Handle, k K) error {
	return dh.inner.Insert(h, k-dh.delta)
}

// ChangeKey assigns h a new key and restores heap order.
func (dh *DiffHeap[K]) ChangeKey(h adt.Handle, k K) error {
	return dh.inner.ChangeKey(h, k-dh.delta)
}

// Remove takes h out of the heap, wherever it currently sits.
func (dh *DiffHeap[K]) Remove(h adt.Handle) error { return dh.inner.Remove(h) }

// AddToAll shifts every key currently in the heap by x, in O(1).
func (dh *DiffHeap[K]) AddToAll(x K) { dh.delta += x }

// String renders the heap's true (delta-adjusted) keys.
func (dh *DiffHeap[K]) String() string {
	var sb strings.Builder
	for i := 1; i <= dh.inner.hn; i++ {
		h := dh.inner.h[i]
		if i > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%s:%v)", adt.RenderHandle(h, dh.N()), dh.Key(h))
	}
	return sb.String()
}

// IsConsistent audits the underlying heap's invariants.
func (dh *DiffHeap[K]) IsConsistent() error { return dh.inner.IsConsistent() }
