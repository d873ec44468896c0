package hash

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
	"github.com/jtalgo/grafalgo/internal/list"
)

// bktSize is the number of entries per hash bucket.
const bktSize = 8

// lgBktSize is log2(bktSize), used to shift fingerprint bits clear of the
// index bits.
const lgBktSize = 3

// HashSet maps each distinct element of type E to a small integer index
// in 1..n, usable as a handle into other collections, via a two-choice
// hash table with bktSize-entry buckets (spec.md §4.6.a), grounded on
// original_source/cpp/include/HashSet.h.
type HashSet[E comparable] struct {
	adt.Base
	hashit func(E, int) uint32

	nb              int
	bktMsk, fpMsk   uint32
	indexMsk        uint32
	bkt             [][bktSize]uint32
	eVec            []E
	idx             *list.ListPair
}

// NewHashSet constructs an empty HashSet with capacity for n elements,
// using hashit to compute 32-bit hash values (the second argument
// selects one of two independent hash functions, 0 or 1).
func NewHashSet[E comparable](n int, hashit func(E, int) uint32) *HashSet[E] {
	hs := &HashSet[E]{Base: adt.NewBase(n), hashit: hashit}
	hs.makeSpace(n)
	return hs
}

func (hs *HashSet[E]) makeSpace(size int) {
	nb := 1
	for size >= (2*bktSize*nb)*2/3 {
		nb <<= 1
	}
	if nb < 4 {
		nb = 4
	}
	hs.nb = nb
	hs.bktMsk = uint32(nb - 1)
	hs.indexMsk = uint32(2*bktSize*nb) - 1
	hs.fpMsk = ^hs.indexMsk
	hs.bkt = make([][bktSize]uint32, 2*nb)
	hs.eVec = make([]E, size+1)
	hs.idx = list.NewListPair(size)
}

// Resize drops all contents and reallocates for capacity n.
func (hs *HashSet[E]) Resize(n int) {
	hs.SetN(n)
	hs.makeSpace(n)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (hs *HashSet[E]) Expand(n int) {
	if n <= hs.N() {
		return
	}
	old := *hs
	hs.Resize(n)
	for x := old.First(); x != 0; x = old.Next(x) {
		hs.InsertAt(old.Retrieve(x), x)
	}
}

// Clear removes every element from the set.
func (hs *HashSet[E]) Clear() {
	for x := hs.First(); x != 0; x = hs.First() {
		hs.Remove(hs.eVec[x])
	}
}

// First returns some element's index, in no particular order, or 0 if
// the set is empty.
func (hs *HashSet[E]) First() adt.Handle { return hs.idx.FirstIn() }

// Next returns the index following x, in the same arbitrary order as
// First/Next together enumerate, or 0 after the last.
func (hs *HashSet[E]) Next(x adt.Handle) adt.Handle { return hs.idx.NextIn(x) }

// Size returns the number of elements currently in the set.
func (hs *HashSet[E]) Size() int { return hs.idx.NumIn() }

// Valid reports whether x is a currently assigned index.
func (hs *HashSet[E]) Valid(x adt.Handle) bool { return hs.idx.IsIn(x) }

// Retrieve returns the element assigned to index x.
func (hs *HashSet[E]) Retrieve(x adt.Handle) E { return hs.eVec[x] }

// Contains reports whether elem is a member of the set.
func (hs *HashSet[E]) Contains(elem E) bool { return hs.Find(elem) != 0 }

// Find returns the index assigned to elem, or 0 if elem is not a member.
func (hs *HashSet[E]) Find(elem E) adt.Handle {
	h0 := hs.hashit(elem, 0)
	b0 := h0 & hs.bktMsk
	fp0 := (h0 << (lgBktSize - 1)) & hs.fpMsk
	for i := 0; i < bktSize; i++ {
		if hs.bkt[b0][i] != 0 && hs.bkt[b0][i]&hs.fpMsk == fp0 {
			x := adt.Handle(hs.bkt[b0][i] & hs.indexMsk)
			if hs.eVec[x] == elem {
				return x
			}
		}
	}
	h1 := hs.hashit(elem, 1)
	b1 := uint32(hs.nb) + (h1 & hs.bktMsk)
	fp1 := (h1 << (lgBktSize - 1)) & hs.fpMsk
	for i := 0; i < bktSize; i++ {
		if hs.bkt[b1][i] != 0 && hs.bkt[b1][i]&hs.fpMsk == fp1 {
			x := adt.Handle(hs.bkt[b1][i] & hs.indexMsk)
			if hs.eVec[x] == elem {
				return x
			}
		}
	}
	return 0
}

// Insert adds elem to the set under a fresh index and returns that index.
// If elem is already present, it moves to the fresh index and its old
// index is freed. When no index is free the set first doubles its
// capacity; 0 is returned if elem still cannot be placed.
func (hs *HashSet[E]) Insert(elem E) adt.Handle {
	x := hs.idx.FirstOut()
	if x == 0 {
		hs.Expand(2 * hs.N())
		x = hs.idx.FirstOut()
		if x == 0 {
			return 0
		}
	}
	return hs.InsertAt(elem, x)
}

// InsertAt adds elem to the set under the specific index x (which must
// currently be unassigned), returning x, or 0 if x is already in use or
// there is no room in either of elem's candidate buckets.
func (hs *HashSet[E]) InsertAt(elem E, x adt.Handle) adt.Handle {
	if !hs.idx.IsOut(x) {
		return 0
	}
	hs.idx.SwapToTail(x)

	h0 := hs.hashit(elem, 0)
	b0 := h0 & hs.bktMsk
	fp0 := (h0 << (lgBktSize - 1)) & hs.fpMsk
	i0, n0 := 0, 0
	for i := bktSize - 1; i >= 0; i-- {
		if hs.bkt[b0][i] == 0 {
			n0++
			i0 = i
		} else if hs.bkt[b0][i]&hs.fpMsk == fp0 {
			oldIndex := adt.Handle(hs.bkt[b0][i] & hs.indexMsk)
			if hs.eVec[oldIndex] == elem {
				hs.bkt[b0][i] = fp0 | (uint32(x) & hs.indexMsk)
				hs.eVec[x] = elem
				hs.idx.SwapToTail(oldIndex)
				return x
			}
		}
	}
	h1 := hs.hashit(elem, 1)
	b1 := uint32(hs.nb) + (h1 & hs.bktMsk)
	fp1 := (h1 << (lgBktSize - 1)) & hs.fpMsk
	i1, n1 := 0, 0
	for i := bktSize - 1; i >= 0; i-- {
		if hs.bkt[b1][i] == 0 {
			n1++
			i1 = i
		} else if hs.bkt[b1][i]&hs.fpMsk == fp1 {
			oldIndex := adt.Handle(hs.bkt[b1][i] & hs.indexMsk)
			if hs.eVec[oldIndex] == elem {
				hs.bkt[b1][i] = fp1 | (uint32(x) & hs.indexMsk)
				hs.eVec[x] = elem
				hs.idx.SwapToTail(oldIndex)
				return x
			}
		}
	}
	if n0+n1 == 0 {
		hs.idx.SwapToTail(x)
		return 0
	}

	hs.eVec[x] = elem
	if n0 >= n1 {
		hs.bkt[b0][i0] = fp0 | (uint32(x) & hs.indexMsk)
	} else {
		hs.bkt[b1][i1] = fp1 | (uint32(x) & hs.indexMsk)
	}
	return x
}

// Remove takes elem out of the set, if present.
func (hs *HashSet[E]) Remove(elem E) {
	h0 := hs.hashit(elem, 0)
	b0 := h0 & hs.bktMsk
	fp0 := (h0 << (lgBktSize - 1)) & hs.fpMsk
	for i := 0; i < bktSize; i++ {
		if hs.bkt[b0][i] != 0 && hs.bkt[b0][i]&hs.fpMsk == fp0 {
			x := adt.Handle(hs.bkt[b0][i] & hs.indexMsk)
			if hs.eVec[x] == elem {
				hs.bkt[b0][i] = 0
				hs.idx.SwapToTail(x)
				return
			}
		}
	}
	h1 := hs.hashit(elem, 1)
	b1 := uint32(hs.nb) + (h1 & hs.bktMsk)
	fp1 := (h1 << (lgBktSize - 1)) & hs.fpMsk
	for i := 0; i < bktSize; i++ {
		if hs.bkt[b1][i] != 0 && hs.bkt[b1][i]&hs.fpMsk == fp1 {
			x := adt.Handle(hs.bkt[b1][i] & hs.indexMsk)
			if hs.eVec[x] == elem {
				hs.bkt[b1][i] = 0
				hs.idx.SwapToTail(x)
				return
			}
		}
	}
}

// String renders the set as "{(elem,index) ...}".
func (hs *HashSet[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for x, first := hs.First(), true; x != 0; x, first = hs.Next(x), false {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%v,%d)", hs.eVec[x], x)
	}
	sb.WriteByte('}')
	return sb.String()
}

// IsConsistent audits that every bucket entry's fingerprint and stored
// element agree, and that idx and the bucket array describe the same
// membership.
func (hs *HashSet[E]) IsConsistent() error {
	count := 0
	for _, b := range hs.bkt {
		for _, slot := range b {
			if slot != 0 {
				count++
				x := adt.Handle(slot & hs.indexMsk)
				if !hs.idx.IsIn(x) {
					return gferrors.Inconsistent("HashSet.IsConsistent", "bucket entry not marked in-use", map[string]any{"handle": x})
				}
				if hs.Find(hs.eVec[x]) != x {
					return gferrors.Inconsistent("HashSet.IsConsistent", "find does not recover stored index", map[string]any{"handle": x})
				}
			}
		}
	}
	if count != hs.idx.NumIn() {
		return gferrors.Inconsistent("HashSet.IsConsistent", "bucket entry count does not match idx", map[string]any{"count": count})
	}
	return nil
}
