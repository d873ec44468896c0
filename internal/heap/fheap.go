package heap

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
	"github.com/jtalgo/grafalgo/internal/list"
)

// Fheap is a collection of Fibonacci heaps over handles 1..n. Root
// siblings of each heap are maintained as a named list in an embedded
// Dlists, whose list id doubles as the heap name and is always the root
// with the minimum key (spec.md §4.4.c), grounded on
// original_source/cpp/dataStructures/heaps/Mheaps_f.cpp.
type Fheap[K Number] struct {
	adt.Base
	sibs       *list.Dlists
	key        []K
	rank       []int
	mark       []bool
	parent     []adt.Handle
	child      []adt.Handle
	rankBySlot []adt.Handle // scratch for mergeRoots, reused across calls
}

// NewFheap constructs an Fheap over 1..n with every handle a singleton
// heap.
func NewFheap[K Number](n int) *Fheap[K] {
	fh := &Fheap[K]{Base: adt.NewBase(n), sibs: list.NewDlists(n)}
	fh.allocate(n)
	return fh
}

func (fh *Fheap[K]) allocate(n int) {
	fh.key = make([]K, n+1)
	fh.rank = make([]int, n+1)
	fh.mark = make([]bool, n+1)
	fh.parent = make([]adt.Handle, n+1)
	fh.child = make([]adt.Handle, n+1)
	fh.rankBySlot = make([]adt.Handle, maxFheapRank+1)
}

const maxFheapRank = 64 // >= ceil(log_phi(2^31)), ample headroom over spec.md's ~32

// Resize drops all contents and reallocates for capacity n.
func (fh *Fheap[K]) Resize(n int) {
	fh.SetN(n)
	fh.sibs.Resize(n)
	fh.allocate(n)
}

// Clear resets every handle to its own singleton heap.
func (fh *Fheap[K]) Clear() {
	fh.sibs.Clear()
	fh.allocate(fh.N())
}

// Key returns h's current key.
func (fh *Fheap[K]) Key(h adt.Handle) K { return fh.key[h] }

// SetKey assigns h's key. h must currently be a singleton.
func (fh *Fheap[K]) SetKey(h adt.Handle, k K) { fh.key[h] = k }

// Rank returns h's rank (number of children).
func (fh *Fheap[K]) Rank(h adt.Handle) int { return fh.rank[h] }

// MakeHeap combines a list of singleton handles into one heap, returning
// the id of the root with the smallest key.
func (fh *Fheap[K]) MakeHeap(items []adt.Handle) adt.Handle {
	if len(items) == 0 {
		return 0
	}
	h := items[0]
	minh := h
	for _, h1 := range items[1:] {
		if fh.key[h1] < fh.key[minh] {
			minh = h1
		}
		h, _ = fh.sibs.Join(h, h1)
	}
	fh.sibs.Rename(h, minh)
	return minh
}

// Meld combines h1 and h2, returning the canonical element (the root with
// the smaller key) of the combined heap, in O(1).
func (fh *Fheap[K]) Meld(h1, h2 adt.Handle) adt.Handle {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	if fh.key[h1] <= fh.key[h2] {
		h, _ := fh.sibs.Join(h1, h2)
		return h
	}
	h, _ := fh.sibs.Join(h2, h1)
	return h
}

// Insert melds singleton i (its key already set via SetKey) into the heap
// named by h.
func (fh *Fheap[K]) Insert(i, h adt.Handle) adt.Handle { return fh.Meld(i, h) }

// DecreaseKey subtracts delta from i's key and restructures the heap
// named by h to restore heap order, returning the (possibly updated) heap
// id.
func (fh *Fheap[K]) DecreaseKey(i adt.Handle, delta K, h adt.Handle) adt.Handle {
	pi := fh.parent[i]
	fh.key[i] -= delta
	if pi == 0 {
		if fh.key[h] <= fh.key[i] {
			return h
		}
		fh.sibs.Rename(h, i)
		return i
	}
	if fh.key[i] >= fh.key[pi] {
		return h
	}
	for {
		fh.rank[pi]--
		fh.child[pi], _ = fh.sibs.Remove(i, fh.child[pi])
		fh.parent[i] = 0
		fh.mark[i] = false
		h = fh.Meld(i, h)
		i = pi
		pi = fh.parent[i]
		if !fh.mark[i] {
			break
		}
	}
	if pi != 0 {
		fh.mark[i] = true
	}
	return h
}

// mergeRoots merges the root-list siblings of r by rank, eliminating
// repeated ranks, and returns the resulting root with the smallest key.
func (fh *Fheap[K]) mergeRoots(r adt.Handle) adt.Handle {
	var queue []adt.Handle
	minRoot := r
	for sr := fh.sibs.First(r); sr != 0; sr = fh.sibs.Next(sr) {
		if fh.key[sr] < fh.key[minRoot] {
			minRoot = sr
		}
		queue = append(queue, sr)
		fh.parent[sr] = 0
		fh.mark[sr] = false
	}
	fh.sibs.Rename(r, minRoot)
	r = minRoot

	for i := range fh.rankBySlot {
		fh.rankBySlot[i] = 0
	}
	maxRank := -1
	for len(queue) > 0 {
		r1 := queue[0]
		queue = queue[1:]
		if fh.rank[r1] >= len(fh.rankBySlot) {
			fh.rankBySlot = append(fh.rankBySlot, make([]adt.Handle, fh.rank[r1]-len(fh.rankBySlot)+1)...)
		}
		r2 := fh.rankBySlot[fh.rank[r1]]
		switch {
		case maxRank < fh.rank[r1]:
			for maxRank++; maxRank < fh.rank[r1]; maxRank++ {
				fh.rankBySlot[maxRank] = 0
			}
			fh.rankBySlot[fh.rank[r1]] = r1
		case r2 == 0:
			fh.rankBySlot[fh.rank[r1]] = r1
		case fh.key[r1] < fh.key[r2] || (fh.key[r1] == fh.key[r2] && r1 == r):
			r, _ = fh.sibs.Remove(r2, r)
			fh.child[r1], _ = fh.sibs.Join(fh.child[r1], r2)
			fh.rankBySlot[fh.rank[r1]] = 0
			fh.rank[r1]++
			fh.parent[r2] = r1
			queue = append(queue, r1)
		default:
			r, _ = fh.sibs.Remove(r1, r)
			fh.child[r2], _ = fh.sibs.Join(fh.child[r2], r1)
			fh.rankBySlot[fh.rank[r1]] = 0
			fh.rank[r2]++
			fh.parent[r1] = r2
			queue = append(queue, r2)
		}
	}
	return r
}

// DeleteMin removes the minimum item (h itself) from the heap named by h,
// returning the canonical element of the resulting heap, or 0 if h was a
// singleton.
func (fh *Fheap[K]) DeleteMin(h adt.Handle) adt.Handle {
	if fh.child[h] != 0 {
		for x := fh.sibs.First(fh.child[h]); x != 0; x = fh.sibs.Next(x) {
			fh.parent[x] = 0
		}
		fh.sibs.Join(h, fh.child[h])
		fh.child[h] = 0
	}
	fh.rank[h] = 0
	if fh.sibs.Singleton(h) {
		return 0
	}
	rest, _ := fh.sibs.Remove(h, h)
	return fh.mergeRoots(rest)
}

// Remove takes i out of the heap named by h, restoring h's key afterward.
func (fh *Fheap[K]) Remove(i adt.Handle, h adt.Handle) adt.Handle {
	k := fh.key[i]
	h = fh.DecreaseKey(i, (fh.key[i]-fh.key[h])+1, h)
	h = fh.DeleteMin(h)
	fh.key[i] = k
	return h
}

// String renders every non-trivial heap, one per line.
func (fh *Fheap[K]) String() string {
	marked := make([]bool, fh.N()+1)
	var sb strings.Builder
	for r := 1; r <= fh.N(); r++ {
		if fh.parent[r] != 0 || marked[r] {
			continue
		}
		h := fh.sibs.FindList(adt.Handle(r))
		for r1 := fh.sibs.First(h); r1 != 0; r1 = fh.sibs.Next(r1) {
			marked[r1] = true
		}
		if fh.child[h] != 0 || !fh.sibs.Singleton(h) {
			sb.WriteString(fh.treeListString(h))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (fh *Fheap[K]) treeListString(x adt.Handle) string {
	if x == 0 || (fh.parent[x] == 0 && fh.child[x] == 0 && fh.sibs.Singleton(x)) {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for r := fh.sibs.First(x); r != 0; r = fh.sibs.Next(r) {
		if r != fh.sibs.First(x) {
			sb.WriteByte(' ')
		}
		sb.WriteString(adt.RenderHandle(r, fh.N()))
		if fh.mark[r] {
			sb.WriteByte('!')
		} else {
			sb.WriteByte(':')
		}
		sb.WriteString(fh.treeListString(fh.child[r]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsConsistent audits rank-vs-children-count and parent/child agreement.
func (fh *Fheap[K]) IsConsistent() error {
	for i := 1; i <= fh.N(); i++ {
		if fh.child[i] == 0 {
			continue
		}
		count := 0
		for x := fh.sibs.First(fh.child[i]); x != 0; x = fh.sibs.Next(x) {
			if fh.parent[x] != adt.Handle(i) {
				return gferrors.Inconsistent("Fheap.IsConsistent", "child's parent pointer mismatch", map[string]any{"handle": i})
			}
			count++
		}
		if count != fh.rank[i] {
			return gferrors.Inconsistent("Fheap.IsConsistent", "rank does not match child count", map[string]any{"handle": i})
		}
	}
	return nil
}
