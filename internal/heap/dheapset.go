package heap

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// DheapSet is an arena of d-slot nodes backing up to maxHeap independent
// d-ary heaps, so that many small per-heap priority queues can share one
// O(n) allocation (spec.md §4.3.c), grounded on
// original_source/cpp/dataStructures/heaps/DheapSet.cpp and
// original_source/cpp/include/Dheaps.h.
type DheapSet[K any] struct {
	adt.Base
	maxHeap  int
	d        int
	numNodes int

	heaps []adt.Handle // arena, numNodes*d slots
	child []int        // child[p]: first child node of item at slot p, -1 if none
	key   []K          // key[i]: key of item i

	root  []int // root[h]: slot of h's root node
	bot   []int // bot[h]: slot of h's last node in BFS order
	hSize []int // hSize[h]: number of items in heap h

	parent []int // parent[p/d]: parent node slot (or free-list link)
	pred   []int // pred[p/d]: predecessor node slot in BFS order

	free int
	less func(a, b K) bool
}

// NewDheapSet constructs a DheapSet over items 1..n, supporting heap ids
// 1..maxHeap, each a d-ary heap.
func NewDheapSet[K any](n, maxHeap, d int, less func(a, b K) bool) *DheapSet[K] {
	if d < 2 {
		d = 2
	}
	hs := &DheapSet[K]{Base: adt.NewBase(n), maxHeap: maxHeap, d: d, less: less}
	hs.allocate(n, maxHeap, d)
	return hs
}

func (hs *DheapSet[K]) allocate(n, maxHeap, d int) {
	hs.maxHeap, hs.d = maxHeap, d
	hs.numNodes = n/d + maxHeap
	if hs.numNodes < 1 {
		hs.numNodes = 1
	}
	hs.heaps = make([]adt.Handle, hs.numNodes*d)
	hs.child = make([]int, hs.numNodes*d)
	hs.parent = make([]int, hs.numNodes)
	hs.pred = make([]int, hs.numNodes)
	hs.key = make([]K, n+1)
	hs.root = make([]int, maxHeap+1)
	hs.bot = make([]int, maxHeap+1)
	hs.hSize = make([]int, maxHeap+1)
	hs.initFreeList()
}

func (hs *DheapSet[K]) initFreeList() {
	for h := 1; h <= hs.maxHeap; h++ {
		hs.hSize[h] = 0
	}
	for p := range hs.heaps {
		hs.heaps[p] = 0
	}
	for i := 0; i < hs.numNodes-1; i++ {
		hs.parent[i] = (i + 1) * hs.d
	}
	hs.parent[hs.numNodes-1] = -1
	hs.free = 0
}

// Resize drops all contents and reallocates for capacity n and maxHeap
// heaps.
func (hs *DheapSet[K]) Resize(n, maxHeap int) {
	hs.SetN(n)
	hs.allocate(n, maxHeap, hs.d)
}

// Clear empties every heap without discarding capacity.
func (hs *DheapSet[K]) Clear() { hs.initFreeList() }

// Empty reports whether heap h currently has no items.
func (hs *DheapSet[K]) Empty(h int) bool { return hs.hSize[h] == 0 }

// HeapSize returns the number of items currently in heap h.
func (hs *DheapSet[K]) HeapSize(h int) int { return hs.hSize[h] }

// Key returns the key of item i.
func (hs *DheapSet[K]) Key(i adt.Handle) K { return hs.key[i] }

func (hs *DheapSet[K]) nodeMinPos(p int) int {
	if p == -1 || hs.heaps[p] == 0 {
		return -1
	}
	minPos := p
	for q := p + 1; q < p+hs.d && hs.heaps[q] != 0; q++ {
		if hs.less(hs.key[hs.heaps[q]], hs.key[hs.heaps[minPos]]) {
			minPos = q
		}
	}
	return minPos
}

// FindMin returns the item with the smallest key in heap h, or 0 if empty.
func (hs *DheapSet[K]) FindMin(h int) adt.Handle {
	if hs.hSize[h] == 0 {
		return 0
	}
	p := hs.nodeMinPos(hs.root[h])
	if p < 0 {
		return 0
	}
	return hs.heaps[p]
}

// Insert adds item i with key k to heap h.
func (hs *DheapSet[K]) Insert(i adt.Handle, k K, h int) error {
	if err := hs.Base.CheckValid("DheapSet.Insert", i); err != nil {
		return err
	}
	hs.key[i] = k
	d := hs.d
	n := hs.hSize[h]
	r := (n - 1) % d
	if n != 0 && r != d-1 {
		p := hs.bot[h] + r + 1
		hs.child[p] = -1
		hs.hSize[h]++
		hs.siftup(i, p)
		return nil
	}
	if hs.free < 0 {
		return gferrors.OutOfSpace("DheapSet.Insert", "no free nodes", map[string]any{"heap": h})
	}
	p := hs.free
	hs.free = hs.parent[hs.free/d]
	hs.heaps[p] = i
	hs.child[p] = -1
	hs.hSize[h]++
	if n == 0 {
		hs.root[h], hs.bot[h] = p, p
		hs.pred[p/d], hs.parent[p/d] = -1, -1
		return nil
	}
	hs.pred[p/d] = hs.bot[h]
	hs.bot[h] = p

	q := hs.pred[p/d] + (d - 1)
	for hs.parent[q/d] >= 0 && q%d == d-1 {
		q = hs.parent[q/d]
	}
	if q%d != d-1 {
		q++
	} else {
		q -= d - 1
	}
	for hs.child[q] != -1 {
		q = hs.child[q]
	}
	hs.child[q] = p
	hs.parent[p/d] = q

	hs.siftup(i, p)
	return nil
}

// DeleteMin removes and returns the minimum item of heap h, or 0 if empty.
func (hs *DheapSet[K]) DeleteMin(h int) adt.Handle {
	d := hs.d
	hn := hs.hSize[h]
	if hn == 0 {
		return 0
	}
	if hn == 1 {
		p := hs.root[h]
		i := hs.heaps[p]
		hs.heaps[p] = 0
		hs.parent[p/d] = hs.free
		hs.free = p
		hs.hSize[h] = 0
		return i
	}

	p := hs.nodeMinPos(hs.root[h])
	i := hs.heaps[p]
	if hn <= d {
		hn--
		hs.heaps[p] = hs.heaps[hs.root[h]+hn]
		hs.heaps[hs.root[h]+hn] = 0
		hs.hSize[h] = hn
		return i
	}

	q := hs.bot[h]
	r := (hn - 1) % d
	j := hs.heaps[q+r]
	hs.heaps[q+r] = 0
	hs.hSize[h]--
	if r == 0 {
		if hs.parent[q/d] >= 0 {
			hs.child[hs.parent[q/d]] = -1
		}
		hs.bot[h] = hs.pred[q/d]
		hs.parent[q/d] = hs.free
		hs.free = q
	}

	hs.siftdown(j, p)
	return i
}

func (hs *DheapSet[K]) siftup(i adt.Handle, p int) {
	pp := hs.parent[p/hs.d]
	for pp >= 0 && hs.less(hs.key[i], hs.key[hs.heaps[pp]]) {
		hs.heaps[p] = hs.heaps[pp]
		p = pp
		pp = hs.parent[pp/hs.d]
	}
	hs.heaps[p] = i
}

func (hs *DheapSet[K]) siftdown(i adt.Handle, p int) {
	cp := hs.nodeMinPos(hs.child[p])
	for cp >= 0 && hs.less(hs.key[hs.heaps[cp]], hs.key[i]) {
		hs.heaps[p] = hs.heaps[cp]
		p = cp
		cp = hs.nodeMinPos(hs.child[cp])
	}
	hs.heaps[p] = i
}

// ChangeKeyMin reassigns the key of heap h's minimum item and restores
// heap order.
func (hs *DheapSet[K]) ChangeKeyMin(k K, h int) {
	p := hs.nodeMinPos(hs.root[h])
	i := hs.heaps[p]
	hs.key[i] = k
	hs.siftdown(i, p)
}

// String renders every non-empty heap, one per line.
func (hs *DheapSet[K]) String() string {
	var sb strings.Builder
	for h := 1; h <= hs.maxHeap; h++ {
		if !hs.Empty(h) {
			sb.WriteString(hs.HeapString(h))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// HeapString renders heap h's nodes in breadth-first order, one row of
// nodes per BFS level.
func (hs *DheapSet[K]) HeapString(h int) string {
	if hs.hSize[h] == 0 {
		return "[]"
	}
	var nodes []int
	for p := hs.bot[h]; p != -1; p = hs.pred[p/hs.d] {
		nodes = append([]int{p}, nodes...)
	}
	var sb strings.Builder
	cnt, numPerRow := 0, 1
	for _, p := range nodes {
		sb.WriteByte('[')
		for q := p; q < p+hs.d && hs.heaps[q] != 0; q++ {
			if q > p {
				sb.WriteByte(' ')
			}
			i := hs.heaps[q]
			fmt.Fprintf(&sb, "%s:%v", adt.RenderHandle(i, hs.N()), hs.key[i])
		}
		sb.WriteString("] ")
		cnt++
		if cnt == numPerRow {
			sb.WriteByte('\n')
			cnt = 0
			numPerRow *= hs.d
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// IsConsistent audits that every heap's node chain terminates and that
// root/bot agree with the node chain's ends.
func (hs *DheapSet[K]) IsConsistent() error {
	for h := 1; h <= hs.maxHeap; h++ {
		if hs.hSize[h] == 0 {
			continue
		}
		p := hs.root[h]
		for steps := 0; p != -1; steps++ {
			if hs.child[p] == p {
				return gferrors.Inconsistent("DheapSet.IsConsistent", "self-referential child pointer", map[string]any{"heap": h})
			}
			if steps > hs.numNodes {
				return gferrors.Inconsistent("DheapSet.IsConsistent", "child chain does not terminate", map[string]any{"heap": h})
			}
			p = hs.child[p]
		}
		q := hs.bot[h]
		for steps := 0; hs.pred[q/hs.d] != -1; steps++ {
			if steps > hs.numNodes {
				return gferrors.Inconsistent("DheapSet.IsConsistent", "node chain does not terminate", map[string]any{"heap": h})
			}
			q = hs.pred[q/hs.d]
		}
		if q != hs.root[h] {
			return gferrors.Inconsistent("DheapSet.IsConsistent", "root and bot disagree with the node chain", map[string]any{"heap": h})
		}
	}
	return nil
}
