package tree

import (
	"strconv"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
)

// RbBst augments Bst with rank-balanced rebalancing on insert and remove
// (a red-black rank invariant: the nil rank is 0, every node's rank equals
// each child's or exceeds it by 1, and every node's rank exceeds each
// grandchild's), giving O(log n) worst-case operations
// (spec.md §4.5.b), grounded on
// original_source/cpp/dataStructures/searchTrees/BalBstSet.cpp.
type RbBst[K any] struct {
	*Bst[K]
	rank []int
}

// NewRbBst constructs an RbBst over 1..n with every handle a singleton
// tree of rank 1 (the nil rank, index 0, is always 0).
func NewRbBst[K any](n int, less func(a, b K) bool) *RbBst[K] {
	rb := &RbBst[K]{Bst: NewBst[K](n, less)}
	rb.allocate(n)
	return rb
}

func (rb *RbBst[K]) allocate(n int) {
	rb.rank = make([]int, n+1)
	for i := 1; i <= n; i++ {
		rb.rank[i] = 1
	}
	rb.rank[0] = 0
}

// Resize drops all contents and reallocates for capacity n.
func (rb *RbBst[K]) Resize(n int) {
	rb.Bst.Resize(n)
	rb.allocate(n)
}

// Clear resets every handle to its own singleton tree of rank 1.
func (rb *RbBst[K]) Clear() {
	rb.Bst.Clear()
	rb.allocate(rb.N())
}

// Rank returns i's rank.
func (rb *RbBst[K]) Rank(i adt.Handle) int { return rb.rank[i] }

// sibling returns px's other child, the one that is not x.
func (rb *RbBst[K]) sibling(x, px adt.Handle) adt.Handle {
	if x == rb.left[px] {
		return rb.right[px]
	}
	return rb.left[px]
}

func (rb *RbBst[K]) swap(i, j adt.Handle) {
	rb.Bst.swap(i, j)
	rb.rank[i], rb.rank[j] = rb.rank[j], rb.rank[i]
}

// Insert adds singleton i (its key already set via SetKey) to the tree
// named by t, rebalancing by promotion and at most two rotations.
func (rb *RbBst[K]) Insert(i, t adt.Handle) adt.Handle {
	newT, _ := rb.Bst.Insert(i, t)
	t = newT
	if t == i {
		return t
	}
	x := i
	gpx := rb.parent[rb.parent[x]]
	for gpx != 0 && rb.rank[x] == rb.rank[gpx] &&
		rb.rank[rb.left[gpx]] == rb.rank[rb.right[gpx]] {
		rb.rank[gpx]++
		x = gpx
		gpx = rb.parent[rb.parent[x]]
	}
	if gpx == 0 || rb.rank[x] != rb.rank[gpx] {
		return t
	}
	if x == rb.left[rb.left[gpx]] || x == rb.right[rb.right[gpx]] {
		rb.rotate(rb.parent[x])
	} else {
		rb.rotate(x)
		rb.rotate(x)
	}
	if rb.parent[t] != 0 {
		t = rb.parent[t]
	}
	return t
}

// Remove takes i out of the tree named by t, rebalancing the rank
// invariant on the way back up and returning the (possibly updated)
// root.
func (rb *RbBst[K]) Remove(i, t adt.Handle) adt.Handle {
	var r adt.Handle
	if t != i {
		r = t
	} else if rb.right[t] != 0 {
		r = rb.right[t]
	} else {
		r = rb.left[t]
	}

	var j adt.Handle
	if rb.left[i] != 0 && rb.right[i] != 0 {
		for j = rb.left[i]; rb.right[j] != 0; j = rb.right[j] {
		}
		rb.swap(i, j)
	}
	if rb.left[i] != 0 {
		j = rb.left[i]
	} else {
		j = rb.right[i]
	}
	if j != 0 {
		rb.parent[j] = rb.parent[i]
	}
	var px adt.Handle
	if rb.parent[i] != 0 {
		if i == rb.left[rb.parent[i]] {
			rb.left[rb.parent[i]] = j
		} else if i == rb.right[rb.parent[i]] {
			rb.right[rb.parent[i]] = j
		}
		px = rb.parent[i]
	} else {
		px = j
	}
	rb.parent[i], rb.left[i], rb.right[i] = 0, 0, 0
	rb.rank[i] = 1

	if px == 0 {
		return rb.Find(r)
	}
	var x adt.Handle
	switch {
	case rb.rank[rb.left[px]] < rb.rank[px]-1:
		x = rb.left[px]
	case rb.rank[rb.right[px]] < rb.rank[px]-1:
		x = rb.right[px]
	default:
		return rb.Find(r)
	}
	y := rb.sibling(x, px)
	for px != 0 && rb.rank[x] < rb.rank[px]-1 &&
		(y == 0 || (rb.rank[y] < rb.rank[px] &&
			rb.rank[rb.left[y]] < rb.rank[y] && rb.rank[rb.right[y]] < rb.rank[y])) {
		rb.rank[px]--
		x = px
		px = rb.parent[x]
		y = rb.sibling(x, px)
	}
	if px == 0 {
		return rb.Find(r)
	}
	if rb.rank[x] >= rb.rank[px]-1 {
		return rb.Find(r)
	}
	if rb.rank[y] == rb.rank[px] {
		rb.rotate(y)
		y = rb.sibling(x, px)
		if rb.rank[rb.left[y]] < rb.rank[y] && rb.rank[rb.right[y]] < rb.rank[y] {
			rb.rank[px]--
			return rb.Find(r)
		}
	}
	var z adt.Handle
	if x == rb.right[px] {
		z = rb.left[y]
	} else {
		z = rb.right[y]
	}
	if rb.rank[z] == rb.rank[y] {
		rb.rotate(y)
		if y != 0 {
			rb.rank[y] = rb.rank[px]
		}
		rb.rank[px]--
	} else {
		z = rb.sibling(z, y)
		rb.rotate(z)
		rb.rotate(z)
		if z != 0 {
			rb.rank[z] = rb.rank[px]
		}
		rb.rank[px]--
	}
	return rb.Find(r)
}

// Join and Split are not supported on rank-balanced trees; the original
// implementation this is ported from leaves them unimplemented as well.

// String renders every non-singleton tree, one per line, with each node
// annotated by its rank.
func (rb *RbBst[K]) String() string {
	var sb strings.Builder
	for i := 1; i <= rb.N(); i++ {
		if rb.parent[i] == 0 && (rb.left[i] != 0 || rb.right[i] != 0) {
			sb.WriteString(rb.treeString(adt.Handle(i)))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (rb *RbBst[K]) treeString(t adt.Handle) string {
	if t == 0 {
		return ""
	}
	var sb strings.Builder
	if rb.left[t] != 0 {
		sb.WriteByte('(')
		sb.WriteString(rb.treeString(rb.left[t]))
		sb.WriteString(") ")
	}
	sb.WriteString(adt.RenderHandle(t, rb.N()))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(rb.rank[t]))
	if rb.parent[t] == 0 {
		sb.WriteByte('*')
	}
	if rb.right[t] != 0 {
		sb.WriteString(" (")
		sb.WriteString(rb.treeString(rb.right[t]))
		sb.WriteByte(')')
	}
	return sb.String()
}
