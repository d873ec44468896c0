// Package tree provides the search-tree collections: Bst, RbBst,
// SplayBst, DualKeyBst (spec.md §4.5).
package tree

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Bst is a collection of plain (unbalanced) binary search trees over
// handles 1..n keyed by a generic ordering. A tree is named by the handle
// of its root (spec.md §4.5.a), grounded on
// original_source/cpp/dataStructures/searchTrees/BstSet.cpp.
type Bst[K any] struct {
	adt.Base
	left, right, parent []adt.Handle
	key                 []K
	less                func(a, b K) bool
}

// NewBst constructs a Bst over 1..n with every handle a singleton tree.
func NewBst[K any](n int, less func(a, b K) bool) *Bst[K] {
	b := &Bst[K]{Base: adt.NewBase(n), less: less}
	b.allocate(n)
	return b
}

func (b *Bst[K]) allocate(n int) {
	b.left = make([]adt.Handle, n+1)
	b.right = make([]adt.Handle, n+1)
	b.parent = make([]adt.Handle, n+1)
	b.key = make([]K, n+1)
}

// Resize drops all contents and reallocates for capacity n.
func (b *Bst[K]) Resize(n int) {
	b.SetN(n)
	b.allocate(n)
}

// Clear resets every handle to its own singleton tree.
func (b *Bst[K]) Clear() { b.allocate(b.N()) }

// Key returns i's key.
func (b *Bst[K]) Key(i adt.Handle) K { return b.key[i] }

// SetKey assigns i's key. i must currently be a singleton.
func (b *Bst[K]) SetKey(i adt.Handle, k K) { b.key[i] = k }

// Left returns i's left child, 0 if none.
func (b *Bst[K]) Left(i adt.Handle) adt.Handle { return b.left[i] }

// Right returns i's right child, 0 if none.
func (b *Bst[K]) Right(i adt.Handle) adt.Handle { return b.right[i] }

// Parent returns i's parent, 0 if i is a root.
func (b *Bst[K]) Parent(i adt.Handle) adt.Handle { return b.parent[i] }

// Find returns the canonical element (root) of the tree containing i,
// without restructuring.
func (b *Bst[K]) Find(i adt.Handle) adt.Handle {
	for b.parent[i] != 0 {
		i = b.parent[i]
	}
	return i
}

// rotate moves x up into its parent y's position.
func (b *Bst[K]) rotate(x adt.Handle) {
	y := b.parent[x]
	if y == 0 {
		return
	}
	b.parent[x] = b.parent[y]
	switch y {
	case b.left[b.parent[x]]:
		b.left[b.parent[x]] = x
	case b.right[b.parent[x]]:
		b.right[b.parent[x]] = x
	}
	if x == b.left[y] {
		b.left[y] = b.right[x]
		if b.left[y] != 0 {
			b.parent[b.left[y]] = y
		}
		b.right[x] = y
	} else {
		b.right[y] = b.left[x]
		if b.right[y] != 0 {
			b.parent[b.right[y]] = y
		}
		b.left[x] = y
	}
	b.parent[y] = x
}

// Access returns the item with key k in the tree named by t, or 0 if
// none.
func (b *Bst[K]) Access(k K, t adt.Handle) adt.Handle {
	x := t
	for x != 0 && !b.equalKey(k, b.key[x]) {
		if b.less(k, b.key[x]) {
			x = b.left[x]
		} else {
			x = b.right[x]
		}
	}
	return x
}

func (b *Bst[K]) equalKey(a, c K) bool { return !b.less(a, c) && !b.less(c, a) }

// Insert adds singleton i (its key already set via SetKey) to the tree
// named by t, returning the (possibly updated) root and whether the key
// was not already present.
func (b *Bst[K]) Insert(i, t adt.Handle) (adt.Handle, bool) {
	if t == 0 {
		return i, true
	}
	x := t
	for {
		if b.less(b.key[i], b.key[x]) && b.left[x] != 0 {
			x = b.left[x]
		} else if b.less(b.key[x], b.key[i]) && b.right[x] != 0 {
			x = b.right[x]
		} else {
			break
		}
	}
	switch {
	case b.less(b.key[i], b.key[x]):
		b.left[x] = i
	case b.less(b.key[x], b.key[i]):
		b.right[x] = i
	default:
		return t, false
	}
	b.parent[i] = x
	return t, true
}

// swap exchanges the tree positions of i and j, where j is not i's
// parent. Helper for Remove.
func (b *Bst[K]) swap(i, j adt.Handle) {
	li, ri, pi := b.left[i], b.right[i], b.parent[i]
	lj, rj, pj := b.left[j], b.right[j], b.parent[j]

	if li != 0 {
		b.parent[li] = j
	}
	if ri != 0 {
		b.parent[ri] = j
	}
	if pi != 0 {
		if i == b.left[pi] {
			b.left[pi] = j
		} else {
			b.right[pi] = j
		}
	}
	if lj != 0 {
		b.parent[lj] = i
	}
	if rj != 0 {
		b.parent[rj] = i
	}
	if pj != 0 {
		if j == b.left[pj] {
			b.left[pj] = i
		} else {
			b.right[pj] = i
		}
	}

	b.left[i], b.right[i], b.parent[i] = lj, rj, pj
	b.left[j], b.right[j], b.parent[j] = li, ri, pi

	switch j {
	case li:
		b.left[j] = i
		b.parent[i] = j
	case ri:
		b.right[j] = i
		b.parent[i] = j
	}
}

// Remove takes i out of the tree named by t, returning the (possibly
// updated) root.
func (b *Bst[K]) Remove(i, t adt.Handle) adt.Handle {
	var c adt.Handle
	if b.left[t] != 0 {
		c = b.left[t]
	} else {
		c = b.right[t]
	}
	if b.left[i] != 0 && b.right[i] != 0 {
		j := b.left[i]
		for b.right[j] != 0 {
			j = b.right[j]
		}
		b.swap(i, j)
	}
	var j adt.Handle
	if b.left[i] != 0 {
		j = b.left[i]
	} else {
		j = b.right[i]
	}
	if j != 0 {
		b.parent[j] = b.parent[i]
	}
	if b.parent[i] != 0 {
		if i == b.left[b.parent[i]] {
			b.left[b.parent[i]] = j
		} else {
			b.right[b.parent[i]] = j
		}
	}
	b.parent[i], b.left[i], b.right[i] = 0, 0, 0
	if i == t {
		if b.parent[c] == 0 {
			t = c
		} else {
			t = b.parent[c]
		}
	}
	return t
}

// Join combines t1, singleton i, and t2 into one tree, where every key in
// t1 is less than i's key and every key in t2 is greater. Returns the new
// root, i.
func (b *Bst[K]) Join(t1, i, t2 adt.Handle) adt.Handle {
	b.left[i], b.right[i] = t1, t2
	if t1 != 0 {
		b.parent[t1] = i
	}
	if t2 != 0 {
		b.parent[t2] = i
	}
	return i
}

// Split divides the tree containing i at i, returning the left part
// (keys < i's key) and right part (keys > i's key); i becomes a
// singleton.
func (b *Bst[K]) Split(i adt.Handle) (t1, t2 adt.Handle) {
	t1, t2 = b.left[i], b.right[i]
	y := i
	for x := b.parent[y]; x != 0; x = b.parent[y] {
		switch y {
		case b.left[x]:
			t2 = b.Join(t2, x, b.right[x])
		case b.right[x]:
			t1 = b.Join(b.left[x], x, t1)
		}
		y = x
	}
	b.left[i], b.right[i], b.parent[i] = 0, 0, 0
	b.parent[t1], b.parent[t2] = 0, 0
	return t1, t2
}

// String renders every non-singleton tree, one per line, as a
// parenthesized in-order dump with the root marked '*'.
func (b *Bst[K]) String() string {
	var sb strings.Builder
	for i := 1; i <= b.N(); i++ {
		if b.parent[i] == 0 && (b.left[i] != 0 || b.right[i] != 0) {
			sb.WriteString(b.treeString(adt.Handle(i)))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Bst[K]) treeString(t adt.Handle) string {
	if t == 0 {
		return ""
	}
	var sb strings.Builder
	if b.left[t] != 0 {
		sb.WriteByte('(')
		sb.WriteString(b.treeString(b.left[t]))
		sb.WriteString(") ")
	}
	sb.WriteString(adt.RenderHandle(t, b.N()))
	if b.parent[t] == 0 {
		sb.WriteByte('*')
	}
	if b.right[t] != 0 {
		sb.WriteString(" (")
		sb.WriteString(b.treeString(b.right[t]))
		sb.WriteByte(')')
	}
	return sb.String()
}

// IsConsistent audits BST key order and parent/child agreement.
func (b *Bst[K]) IsConsistent() error {
	for i := 1; i <= b.N(); i++ {
		if b.left[i] != 0 {
			if b.parent[b.left[i]] != adt.Handle(i) {
				return gferrors.Inconsistent("Bst.IsConsistent", "left child's parent mismatch", map[string]any{"handle": i})
			}
			if b.less(b.key[i], b.key[b.left[i]]) {
				return gferrors.Inconsistent("Bst.IsConsistent", "left child key too large", map[string]any{"handle": i})
			}
		}
		if b.right[i] != 0 {
			if b.parent[b.right[i]] != adt.Handle(i) {
				return gferrors.Inconsistent("Bst.IsConsistent", "right child's parent mismatch", map[string]any{"handle": i})
			}
			if b.less(b.key[b.right[i]], b.key[i]) {
				return gferrors.Inconsistent("Bst.IsConsistent", "right child key too small", map[string]any{"handle": i})
			}
		}
	}
	return nil
}
