package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/list"
)

// MapBst associates int64 keys with values of type V, backed by a single
// rank-balanced search tree over a fixed-capacity node arena, with free
// nodes tracked by a ListPair. Supplements the search-tree family with a
// convenience map type present in the original corpus but not itself
// named by a dedicated spec.md subsection, grounded on
// original_source/cpp/dataStructures/searchTrees/Map_bst.cpp and
// Map_bst.h.
type MapBst[V any] struct {
	root   adt.Handle
	tree   *RbBst[int64]
	values []V
	nodes  *list.ListPair
}

// NewMapBst constructs an empty MapBst with capacity for n (key, value)
// pairs.
func NewMapBst[V any](n int) *MapBst[V] {
	return &MapBst[V]{
		tree:   NewRbBst[int64](n, func(a, b int64) bool { return a < b }),
		values: make([]V, n+1),
		nodes:  list.NewListPair(n),
	}
}

// Clear empties the map.
func (m *MapBst[V]) Clear() {
	for m.root != 0 {
		m.Remove(m.tree.Key(m.root))
	}
}

// Get returns the value stored for key, and whether it was present.
func (m *MapBst[V]) Get(key int64) (V, bool) {
	var zero V
	if m.root == 0 {
		return zero, false
	}
	x := m.tree.Access(key, m.root)
	if x == 0 {
		return zero, false
	}
	return m.values[x], true
}

// Put adds or updates the (key, value) pair in the map, returning false
// only if the map is at capacity and key is not already present.
func (m *MapBst[V]) Put(key int64, val V) bool {
	var x adt.Handle
	if m.root == 0 {
		x = 0
	} else {
		x = m.tree.Access(key, m.root)
	}
	if x == 0 {
		x = m.nodes.FirstOut()
		if x == 0 {
			return false
		}
		m.nodes.SwapToTail(x)
		m.tree.SetKey(x, key)
		if m.root == 0 {
			m.root = x
		} else {
			m.root = m.tree.Insert(x, m.root)
		}
	}
	m.values[x] = val
	return true
}

// Remove deletes the pair for key, if present.
func (m *MapBst[V]) Remove(key int64) {
	if m.root == 0 {
		return
	}
	x := m.tree.Access(key, m.root)
	if x == 0 {
		return
	}
	m.root = m.tree.Remove(x, m.root)
	m.nodes.SwapToTail(x)
}

// Len returns the number of (key, value) pairs currently stored.
func (m *MapBst[V]) Len() int { return m.nodes.NumIn() }

// String renders every (key, value) pair, in no particular order.
func (m *MapBst[V]) String() string {
	var sb strings.Builder
	for u := m.nodes.FirstIn(); u != 0; u = m.nodes.NextIn(u) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatInt(m.tree.Key(u), 10))
		sb.WriteByte(',')
		sb.WriteString(fmt.Sprint(m.values[u]))
		sb.WriteByte(')')
	}
	return sb.String()
}
