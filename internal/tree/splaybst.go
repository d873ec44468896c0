package tree

import "github.com/jtalgo/grafalgo/internal/adt"

// SplayBst augments Bst with self-adjusting splay restructuring: every
// access, insert or delete walks the accessed item to the root via a
// sequence of zig/zig-zig/zig-zag rotations, giving O(log n) amortized
// operations (spec.md §4.5.c), grounded on
// original_source/cpp/dataStructures/searchTrees/SaBstSet.cpp.
type SplayBst[K any] struct {
	*Bst[K]
}

// NewSplayBst constructs a SplayBst over 1..n with every handle a
// singleton tree.
func NewSplayBst[K any](n int, less func(a, b K) bool) *SplayBst[K] {
	return &SplayBst[K]{Bst: NewBst[K](n, less)}
}

// splaystep performs one rotation step of x's splay, a zig if x's parent
// is the root, otherwise a zig-zig or zig-zag depending on whether x and
// its parent are both left (or both right) children of the grandparent.
func (sb *SplayBst[K]) splaystep(x adt.Handle) {
	y := sb.parent[x]
	if y == 0 {
		return
	}
	z := sb.parent[y]
	if z != 0 {
		if x == sb.left[sb.left[z]] || x == sb.right[sb.right[z]] {
			sb.rotate(y)
		} else {
			sb.rotate(x)
		}
	}
	sb.rotate(x)
}

// Splay moves x to the root of its tree, returning x (the tree's new
// canonical element).
func (sb *SplayBst[K]) Splay(x adt.Handle) adt.Handle {
	for sb.parent[x] != 0 {
		sb.splaystep(x)
	}
	return x
}

// Find returns the canonical element of the tree containing i, splaying
// i to the root in the process.
func (sb *SplayBst[K]) Find(i adt.Handle) adt.Handle { return sb.Splay(i) }

// Access returns the item with key k in the tree named by t, splaying
// whatever node the search terminates at (whether or not it matches k)
// to the root, and updates t accordingly.
func (sb *SplayBst[K]) Access(k K, t *adt.Handle) adt.Handle {
	x := *t
	for {
		switch {
		case sb.less(k, sb.key[x]) && sb.left[x] != 0:
			x = sb.left[x]
		case sb.less(sb.key[x], k) && sb.right[x] != 0:
			x = sb.right[x]
		default:
			sb.Splay(x)
			*t = x
			if sb.equalKey(k, sb.key[x]) {
				return x
			}
			return 0
		}
	}
}

// Insert adds singleton i (its key already set via SetKey) to the tree
// named by t, splaying i to the root. Returns whether i's key was not
// already present.
func (sb *SplayBst[K]) Insert(i adt.Handle, t *adt.Handle) bool {
	if *t == 0 {
		*t = i
		return true
	}
	x := *t
	for {
		switch {
		case sb.less(sb.key[i], sb.key[x]) && sb.left[x] != 0:
			x = sb.left[x]
		case sb.less(sb.key[x], sb.key[i]) && sb.right[x] != 0:
			x = sb.right[x]
		default:
			switch {
			case sb.less(sb.key[i], sb.key[x]):
				sb.left[x] = i
			case sb.less(sb.key[x], sb.key[i]):
				sb.right[x] = i
			default:
				sb.Splay(x)
				*t = x
				return false
			}
			sb.parent[i] = x
			sb.Splay(i)
			*t = i
			return true
		}
	}
}

// Remove takes i out of the tree named by t, splaying i's former parent
// to the root afterward, and updates t accordingly.
func (sb *SplayBst[K]) Remove(i adt.Handle, t *adt.Handle) {
	var j adt.Handle
	if sb.left[i] != 0 && sb.right[i] != 0 {
		for j = sb.left[i]; sb.right[j] != 0; j = sb.right[j] {
		}
		sb.swap(i, j)
	}
	if sb.left[i] != 0 {
		j = sb.left[i]
	} else {
		j = sb.right[i]
	}
	if j != 0 {
		sb.parent[j] = sb.parent[i]
	}
	if sb.parent[i] != 0 {
		pi := sb.parent[i]
		if i == sb.left[pi] {
			sb.left[pi] = j
		} else if i == sb.right[pi] {
			sb.right[pi] = j
		}
		*t = sb.Splay(pi)
	} else {
		*t = j
	}
	sb.parent[i], sb.left[i], sb.right[i] = 0, 0, 0
}

// Split divides the tree containing i at i, splaying i to the root
// first; i becomes a singleton.
func (sb *SplayBst[K]) Split(i adt.Handle) (t1, t2 adt.Handle) {
	sb.Splay(i)
	t1, t2 = sb.left[i], sb.right[i]
	sb.left[i], sb.right[i], sb.parent[i] = 0, 0, 0
	sb.parent[t1], sb.parent[t2] = 0, 0
	return t1, t2
}
