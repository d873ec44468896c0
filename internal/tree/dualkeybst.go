package tree

import "github.com/jtalgo/grafalgo/internal/adt"

// Key2 constrains the differentially-encoded second key of a DualKeyBst.
type Key2 interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func min2[K Key2](a, b K) K {
	if a < b {
		return a
	}
	return b
}

// DualKeyBst is a collection of splay trees whose nodes carry two keys: a
// primary key that orders the tree (as in Bst/SplayBst), and a secondary
// key maintained via a dmin/dkey differential encoding at every node so
// that the minimum key2 value of a whole tree, and range shifts of every
// key2 value in a tree, are both O(1) (spec.md §4.5.d), grounded on
// original_source/java/cpp/dataStructures/searchTrees/DualKeyBsts.cpp and
// original_source/cpp/include/DualKeyBsts.h. This reimplements its own
// splay/splaystep/rotate trio (rather than embedding SplayBst) because the
// original overrides rotate virtually to maintain dmin/dkey on every
// restructuring step, a hook Go's embedding cannot express through a
// shared SplayBst.
type DualKeyBst[K1 any, K2 Key2] struct {
	*Bst[K1]
	dmin, dkey []K2
}

// NewDualKeyBst constructs a DualKeyBst over 1..n with every handle a
// singleton tree and every key2-related field zeroed.
func NewDualKeyBst[K1 any, K2 Key2](n int, less func(a, b K1) bool) *DualKeyBst[K1, K2] {
	db := &DualKeyBst[K1, K2]{Bst: NewBst[K1](n, less)}
	db.allocate(n)
	return db
}

func (db *DualKeyBst[K1, K2]) allocate(n int) {
	db.dmin = make([]K2, n+1)
	db.dkey = make([]K2, n+1)
}

// Resize drops all contents and reallocates for capacity n.
func (db *DualKeyBst[K1, K2]) Resize(n int) {
	db.Bst.Resize(n)
	db.allocate(n)
}

// Clear resets every handle to its own singleton tree, zeroing key2
// fields.
func (db *DualKeyBst[K1, K2]) Clear() {
	db.Bst.Clear()
	db.allocate(db.N())
}

// SetKeys assigns i's primary and secondary key. i must currently be a
// singleton.
func (db *DualKeyBst[K1, K2]) SetKeys(i adt.Handle, k1 K1, k2 K2) {
	db.key[i] = k1
	db.dmin[i] = k2
	db.dkey[i] = 0
}

// Key1 returns i's primary key.
func (db *DualKeyBst[K1, K2]) Key1(i adt.Handle) K1 { return db.key[i] }

// Key2 returns i's secondary key, splaying i to the root in the process.
func (db *DualKeyBst[K1, K2]) Key2(i adt.Handle) K2 {
	db.splay(i)
	return db.dmin[i] + db.dkey[i]
}

// Min2 returns the smallest key2 value anywhere in the tree named by t,
// in O(1).
func (db *DualKeyBst[K1, K2]) Min2(t adt.Handle) K2 { return db.dmin[t] }

// Change2 adds diff to the key2 value of every item in the tree named by
// t, in O(1).
func (db *DualKeyBst[K1, K2]) Change2(t adt.Handle, diff K2) { db.dmin[t] += diff }

// First returns the item with the smallest key1 value in the tree named
// by t, without restructuring.
func (db *DualKeyBst[K1, K2]) First(t adt.Handle) adt.Handle {
	for db.left[t] != 0 {
		t = db.left[t]
	}
	return t
}

// Next returns the item with the next larger key1 value after i, without
// restructuring.
func (db *DualKeyBst[K1, K2]) Next(i adt.Handle) adt.Handle {
	if db.right[i] != 0 {
		for i = db.right[i]; db.left[i] != 0; i = db.left[i] {
		}
		return i
	}
	c := i
	i = db.parent[i]
	for i != 0 && db.right[i] == c {
		c = i
		i = db.parent[i]
	}
	return i
}

// rotate moves x up into its parent y's place, maintaining the dmin/dkey
// differential invariant of every node touched.
func (db *DualKeyBst[K1, K2]) rotate(x adt.Handle) {
	y := db.parent[x]
	if y == 0 {
		return
	}
	var a, b, c adt.Handle
	if x == db.left[y] {
		a, b, c = db.left[x], db.right[x], db.right[y]
	} else {
		a, b, c = db.right[x], db.left[x], db.left[y]
	}
	db.Bst.rotate(x)

	db.dmin[a] += db.dmin[x]
	db.dmin[b] += db.dmin[x]

	db.dkey[x] = db.dkey[x] + db.dmin[x]
	dmx := db.dmin[x]
	db.dmin[x] = db.dmin[y]

	db.dmin[y] = db.dkey[y]
	if b != 0 {
		db.dmin[y] = min2(db.dmin[y], db.dmin[b]+dmx)
	}
	if c != 0 {
		db.dmin[y] = min2(db.dmin[y], db.dmin[c])
	}
	db.dkey[y] = db.dkey[y] - db.dmin[y]

	db.dmin[b] -= db.dmin[y]
	db.dmin[c] -= db.dmin[y]
}

func (db *DualKeyBst[K1, K2]) splaystep(x adt.Handle) {
	y := db.parent[x]
	if y == 0 {
		return
	}
	z := db.parent[y]
	if z != 0 {
		if x == db.left[db.left[z]] || x == db.right[db.right[z]] {
			db.rotate(y)
		} else {
			db.rotate(x)
		}
	}
	db.rotate(x)
}

func (db *DualKeyBst[K1, K2]) splay(x adt.Handle) adt.Handle {
	for db.parent[x] != 0 {
		db.splaystep(x)
	}
	return x
}

// Find returns the canonical element of the tree containing i, splaying
// i to the root.
func (db *DualKeyBst[K1, K2]) Find(i adt.Handle) adt.Handle { return db.splay(i) }

// Access returns the item with the largest primary key not exceeding k in
// the tree named by t (the item with key k itself, when present), or 0 if
// every key in the tree exceeds k, splaying the search's final node to
// the root.
func (db *DualKeyBst[K1, K2]) Access(k K1, t adt.Handle) adt.Handle {
	s := t
	var v adt.Handle
	for {
		if db.less(k, db.key[s]) {
			if db.left[s] == 0 {
				break
			}
			s = db.left[s]
		} else {
			v = s
			if db.right[s] == 0 {
				break
			}
			s = db.right[s]
		}
	}
	db.splay(s)
	if db.equalKey(db.key[s], k) {
		return s
	}
	return v
}

// Insert adds singleton i (its keys already set via SetKeys) to the tree
// named by t, splaying i to the root and returning i as the new root.
func (db *DualKeyBst[K1, K2]) Insert(i, t adt.Handle) adt.Handle {
	x := t
	key2i := db.dmin[i]
	for {
		if db.less(db.key[i], db.key[x]) && db.left[x] != 0 {
			x = db.left[x]
		} else if db.less(db.key[x], db.key[i]) && db.right[x] != 0 {
			x = db.right[x]
		} else {
			break
		}
	}
	switch {
	case db.less(db.key[i], db.key[x]):
		db.left[x] = i
	case db.less(db.key[x], db.key[i]):
		db.right[x] = i
	}
	db.parent[i] = x
	db.splay(i)
	l, r := db.left[i], db.right[i]
	dmi := key2i
	if l != 0 && db.dmin[l]+db.dmin[i] < dmi {
		dmi = db.dmin[l] + db.dmin[i]
	}
	if r != 0 && db.dmin[r]+db.dmin[i] < dmi {
		dmi = db.dmin[r] + db.dmin[i]
	}
	if l != 0 {
		db.dmin[l] += db.dmin[i] - dmi
	}
	if r != 0 {
		db.dmin[r] += db.dmin[i] - dmi
	}
	db.dmin[i] = dmi
	db.dkey[i] = key2i - dmi
	return i
}

// Remove takes i out of the tree named by t, returning the canonical
// element of the resulting tree.
func (db *DualKeyBst[K1, K2]) Remove(i, t adt.Handle) adt.Handle {
	x := t
	var key2i K2
	for x != i {
		key2i += db.dmin[x]
		if db.less(db.key[i], db.key[x]) {
			x = db.left[x]
		} else {
			x = db.right[x]
		}
	}
	key2i += db.dmin[i] + db.dkey[i]

	var j adt.Handle
	if db.left[i] == 0 || db.right[i] == 0 {
		if db.left[i] == 0 {
			j = db.right[i]
		} else {
			j = db.left[i]
		}
		if j != 0 {
			db.dmin[j] += db.dmin[i]
			db.parent[j] = db.parent[i]
		}
		if db.parent[i] != 0 {
			if i == db.left[db.parent[i]] {
				db.left[db.parent[i]] = j
			} else if i == db.right[db.parent[i]] {
				db.right[db.parent[i]] = j
			}
		}
	} else {
		for j = db.left[i]; db.right[j] != 0; j = db.right[j] {
		}
		pi := db.parent[i]
		for db.parent[j] != i && db.parent[j] != pi {
			db.splaystep(j)
		}
		if db.parent[j] == i {
			db.rotate(j)
		}
		db.right[j] = db.right[i]
		db.parent[db.right[j]] = j
		db.dmin[db.right[j]] += db.dmin[i]
	}
	db.parent[i], db.left[i], db.right[i] = 0, 0, 0
	db.dmin[i], db.dkey[i] = key2i, 0
	return db.splay(j)
}

// Join combines t1, singleton i, and t2 into one tree, where every key1
// in t1 is less than i's and every key1 in t2 is greater. Returns the new
// root, i.
func (db *DualKeyBst[K1, K2]) Join(t1, i, t2 adt.Handle) adt.Handle {
	db.Bst.Join(t1, i, t2)
	key2i := db.dmin[i] + db.dkey[i]
	if t1 != 0 {
		db.dmin[i] = min2(db.dmin[i], db.dmin[t1])
	}
	if t2 != 0 {
		db.dmin[i] = min2(db.dmin[i], db.dmin[t2])
	}
	db.dkey[i] = key2i - db.dmin[i]
	if t1 != 0 {
		db.dmin[t1] -= db.dmin[i]
	}
	if t2 != 0 {
		db.dmin[t2] -= db.dmin[i]
	}
	return i
}

// Split divides the tree containing i at i, splaying i to the root
// first; i becomes a singleton.
func (db *DualKeyBst[K1, K2]) Split(i adt.Handle) (t1, t2 adt.Handle) {
	db.splay(i)
	t1, t2 = db.left[i], db.right[i]
	db.left[i], db.right[i], db.parent[i] = 0, 0, 0
	if t1 != 0 {
		db.dmin[t1] += db.dmin[i]
		db.parent[t1] = 0
	}
	if t2 != 0 {
		db.dmin[t2] += db.dmin[i]
		db.parent[t2] = 0
	}
	db.dmin[i] += db.dkey[i]
	db.dkey[i] = 0
	return t1, t2
}
