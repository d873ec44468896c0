package hash

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
)

// HashMap associates keys of type K with values of type V, assigning
// each (key, value) pair an index usable for iteration, layered directly
// on HashSet[K] (spec.md §4.6.b), grounded on
// original_source/cpp/include/HashMap.h.
type HashMap[K comparable, V any] struct {
	*HashSet[K]
	values []V
}

// NewHashMap constructs an empty HashMap with capacity for n pairs,
// using hashit to compute 32-bit hash values for keys.
func NewHashMap[K comparable, V any](n int, hashit func(K, int) uint32) *HashMap[K, V] {
	hm := &HashMap[K, V]{HashSet: NewHashSet[K](n, hashit)}
	hm.values = make([]V, n+1)
	return hm
}

// Resize drops all contents and reallocates for capacity n.
func (hm *HashMap[K, V]) Resize(n int) {
	hm.HashSet.Resize(n)
	hm.values = make([]V, n+1)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (hm *HashMap[K, V]) Expand(n int) {
	if n <= hm.N() {
		return
	}
	oldSet, oldValues := *hm.HashSet, hm.values
	hm.Resize(n)
	for x := oldSet.First(); x != 0; x = oldSet.Next(x) {
		hm.PutAt(oldSet.Retrieve(x), oldValues[x], x)
	}
}

// Clear removes every pair from the map.
func (hm *HashMap[K, V]) Clear() {
	for x := hm.First(); x != 0; x = hm.First() {
		hm.Remove(hm.Retrieve(x))
	}
}

// GetKey returns the key of the pair at index x.
func (hm *HashMap[K, V]) GetKey(x adt.Handle) K { return hm.Retrieve(x) }

// GetValue returns the value of the pair at index x.
func (hm *HashMap[K, V]) GetValue(x adt.Handle) V { return hm.values[x] }

// Get returns the value associated with key, and whether it was present.
func (hm *HashMap[K, V]) Get(key K) (V, bool) {
	x := hm.Find(key)
	if x == 0 {
		var zero V
		return zero, false
	}
	return hm.values[x], true
}

// Put adds or updates the (key, value) pair, returning the pair's index.
// An existing key moves to a fresh index, as in HashSet.Insert. When no
// index is free the map first doubles its capacity; 0 is returned if the
// pair still cannot be placed.
func (hm *HashMap[K, V]) Put(key K, val V) adt.Handle {
	if hm.idx.FirstOut() == 0 {
		hm.Expand(2 * hm.N())
	}
	x := hm.Insert(key)
	if x != 0 {
		hm.values[x] = val
	}
	return x
}

// PutAt adds or updates the (key, value) pair under the specific index
// x, returning x, or 0 on failure. If key was already present under a
// different index, that index is freed.
func (hm *HashMap[K, V]) PutAt(key K, val V, x adt.Handle) adt.Handle {
	x = hm.InsertAt(key, x)
	if x == 0 {
		return 0
	}
	hm.values[x] = val
	return x
}

// String renders the map as "{(key,value) ...}".
func (hm *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for x, first := hm.First(), true; x != 0; x, first = hm.Next(x), false {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%v,%v)", hm.GetKey(x), hm.GetValue(x))
	}
	sb.WriteByte('}')
	return sb.String()
}
