// Package glist provides Glist, a generic-value list in which every
// occurrence also carries a reusable integer index (spec.md §4.7),
// grounded on original_source/cpp/include/Glist.h.
package glist

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
	"github.com/jtalgo/grafalgo/internal/list"
)

// Glist is a sequence of values of type V, each occurrence assigned a
// fresh index from 1..n on insertion and returned to the free pool on
// removal. The list order and the free pool are both tracked by a
// ListPair; vals[i] stores the value belonging to index i.
type Glist[V comparable] struct {
	lp         *list.ListPair
	vals       []V
	autoExpand bool
}

// NewGlist constructs an empty Glist over handles 1..n.
func NewGlist[V comparable](n int) *Glist[V] {
	g := &Glist[V]{}
	g.makeSpace(n)
	return g
}

// NewGlistAutoExpand is NewGlist with auto-expand enabled.
func NewGlistAutoExpand[V comparable](n int) *Glist[V] {
	g := NewGlist[V](n)
	g.autoExpand = true
	return g
}

func (g *Glist[V]) makeSpace(n int) {
	g.lp = list.NewListPair(n)
	g.vals = make([]V, n+1)
}

// N returns the current handle capacity.
func (g *Glist[V]) N() int { return g.lp.N() }

// Resize drops all contents and reallocates for capacity n.
func (g *Glist[V]) Resize(n int) { g.makeSpace(n) }

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (g *Glist[V]) Expand(n int) {
	if n <= g.N() {
		return
	}
	g.lp.Expand(n)
	oldVals := g.vals
	g.vals = make([]V, n+1)
	copy(g.vals, oldVals)
}

// Clear removes every item from the list, leaving N unchanged.
func (g *Glist[V]) Clear() {
	for g.First() != 0 {
		g.RemoveFirst()
	}
}

// Length returns the number of items currently in the list.
func (g *Glist[V]) Length() int { return g.lp.NumIn() }

// Empty reports whether the list has no items.
func (g *Glist[V]) Empty() bool { return g.lp.NumIn() == 0 }

// Member reports whether i is a currently assigned index.
func (g *Glist[V]) Member(i adt.Handle) bool { return g.lp.IsIn(i) }

// First returns the index of the first item, or 0 if the list is empty.
func (g *Glist[V]) First() adt.Handle { return g.lp.FirstIn() }

// Last returns the index of the last item, or 0 if the list is empty.
func (g *Glist[V]) Last() adt.Handle { return g.lp.LastIn() }

// Next returns the index that follows i, or 0 if i is the last item.
func (g *Glist[V]) Next(i adt.Handle) adt.Handle { return g.lp.NextIn(i) }

// Prev returns the index that precedes i, or 0 if i is the first item.
func (g *Glist[V]) Prev(i adt.Handle) adt.Handle { return g.lp.PrevIn(i) }

// Value returns the value stored under index i.
func (g *Glist[V]) Value(i adt.Handle) V { return g.vals[i] }

// Contains reports whether some item in the list has value v.
func (g *Glist[V]) Contains(v V) bool { return g.Find(v, 0) != 0 }

// Find returns the index of the first item following start (or, if
// start is 0, the first item of the whole list) whose value equals v,
// scanning in list order, or 0 if none matches.
func (g *Glist[V]) Find(v V, start adt.Handle) adt.Handle {
	var j adt.Handle
	if start == 0 {
		j = g.First()
	} else {
		j = g.Next(start)
	}
	for ; j != 0; j = g.Next(j) {
		if g.vals[j] == v {
			return j
		}
	}
	return 0
}

// Get returns the index at the 1-based position pos; a negative pos
// counts from the end (-1 is Last()). Returns 0 if out of range.
func (g *Glist[V]) Get(pos int) adt.Handle {
	if pos == 0 || pos > g.N() || pos < -g.N() {
		return 0
	}
	var j adt.Handle
	if pos > 0 {
		j = g.First()
		for i := pos; i > 1 && j != 0; i-- {
			j = g.Next(j)
		}
	} else {
		j = g.Last()
		for i := pos; i < -1 && j != 0; i++ {
			j = g.Prev(j)
		}
	}
	return j
}

func (g *Glist[V]) maybeAutoExpand() error {
	if g.lp.FirstOut() != 0 {
		return nil
	}
	if !g.autoExpand {
		return gferrors.OutOfSpace("Glist.Insert", "no free index", map[string]any{"n": g.N()})
	}
	g.Expand(2 * g.N())
	if g.lp.FirstOut() == 0 {
		return gferrors.OutOfSpace("Glist.Insert", "no free index after expand", map[string]any{"n": g.N()})
	}
	return nil
}

// Insert adds v to the list immediately after the item at index after
// (after=0 inserts at the front), returning the fresh index assigned to
// v, or 0 if the list has no room and cannot auto-expand.
func (g *Glist[V]) Insert(v V, after adt.Handle) (adt.Handle, error) {
	if err := g.lp.Base.CheckValidOrNil("Glist.Insert", after); err != nil {
		return 0, err
	}
	if after != 0 && !g.Member(after) {
		return 0, gferrors.InvalidArgument("Glist.Insert", "'after' is not a member", map[string]any{"after": after})
	}
	if err := g.maybeAutoExpand(); err != nil {
		return 0, err
	}
	i := g.lp.FirstOut()
	if err := g.lp.Swap(i, after); err != nil {
		return 0, err
	}
	g.vals[i] = v
	return i, nil
}

// AddFirst inserts v at the front of the list.
func (g *Glist[V]) AddFirst(v V) (adt.Handle, error) { return g.Insert(v, 0) }

// AddLast inserts v at the end of the list.
func (g *Glist[V]) AddLast(v V) (adt.Handle, error) { return g.Insert(v, g.Last()) }

// Remove takes the item at index i out of the list, returning its index
// to the free pool.
func (g *Glist[V]) Remove(i adt.Handle) error {
	if err := g.lp.Base.CheckValid("Glist.Remove", i); err != nil {
		return err
	}
	if !g.Member(i) {
		return gferrors.InvalidArgument("Glist.Remove", "not a member", map[string]any{"handle": i})
	}
	return g.lp.Swap(i, 0)
}

// RemoveFirst removes the first item, if any.
func (g *Glist[V]) RemoveFirst() error {
	h := g.First()
	if h == 0 {
		return nil
	}
	return g.Remove(h)
}

// RemoveLast removes the last item, if any.
func (g *Glist[V]) RemoveLast() error {
	h := g.Last()
	if h == 0 {
		return nil
	}
	return g.Remove(h)
}

// Equal reports whether g and other hold the same sequence of values.
func (g *Glist[V]) Equal(other *Glist[V]) bool {
	x, y := g.First(), other.First()
	for x != 0 && y != 0 {
		if g.Value(x) != other.Value(y) {
			return false
		}
		x, y = g.Next(x), other.Next(y)
	}
	return x == 0 && y == 0
}

// String renders the list's values in order, "[v1 v2 ...]".
func (g *Glist[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := g.First(); i != 0; i = g.Next(i) {
		if i != g.First() {
			sb.WriteByte(' ')
		}
		sb.WriteString(renderValue(g.vals[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

func renderValue(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// IsConsistent audits that the underlying ListPair's partition invariant
// holds (spec.md §8.4); value storage has no further invariant of its
// own to check.
func (g *Glist[V]) IsConsistent() error { return g.lp.IsConsistent() }
