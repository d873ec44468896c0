// Package list implements the linked-index collections of spec.md §4.2:
// List, Dlist, Clist, Dlists, Rlist, ListPair and the union-find
// families DjSets/DjsetsRev, all sharing the handle-space discipline of
// internal/adt.
package list

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

const nonMember adt.Handle = -1

// List is a totally ordered singly-linked sequence over 1..n; each
// handle appears at most once (spec.md §3.3).
//
// next[0] chains to the first element (or 0 when empty) and the last
// element's successor is 0 — a dummy head at index 0 lets first()/
// next() be one uniform array lookup with no special case.
type List struct {
	adt.Base
	next       []adt.Handle
	tail       adt.Handle
	length     int
	autoExpand bool
}

// NewList constructs a List over handles 1..n.
func NewList(n int) *List {
	l := &List{Base: adt.NewBase(n)}
	l.allocate(n)
	return l
}

// NewListAutoExpand is NewList with auto-expand enabled: Insert with a
// handle beyond the current capacity doubles capacity first.
func NewListAutoExpand(n int) *List {
	l := NewList(n)
	l.autoExpand = true
	return l
}

func (l *List) allocate(n int) {
	l.next = make([]adt.Handle, n+1)
	for i := 1; i <= n; i++ {
		l.next[i] = nonMember
	}
	l.next[0] = 0
	l.tail = 0
	l.length = 0
}

// Resize drops all contents and reallocates for capacity n.
func (l *List) Resize(n int) {
	l.SetN(n)
	l.allocate(n)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (l *List) Expand(n int) {
	if n <= l.N() {
		return
	}
	old := l.next
	l.SetN(n)
	l.next = make([]adt.Handle, n+1)
	copy(l.next, old)
	for i := len(old); i <= n; i++ {
		l.next[i] = nonMember
	}
}

// Clear empties the list, leaving n unchanged.
func (l *List) Clear() { l.allocate(l.N()) }

// Length reports the number of members.
func (l *List) Length() int { return l.length }

// Empty reports whether the list has no members.
func (l *List) Empty() bool { return l.length == 0 }

// First returns the head handle, or 0 if empty.
func (l *List) First() adt.Handle { return l.next[0] }

// Last returns the tail handle, or 0 if empty.
func (l *List) Last() adt.Handle { return l.tail }

// Next returns the successor of h in traversal order; Next(0) is First();
// Next(Last()) is 0.
func (l *List) Next(h adt.Handle) adt.Handle {
	if !l.Base.ValidOrNil(h) {
		return 0
	}
	return l.next[h]
}

// Member reports whether h is currently in the list.
func (l *List) Member(h adt.Handle) bool {
	return l.Base.Valid(h) && l.next[h] != nonMember
}

// Get returns the 1-based pos'th element, or 0 if out of range.
func (l *List) Get(pos int) adt.Handle {
	if pos < 1 {
		return 0
	}
	h := l.First()
	for i := 1; i < pos && h != 0; i++ {
		h = l.Next(h)
	}
	if pos > l.length {
		return 0
	}
	return h
}

func (l *List) maybeAutoExpand(h adt.Handle) error {
	if int(h) <= l.N() {
		return nil
	}
	if !l.autoExpand {
		return gferrors.InvalidArgument("List.Insert", "handle out of range",
			map[string]any{"handle": h, "n": l.N()})
	}
	newN := l.N() * 2
	if newN < int(h) {
		newN = int(h)
	}
	l.Expand(newN)
	return nil
}

// Insert places h immediately after "after" (after=0 inserts at the
// front). Auto-expand, if enabled, doubles capacity first when h exceeds
// the current n.
func (l *List) Insert(h, after adt.Handle) error {
	if err := l.maybeAutoExpand(h); err != nil {
		return err
	}
	if err := l.Base.CheckValid("List.Insert", h); err != nil {
		return err
	}
	if err := l.Base.CheckValidOrNil("List.Insert", after); err != nil {
		return err
	}
	if l.Member(h) {
		return gferrors.InvalidArgument("List.Insert", "handle already a member", map[string]any{"handle": h})
	}
	if after != 0 && !l.Member(after) {
		return gferrors.InvalidArgument("List.Insert", "'after' is not a member", map[string]any{"after": after})
	}
	l.next[h] = l.next[after]
	l.next[after] = h
	if after == l.tail {
		l.tail = h
	}
	l.length++
	return nil
}

// AddFirst inserts h at the front.
func (l *List) AddFirst(h adt.Handle) error { return l.Insert(h, 0) }

// AddLast inserts h at the back.
func (l *List) AddLast(h adt.Handle) error { return l.Insert(h, l.tail) }

// RemoveNext removes and returns the successor of h (h=0 pops the front),
// or 0 if there is no such successor.
func (l *List) RemoveNext(h adt.Handle) (adt.Handle, error) {
	if err := l.Base.CheckValidOrNil("List.RemoveNext", h); err != nil {
		return 0, err
	}
	if h != 0 && !l.Member(h) {
		return 0, gferrors.InvalidArgument("List.RemoveNext", "not a member", map[string]any{"handle": h})
	}
	target := l.next[h]
	if target == 0 {
		return 0, nil
	}
	l.next[h] = l.next[target]
	if target == l.tail {
		l.tail = h
	}
	l.next[target] = nonMember
	l.length--
	return target, nil
}

// RemoveFirst removes and returns the head, or 0 if empty.
func (l *List) RemoveFirst() (adt.Handle, error) { return l.RemoveNext(0) }

// Equal reports whether l and other contain the same handles in the same
// order.
func (l *List) Equal(other *List) bool {
	if l.length != other.length {
		return false
	}
	a, b := l.First(), other.First()
	for a != 0 {
		if a != b {
			return false
		}
		a, b = l.Next(a), other.Next(b)
	}
	return b == 0
}

// String renders the list as "[h1 h2 ... hk]" per spec.md §6.1.
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for h := l.First(); h != 0; h = l.Next(h) {
		if h != l.First() {
			sb.WriteByte(' ')
		}
		sb.WriteString(adt.RenderHandle(h, l.N()))
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsConsistent audits the invariants of spec.md §4.2.a: traversal length
// matches Length(), exactly n-length slots carry the non-member sentinel,
// the tail's successor is 0, and head/tail are both zero or both nonzero.
func (l *List) IsConsistent() error {
	count := 0
	seen := make(map[adt.Handle]bool)
	for h := l.First(); h != 0; h = l.Next(h) {
		if seen[h] {
			return gferrors.Inconsistent("List.IsConsistent", "cycle detected", map[string]any{"handle": h})
		}
		seen[h] = true
		count++
		if count > l.N() {
			return gferrors.Inconsistent("List.IsConsistent", "traversal exceeds n", nil)
		}
	}
	if count != l.length {
		return gferrors.Inconsistent("List.IsConsistent", "length mismatch", map[string]any{"traversed": count, "length": l.length})
	}
	nonMembers := 0
	for i := 1; i <= l.N(); i++ {
		if l.next[i] == nonMember {
			nonMembers++
		}
	}
	if nonMembers != l.N()-l.length {
		return gferrors.Inconsistent("List.IsConsistent", "non-member count mismatch", nil)
	}
	if l.tail != 0 && l.next[l.tail] != 0 {
		return gferrors.Inconsistent("List.IsConsistent", "tail successor is not 0", nil)
	}
	if (l.First() == 0) != (l.tail == 0) {
		return gferrors.Inconsistent("List.IsConsistent", "head/tail zero-ness mismatch", nil)
	}
	return nil
}
