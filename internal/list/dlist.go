package list

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Dlist is List plus prev-pointers and O(1) removal from an arbitrary
// position (spec.md §4.2.b). prev(first)=0, next(last)=0; non-members
// hold the non-member sentinel in both arrays.
type Dlist struct {
	adt.Base
	next, prev []adt.Handle
	head, tail adt.Handle
	length     int
	autoExpand bool
}

// NewDlist constructs a Dlist over handles 1..n.
func NewDlist(n int) *Dlist {
	d := &Dlist{Base: adt.NewBase(n)}
	d.allocate(n)
	return d
}

// NewDlistAutoExpand is NewDlist with auto-expand enabled.
func NewDlistAutoExpand(n int) *Dlist {
	d := NewDlist(n)
	d.autoExpand = true
	return d
}

func (d *Dlist) allocate(n int) {
	d.next = make([]adt.Handle, n+1)
	d.prev = make([]adt.Handle, n+1)
	for i := 1; i <= n; i++ {
		d.next[i] = nonMember
		d.prev[i] = nonMember
	}
	d.head, d.tail = 0, 0
	d.length = 0
}

// Resize drops all contents and reallocates for capacity n.
func (d *Dlist) Resize(n int) {
	d.SetN(n)
	d.allocate(n)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (d *Dlist) Expand(n int) {
	if n <= d.N() {
		return
	}
	oldNext, oldPrev := d.next, d.prev
	d.SetN(n)
	d.next = make([]adt.Handle, n+1)
	d.prev = make([]adt.Handle, n+1)
	copy(d.next, oldNext)
	copy(d.prev, oldPrev)
	for i := len(oldNext); i <= n; i++ {
		d.next[i] = nonMember
		d.prev[i] = nonMember
	}
}

// Clear empties the list, leaving n unchanged.
func (d *Dlist) Clear() { d.allocate(d.N()) }

func (d *Dlist) Length() int          { return d.length }
func (d *Dlist) Empty() bool          { return d.length == 0 }
func (d *Dlist) First() adt.Handle    { return d.head }
func (d *Dlist) Last() adt.Handle     { return d.tail }
func (d *Dlist) Next(h adt.Handle) adt.Handle {
	if h == 0 {
		return d.head
	}
	if !d.Member(h) {
		return 0
	}
	return d.next[h]
}
func (d *Dlist) Prev(h adt.Handle) adt.Handle {
	if h == 0 {
		return d.tail
	}
	if !d.Member(h) {
		return 0
	}
	return d.prev[h]
}

func (d *Dlist) Member(h adt.Handle) bool {
	return d.Base.Valid(h) && d.next[h] != nonMember
}

// Get returns the 1-based pos'th element; a negative pos counts from the
// end (-1 is Last()).
func (d *Dlist) Get(pos int) adt.Handle {
	if pos == 0 {
		return 0
	}
	if pos > 0 {
		h := d.head
		for i := 1; i < pos && h != 0; i++ {
			h = d.next[h]
		}
		if pos > d.length {
			return 0
		}
		return h
	}
	h := d.tail
	for i := -1; i > pos && h != 0; i-- {
		h = d.prev[h]
	}
	if -pos > d.length {
		return 0
	}
	return h
}

func (d *Dlist) maybeAutoExpand(h adt.Handle) error {
	if int(h) <= d.N() {
		return nil
	}
	if !d.autoExpand {
		return gferrors.InvalidArgument("Dlist.Insert", "handle out of range",
			map[string]any{"handle": h, "n": d.N()})
	}
	newN := d.N() * 2
	if newN < int(h) {
		newN = int(h)
	}
	d.Expand(newN)
	return nil
}

// Insert places h immediately after "after" (after=0 inserts at front).
func (d *Dlist) Insert(h, after adt.Handle) error {
	if err := d.maybeAutoExpand(h); err != nil {
		return err
	}
	if err := d.Base.CheckValid("Dlist.Insert", h); err != nil {
		return err
	}
	if err := d.Base.CheckValidOrNil("Dlist.Insert", after); err != nil {
		return err
	}
	if d.Member(h) {
		return gferrors.InvalidArgument("Dlist.Insert", "handle already a member", map[string]any{"handle": h})
	}
	if after != 0 && !d.Member(after) {
		return gferrors.InvalidArgument("Dlist.Insert", "'after' is not a member", map[string]any{"after": after})
	}
	var succ adt.Handle
	if after == 0 {
		succ = d.head
	} else {
		succ = d.next[after]
	}
	d.next[h] = succ
	d.prev[h] = after
	if after == 0 {
		d.head = h
	} else {
		d.next[after] = h
	}
	if succ == 0 {
		d.tail = h
	} else {
		d.prev[succ] = h
	}
	d.length++
	return nil
}

func (d *Dlist) AddFirst(h adt.Handle) error { return d.Insert(h, 0) }
func (d *Dlist) AddLast(h adt.Handle) error  { return d.Insert(h, d.tail) }

// Remove detaches h from wherever it sits, in O(1).
func (d *Dlist) Remove(h adt.Handle) error {
	if err := d.Base.CheckValid("Dlist.Remove", h); err != nil {
		return err
	}
	if !d.Member(h) {
		return gferrors.InvalidArgument("Dlist.Remove", "not a member", map[string]any{"handle": h})
	}
	p, s := d.prev[h], d.next[h]
	if p == 0 {
		d.head = s
	} else {
		d.next[p] = s
	}
	if s == 0 {
		d.tail = p
	} else {
		d.prev[s] = p
	}
	d.next[h] = nonMember
	d.prev[h] = nonMember
	d.length--
	return nil
}

// RemoveFirst removes and returns the head, or 0 if empty.
func (d *Dlist) RemoveFirst() (adt.Handle, error) {
	h := d.head
	if h == 0 {
		return 0, nil
	}
	if err := d.Remove(h); err != nil {
		return 0, err
	}
	return h, nil
}

func (d *Dlist) Equal(other *Dlist) bool {
	if d.length != other.length {
		return false
	}
	a, b := d.head, other.head
	for a != 0 {
		if a != b {
			return false
		}
		a, b = d.next[a], other.next[b]
	}
	return b == 0
}

func (d *Dlist) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for h := d.head; h != 0; h = d.next[h] {
		if h != d.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(adt.RenderHandle(h, d.N()))
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsConsistent audits the prev/next inverse property of spec.md §8.3 plus
// the sentinel-count and head/tail invariants of §4.2.b.
func (d *Dlist) IsConsistent() error {
	count := 0
	for h := d.head; h != 0; h = d.next[h] {
		if d.next[h] != 0 && d.prev[d.next[h]] != h {
			return gferrors.Inconsistent("Dlist.IsConsistent", "prev/next not inverse", map[string]any{"handle": h})
		}
		count++
		if count > d.N() {
			return gferrors.Inconsistent("Dlist.IsConsistent", "traversal exceeds n", nil)
		}
	}
	if count != d.length {
		return gferrors.Inconsistent("Dlist.IsConsistent", "length mismatch", nil)
	}
	nonMembers := 0
	for i := 1; i <= d.N(); i++ {
		if d.next[i] == nonMember && d.prev[i] == nonMember {
			nonMembers++
		}
	}
	if nonMembers != d.N()-d.length {
		return gferrors.Inconsistent("Dlist.IsConsistent", "non-member count mismatch", nil)
	}
	if d.head != 0 && d.prev[d.head] != 0 {
		return gferrors.Inconsistent("Dlist.IsConsistent", "prev(first) != 0", nil)
	}
	if d.tail != 0 && d.next[d.tail] != 0 {
		return gferrors.Inconsistent("Dlist.IsConsistent", "next(last) != 0", nil)
	}
	return nil
}
