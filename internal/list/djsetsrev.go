package list

import "github.com/jtalgo/grafalgo/internal/adt"

// DjsetsRev is a union-find partition of 1..n whose blocks are maintained
// as reversible circular lists rather than plain parent pointers, so that
// pop/join/reverse all run in O(1) (spec.md §4.2 overview: "DjsetsRev
// (reversible lists)"), grounded on
// original_source/cpp/dataStructures/basic/Djsets_rl.cpp — a second,
// union-find-flavored instance of the same p1/p2 reversible-cycle
// representation used by [[Rlist]].
type DjsetsRev struct {
	adt.Base
	p1, p2 []adt.Handle
	canon  []bool
}

// NewDjsetsRev constructs a DjsetsRev over 1..n with every handle a
// singleton list and its own canonical element.
func NewDjsetsRev(n int) *DjsetsRev {
	d := &DjsetsRev{Base: adt.NewBase(n)}
	d.allocate(n)
	return d
}

func (d *DjsetsRev) allocate(n int) {
	d.p1 = make([]adt.Handle, n+1)
	d.p2 = make([]adt.Handle, n+1)
	d.canon = make([]bool, n+1)
	for x := 0; x <= n; x++ {
		d.p1[x] = adt.Handle(x)
		d.p2[x] = adt.Handle(x)
		d.canon[x] = true
	}
}

// Resize drops all contents and reallocates for capacity n.
func (d *DjsetsRev) Resize(n int) {
	d.SetN(n)
	d.allocate(n)
}

// Clear resets every handle to its own singleton list.
func (d *DjsetsRev) Clear() { d.allocate(d.N()) }

// First returns the first element of the list named by canonical element t.
func (d *DjsetsRev) First(t adt.Handle) adt.Handle { return d.p1[t] }

// Last returns the last element of the list named by canonical element t —
// always t itself.
func (d *DjsetsRev) Last(t adt.Handle) adt.Handle { return t }

// Next returns the successor of x, given that prev is x's predecessor.
func (d *DjsetsRev) Next(x, prev adt.Handle) adt.Handle {
	if prev == d.p2[x] {
		return d.p1[x]
	}
	return d.p2[x]
}

// Prev returns the predecessor of x, given that next is x's successor.
func (d *DjsetsRev) Prev(x, next adt.Handle) adt.Handle {
	if next == d.p2[x] {
		return d.p1[x]
	}
	return d.p2[x]
}

// Advance moves the (current, previous) traversal pair one step forward.
func (d *DjsetsRev) Advance(x, y *adt.Handle) {
	xx := *x
	*x = d.Next(*x, *y)
	*y = xx
}

// Retreat moves the (current, previous) traversal pair one step backward.
func (d *DjsetsRev) Retreat(x, y *adt.Handle) {
	xx := *x
	*x = d.Prev(*x, *y)
	*y = xx
}

// Pop removes the first item from the list named by t; a singleton list is
// unaffected. Returns t, the canonical element of the modified list.
func (d *DjsetsRev) Pop(t adt.Handle) adt.Handle {
	h := d.First(t)
	if h == t {
		return h
	}
	nuHead := d.Next(h, t)
	if d.p2[h] == t {
		d.p1[t] = d.p1[h]
	} else {
		d.p1[t] = d.p2[h]
	}
	if d.p1[nuHead] == h {
		d.p1[nuHead] = t
	} else {
		d.p2[nuHead] = t
	}
	d.p1[h], d.p2[h] = h, h
	d.canon[h] = true
	return t
}

// Join appends the list named by t2 to the end of the list named by t1,
// returning the canonical element of the combined list (0 for either
// argument behaves as the identity for that side).
func (d *DjsetsRev) Join(t1, t2 adt.Handle) adt.Handle {
	if t1 == 0 {
		return t2
	}
	if t2 == 0 || t2 == t1 {
		return t1
	}
	h1, h2 := d.p1[t1], d.p1[t2]
	d.p1[t1], d.p1[t2] = h2, h1
	if t1 == d.p2[h1] {
		d.p2[h1] = t2
	} else {
		d.p1[h1] = t2
	}
	if t2 == d.p2[h2] {
		d.p2[h2] = t1
	} else {
		d.p1[h2] = t1
	}
	d.canon[t1] = false
	return t2
}

// Reverse reverses the orientation of the list named by t, in O(1),
// returning the new canonical element.
func (d *DjsetsRev) Reverse(t adt.Handle) adt.Handle {
	h := d.First(t)
	if t == 0 || h == t {
		return t
	}
	if t == d.p2[h] {
		d.p2[h] = d.p1[h]
	}
	d.p1[h] = t
	d.canon[h] = true
	d.canon[t] = false
	return h
}

// String renders every non-singleton list on its own line, as
// "[ a b c ]", matching the canonical-element-major traversal order of
// the source's toString.
func (d *DjsetsRev) String() string {
	s := ""
	for x := adt.Handle(1); int(x) <= d.N(); x++ {
		if d.canon[x] && d.First(x) != x {
			s += d.listString(x) + "\n"
		}
	}
	return s
}

func (d *DjsetsRev) listString(t adt.Handle) string {
	h := d.First(t)
	s := "[ "
	if h == t {
		s += adt.RenderHandle(h, d.N()) + " "
	} else {
		x, y := h, t
		for {
			s += adt.RenderHandle(x, d.N()) + " "
			d.Advance(&x, &y)
			if x == h {
				break
			}
		}
	}
	return s + "]"
}
