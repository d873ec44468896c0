package list

import "github.com/jtalgo/grafalgo/internal/adt"

// Rlist implements reversible circular lists (spec.md §4.2.e), grounded
// on original_source/cpp/dataStructures/basic/RlistSet.cpp. Each node
// stores two adjacency slots p1/p2; for every node but the canonical
// element (the list's "tail"), the two slots are interchangeable and
// resolved positionally during traversal via Suc/Pred, which is what
// makes Reverse O(1): it only ever touches the canonical element and its
// current head.
type Rlist struct {
	adt.Base
	p1, p2 []adt.Handle
	canon  []bool
}

// NewRlist constructs an Rlist over 1..n with every handle a singleton
// cycle and its own canonical element.
func NewRlist(n int) *Rlist {
	r := &Rlist{Base: adt.NewBase(n)}
	r.allocate(n)
	return r
}

func (r *Rlist) allocate(n int) {
	r.p1 = make([]adt.Handle, n+1)
	r.p2 = make([]adt.Handle, n+1)
	r.canon = make([]bool, n+1)
	for x := 0; x <= n; x++ {
		r.p1[x] = adt.Handle(x)
		r.p2[x] = adt.Handle(x)
		r.canon[x] = true
	}
}

// Resize drops all contents and reallocates for capacity n.
func (r *Rlist) Resize(n int) {
	r.SetN(n)
	r.allocate(n)
}

// Clear resets every handle to its own singleton cycle.
func (r *Rlist) Clear() { r.allocate(r.N()) }

// First returns the first element of the list named by canonical element
// t.
func (r *Rlist) First(t adt.Handle) adt.Handle { return r.p1[t] }

// Last returns the last element of the list named by canonical element
// t — always t itself.
func (r *Rlist) Last(t adt.Handle) adt.Handle { return t }

// Suc returns the successor of x, given that prev is x's predecessor.
func (r *Rlist) Suc(x, prev adt.Handle) adt.Handle {
	if prev == r.p2[x] {
		return r.p1[x]
	}
	return r.p2[x]
}

// Pred returns the predecessor of x, given that next is x's successor.
func (r *Rlist) Pred(x, next adt.Handle) adt.Handle {
	if next == r.p2[x] {
		return r.p1[x]
	}
	return r.p2[x]
}

// Advance moves the (current, previous) traversal pair one step forward.
func (r *Rlist) Advance(x, y *adt.Handle) {
	xx := *x
	*x = r.Suc(*x, *y)
	*y = xx
}

// Retreat moves the (current, previous) traversal pair one step
// backward.
func (r *Rlist) Retreat(x, y *adt.Handle) {
	xx := *x
	*x = r.Pred(*x, *y)
	*y = xx
}

// Pop removes the first item from the list named by t; a singleton list
// is unaffected. Returns t, the canonical element of the modified list.
func (r *Rlist) Pop(t adt.Handle) adt.Handle {
	h := r.First(t)
	if h == t {
		return h
	}
	nuHead := r.Suc(h, t)
	if r.p2[h] == t {
		r.p1[t] = r.p1[h]
	} else {
		r.p1[t] = r.p2[h]
	}
	if r.p1[nuHead] == h {
		r.p1[nuHead] = t
	} else {
		r.p2[nuHead] = t
	}
	r.p1[h], r.p2[h] = h, h
	r.canon[h] = true
	return t
}

// Join appends the list named by t2 to the end of the list named by t1,
// returning the canonical element of the combined list.
func (r *Rlist) Join(t1, t2 adt.Handle) adt.Handle {
	if t1 == 0 {
		return t2
	}
	if t2 == 0 || t2 == t1 {
		return t1
	}
	h1, h2 := r.p1[t1], r.p1[t2]
	r.p1[t1], r.p1[t2] = h2, h1
	if t1 == r.p2[h1] {
		r.p2[h1] = t2
	} else {
		r.p1[h1] = t2
	}
	if t2 == r.p2[h2] {
		r.p2[h2] = t1
	} else {
		r.p1[h2] = t1
	}
	r.canon[t1] = false
	return t2
}

// Reverse reverses the orientation of the list named by t, in O(1),
// returning the new canonical element.
func (r *Rlist) Reverse(t adt.Handle) adt.Handle {
	h := r.First(t)
	if t == 0 || h == t {
		return t
	}
	if t == r.p2[h] {
		r.p2[h] = r.p1[h]
	}
	r.p1[h] = t
	r.canon[h] = true
	r.canon[t] = false
	return h
}
