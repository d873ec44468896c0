package list

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Clist partitions 1..n into circular doubly-linked lists. Initially
// every handle is its own singleton cycle; no list identity is stored,
// any handle on a cycle names that cycle (spec.md §4.2.c).
type Clist struct {
	adt.Base
	next, prev []adt.Handle
}

// NewClist constructs a Clist over 1..n with every handle a singleton
// cycle.
func NewClist(n int) *Clist {
	c := &Clist{Base: adt.NewBase(n)}
	c.allocate(n)
	return c
}

func (c *Clist) allocate(n int) {
	c.next = make([]adt.Handle, n+1)
	c.prev = make([]adt.Handle, n+1)
	for i := 1; i <= n; i++ {
		c.next[i] = adt.Handle(i)
		c.prev[i] = adt.Handle(i)
	}
}

// Resize drops all contents and reallocates for capacity n.
func (c *Clist) Resize(n int) {
	c.SetN(n)
	c.allocate(n)
}

// Expand reallocates for capacity n, preserving contents (new handles
// start as singleton cycles), iff n > N().
func (c *Clist) Expand(n int) {
	if n <= c.N() {
		return
	}
	oldNext, oldPrev := c.next, c.prev
	old := c.N()
	c.SetN(n)
	c.next = make([]adt.Handle, n+1)
	c.prev = make([]adt.Handle, n+1)
	copy(c.next, oldNext)
	copy(c.prev, oldPrev)
	for i := old + 1; i <= n; i++ {
		c.next[i] = adt.Handle(i)
		c.prev[i] = adt.Handle(i)
	}
}

// Clear resets every handle to its own singleton cycle.
func (c *Clist) Clear() { c.allocate(c.N()) }

// Next returns the successor of h on its cycle.
func (c *Clist) Next(h adt.Handle) adt.Handle { return c.next[h] }

// Prev returns the predecessor of h on its cycle.
func (c *Clist) Prev(h adt.Handle) adt.Handle { return c.prev[h] }

// Remove detaches h into its own singleton cycle.
func (c *Clist) Remove(h adt.Handle) error {
	if err := c.Base.CheckValid("Clist.Remove", h); err != nil {
		return err
	}
	if c.next[h] == h {
		return nil
	}
	p, s := c.prev[h], c.next[h]
	c.next[p] = s
	c.prev[s] = p
	c.next[h] = h
	c.prev[h] = h
	return nil
}

// Join splices the cycle containing a with the cycle containing b, at
// positions immediately after a and before b. The caller must guarantee
// a and b are currently on distinct cycles (spec.md §3.3, §9 Open
// Questions); Join silently returns if either argument is 0.
func (c *Clist) Join(a, b adt.Handle) error {
	if a == 0 || b == 0 {
		return nil
	}
	if err := c.Base.CheckValid("Clist.Join", a); err != nil {
		return err
	}
	if err := c.Base.CheckValid("Clist.Join", b); err != nil {
		return err
	}
	aNext, bPrev := c.next[a], c.prev[b]
	c.next[a] = b
	c.prev[b] = a
	c.next[bPrev] = aNext
	c.prev[aNext] = bPrev
	return nil
}

// String prints every non-singleton cycle once, bracketed, comma
// separated, members space separated — "{[a b], [c d]}" (spec.md §6.1).
func (c *Clist) String() string {
	printed := make([]bool, c.N()+1)
	var groups []string
	for i := 1; i <= c.N(); i++ {
		if printed[i] || c.next[i] == adt.Handle(i) {
			continue
		}
		var members []adt.Handle
		h := adt.Handle(i)
		for {
			printed[h] = true
			members = append(members, h)
			h = c.next[h]
			if h == adt.Handle(i) {
				break
			}
		}
		var sb strings.Builder
		sb.WriteByte('[')
		for j, m := range members {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(adt.RenderHandle(m, c.N()))
		}
		sb.WriteByte(']')
		groups = append(groups, sb.String())
	}
	return "{" + strings.Join(groups, ", ") + "}"
}

// IsConsistent audits that next/prev are mutual inverses on every cycle.
func (c *Clist) IsConsistent() error {
	for i := 1; i <= c.N(); i++ {
		if c.prev[c.next[i]] != adt.Handle(i) {
			return gferrors.Inconsistent("Clist.IsConsistent", "next/prev not inverse", map[string]any{"handle": i})
		}
	}
	return nil
}
