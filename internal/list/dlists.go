package list

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Dlists partitions 1..n into named linear lists. Each list's id is its
// first handle; the head's pred field is repurposed to store the tail (so
// Last is O(1)), and a node's pred genuinely points at its tail only when
// that node is a list's head — which is exactly what lets findList detect
// "have I reached the head yet?" without a separate marker (spec.md
// §4.2.d), grounded on
// original_source/cpp/dataStructures/basic/Dlists.cpp.
type Dlists struct {
	adt.Base
	succ, pred []adt.Handle
}

// NewDlists constructs a Dlists over 1..n with every handle its own
// singleton list (and its own id).
func NewDlists(n int) *Dlists {
	d := &Dlists{Base: adt.NewBase(n)}
	d.allocate(n)
	return d
}

func (d *Dlists) allocate(n int) {
	d.succ = make([]adt.Handle, n+1)
	d.pred = make([]adt.Handle, n+1)
	for i := 0; i <= n; i++ {
		d.succ[i] = 0
		d.pred[i] = adt.Handle(i)
	}
}

// Resize drops all contents and reallocates for capacity n.
func (d *Dlists) Resize(n int) {
	d.SetN(n)
	d.allocate(n)
}

// Expand reallocates for capacity n, preserving contents, iff n > N().
func (d *Dlists) Expand(n int) {
	if n <= d.N() {
		return
	}
	oldSucc, oldPred := d.succ, d.pred
	old := d.N()
	d.SetN(n)
	d.succ = make([]adt.Handle, n+1)
	d.pred = make([]adt.Handle, n+1)
	copy(d.succ, oldSucc)
	copy(d.pred, oldPred)
	for i := old + 1; i <= n; i++ {
		d.succ[i] = 0
		d.pred[i] = adt.Handle(i)
	}
}

// Clear resets every handle to its own singleton list.
func (d *Dlists) Clear() { d.allocate(d.N()) }

// First returns the first element of list id — always id itself.
func (d *Dlists) First(id adt.Handle) adt.Handle { return id }

// Last returns the last element of list id.
func (d *Dlists) Last(id adt.Handle) adt.Handle { return d.pred[id] }

// Next returns the successor of h within its list, or 0 at the tail.
func (d *Dlists) Next(h adt.Handle) adt.Handle { return d.succ[h] }

// Prev returns the predecessor of h within its list, or 0 if h is a head.
// h's pred slot holds its true predecessor unless h is a head, in which
// case it holds the list's tail (whose succ is 0) — that's the O(1) test.
func (d *Dlists) Prev(h adt.Handle) adt.Handle {
	if d.succ[d.pred[h]] == 0 {
		return 0
	}
	return d.pred[h]
}

// Singleton reports whether h is the only item on its list.
func (d *Dlists) Singleton(h adt.Handle) bool { return d.pred[h] == h }

// FindList returns the id of the list containing h, walking pred-pointers
// until reaching a node whose pred is that list's tail.
func (d *Dlists) FindList(h adt.Handle) adt.Handle {
	for {
		p := d.pred[h]
		if d.succ[p] == 0 {
			return h
		}
		h = p
	}
}

// Rename changes list i's id to j, where j must be some member of the
// list currently identified by i.
func (d *Dlists) Rename(i, j adt.Handle) error {
	if err := d.Base.CheckValid("Dlists.Rename", i); err != nil {
		return err
	}
	if err := d.Base.CheckValid("Dlists.Rename", j); err != nil {
		return err
	}
	d.succ[d.pred[i]] = i
	d.succ[d.pred[j]] = 0
	return nil
}

// Remove takes h out of the list known by id, returning the (possibly
// renamed) id of the remaining list, or 0 if removal emptied it.
func (d *Dlists) Remove(h, id adt.Handle) (adt.Handle, error) {
	if err := d.Base.CheckValid("Dlists.Remove", h); err != nil {
		return 0, err
	}
	if err := d.Base.CheckValid("Dlists.Remove", id); err != nil {
		return 0, err
	}
	if id == h {
		if d.Singleton(h) {
			id = 0
		} else {
			id = d.succ[h]
		}
	}
	d.succ[d.pred[h]] = d.succ[h]
	d.pred[d.succ[h]] = d.pred[h]
	if id != 0 && d.pred[id] == h {
		d.pred[id] = d.pred[h]
	}
	if id != 0 {
		d.succ[d.pred[id]] = 0
	}
	d.succ[h], d.pred[h] = 0, h
	return id, nil
}

// Join concatenates the lists i and j, returning the id of the combined
// list (the left id, i, unless i is 0 or equals j).
func (d *Dlists) Join(i, j adt.Handle) (adt.Handle, error) {
	if i == 0 || i == j {
		return j, nil
	}
	if j == 0 {
		return i, nil
	}
	if err := d.Base.CheckValid("Dlists.Join", i); err != nil {
		return 0, err
	}
	if err := d.Base.CheckValid("Dlists.Join", j); err != nil {
		return 0, err
	}
	pi, pj := d.pred[i], d.pred[j]
	d.succ[pi] = j
	d.pred[j] = pi
	d.pred[i] = pj
	return i, nil
}

// String renders every non-singleton list once, as "{[a b], [c d]}".
func (d *Dlists) String() string {
	var groups []string
	for i := 1; i <= d.N(); i++ {
		if d.succ[d.pred[i]] != 0 || d.Singleton(adt.Handle(i)) {
			continue
		}
		var sb strings.Builder
		sb.WriteByte('[')
		for j, h := 0, adt.Handle(i); h != 0; j, h = j+1, d.Next(h) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(adt.RenderHandle(h, d.N()))
		}
		sb.WriteByte(']')
		groups = append(groups, sb.String())
	}
	return "{" + strings.Join(groups, ", ") + "}"
}

// IsConsistent audits that every list's head/tail pred/succ chain is
// acyclic and that FindList agrees with direct traversal.
func (d *Dlists) IsConsistent() error {
	for i := 1; i <= d.N(); i++ {
		id := d.FindList(adt.Handle(i))
		if d.succ[d.pred[id]] != 0 {
			return gferrors.Inconsistent("Dlists.IsConsistent", "id has no tail", map[string]any{"id": id})
		}
		h, steps := id, 0
		for h != 0 && h != adt.Handle(i) {
			h = d.succ[h]
			steps++
			if steps > d.N() {
				return gferrors.Inconsistent("Dlists.IsConsistent", "list chain is cyclic", map[string]any{"id": id})
			}
		}
		if h == 0 {
			return gferrors.Inconsistent("Dlists.IsConsistent", "FindList disagrees with traversal", map[string]any{"handle": i, "id": id})
		}
	}
	return nil
}
