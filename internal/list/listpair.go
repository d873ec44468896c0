package list

import (
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// ListPair partitions 1..n into two complementary ordered lists, "in"
// and "out". Initially every handle is in "out" in ascending order
// (spec.md §4.2.f), grounded on
// original_source/cpp/dataStructures/basic/ListPair.cpp. That source
// packs both lists into one succ/pred array using the sign bit to tell
// them apart; this port instead keeps an explicit membership flag, which
// is clearer in Go and produces identical externally observable
// behaviour.
type ListPair struct {
	adt.Base
	succ, pred       []adt.Handle
	isIn             []bool
	inHead, inTail   adt.Handle
	outHead, outTail adt.Handle
	numIn, numOut    int
}

// NewListPair constructs a ListPair over 1..n with everything in "out".
func NewListPair(n int) *ListPair {
	p := &ListPair{Base: adt.NewBase(n)}
	p.allocate(n)
	return p
}

func (p *ListPair) allocate(n int) {
	p.succ = make([]adt.Handle, n+1)
	p.pred = make([]adt.Handle, n+1)
	p.isIn = make([]bool, n+1)
	p.inHead, p.inTail = 0, 0
	if n == 0 {
		p.outHead, p.outTail = 0, 0
	} else {
		p.outHead, p.outTail = 1, adt.Handle(n)
	}
	for i := 1; i <= n; i++ {
		if i > 1 {
			p.pred[i] = adt.Handle(i - 1)
		}
		if i < n {
			p.succ[i] = adt.Handle(i + 1)
		} else {
			p.succ[i] = 0
		}
	}
	p.numIn, p.numOut = 0, n
}

// Resize drops all contents and reallocates for capacity n.
func (p *ListPair) Resize(n int) {
	p.SetN(n)
	p.allocate(n)
}

// Expand reallocates for capacity n, preserving the in-list and adding
// new handles to the end of the out-list, iff n > N().
func (p *ListPair) Expand(n int) {
	if n <= p.N() {
		return
	}
	old := p.N()
	oldSucc, oldPred, oldIsIn := p.succ, p.pred, p.isIn
	oldOutTail := p.outTail
	p.SetN(n)
	p.succ = make([]adt.Handle, n+1)
	p.pred = make([]adt.Handle, n+1)
	p.isIn = make([]bool, n+1)
	copy(p.succ, oldSucc)
	copy(p.pred, oldPred)
	copy(p.isIn, oldIsIn)
	for x := old + 1; x <= n; x++ {
		if x > old+1 {
			p.pred[x] = adt.Handle(x - 1)
		}
		if x < n {
			p.succ[x] = adt.Handle(x + 1)
		} else {
			p.succ[x] = 0
		}
	}
	if p.outHead == 0 {
		p.outHead = adt.Handle(old + 1)
	} else {
		p.succ[oldOutTail] = adt.Handle(old + 1)
		p.pred[old+1] = oldOutTail
	}
	p.outTail = adt.Handle(n)
	p.numOut += n - old
}

// Clear removes everything from the in-list, restoring the out-list.
func (p *ListPair) Clear() {
	for p.FirstIn() != 0 {
		p.Swap(p.FirstIn(), 0)
	}
}

func (p *ListPair) NumIn() int  { return p.numIn }
func (p *ListPair) NumOut() int { return p.numOut }

func (p *ListPair) IsIn(h adt.Handle) bool  { return p.Base.Valid(h) && p.isIn[h] }
func (p *ListPair) IsOut(h adt.Handle) bool { return p.Base.Valid(h) && !p.isIn[h] }

func (p *ListPair) FirstIn() adt.Handle  { return p.inHead }
func (p *ListPair) LastIn() adt.Handle   { return p.inTail }
func (p *ListPair) FirstOut() adt.Handle { return p.outHead }
func (p *ListPair) LastOut() adt.Handle  { return p.outTail }

func (p *ListPair) NextIn(h adt.Handle) adt.Handle {
	if h == 0 || !p.isIn[h] {
		return 0
	}
	return p.succ[h]
}
func (p *ListPair) PrevIn(h adt.Handle) adt.Handle {
	if h == 0 || !p.isIn[h] {
		return 0
	}
	return p.pred[h]
}
func (p *ListPair) NextOut(h adt.Handle) adt.Handle {
	if h == 0 || p.isIn[h] {
		return 0
	}
	return p.succ[h]
}
func (p *ListPair) PrevOut(h adt.Handle) adt.Handle {
	if h == 0 || p.isIn[h] {
		return 0
	}
	return p.pred[h]
}

// Swap moves h to the other list, inserting it immediately after
// "after" in its new list (after=0 inserts at the head). after must
// already be a member of the destination list, or 0.
func (p *ListPair) Swap(h, after adt.Handle) error {
	if err := p.Base.CheckValid("ListPair.Swap", h); err != nil {
		return err
	}
	if err := p.Base.CheckValidOrNil("ListPair.Swap", after); err != nil {
		return err
	}
	movingIn := p.isIn[h]
	if after != 0 && p.isIn[after] == movingIn {
		return gferrors.InvalidArgument("ListPair.Swap", "'after' must be in the destination list",
			map[string]any{"handle": h, "after": after})
	}
	if movingIn {
		p.unlink(h, &p.inHead, &p.inTail)
		p.numIn--
		p.linkAfter(h, after, &p.outHead, &p.outTail, p.numOut)
		p.numOut++
	} else {
		p.unlink(h, &p.outHead, &p.outTail)
		p.numOut--
		p.linkAfter(h, after, &p.inHead, &p.inTail, p.numIn)
		p.numIn++
	}
	p.isIn[h] = !movingIn
	return nil
}

// SwapToTail moves h to the other list, inserting at the tail.
func (p *ListPair) SwapToTail(h adt.Handle) error {
	if !p.Base.Valid(h) {
		return p.Base.CheckValid("ListPair.SwapToTail", h)
	}
	var tail adt.Handle
	if p.isIn[h] {
		tail = p.outTail
	} else {
		tail = p.inTail
	}
	return p.Swap(h, tail)
}

func (p *ListPair) unlink(h adt.Handle, head, tail *adt.Handle) {
	if h == *tail {
		*tail = p.pred[h]
	} else {
		p.pred[p.succ[h]] = p.pred[h]
	}
	if h == *head {
		*head = p.succ[h]
	} else {
		p.succ[p.pred[h]] = p.succ[h]
	}
}

func (p *ListPair) linkAfter(h, after adt.Handle, head, tail *adt.Handle, destLen int) {
	switch {
	case destLen == 0:
		p.succ[h], p.pred[h] = 0, 0
		*head, *tail = h, h
	case after == 0:
		p.succ[h] = *head
		p.pred[h] = 0
		p.pred[*head] = h
		*head = h
	case after == *tail:
		p.succ[after] = h
		p.pred[h] = after
		p.succ[h] = 0
		*tail = h
	default:
		p.succ[h] = p.succ[after]
		p.pred[h] = after
		p.pred[p.succ[after]] = h
		p.succ[after] = h
	}
}

// Equal reports whether the in-lists of p and other are identical
// (the out-lists may differ).
func (p *ListPair) Equal(other *ListPair) bool {
	if p.FirstIn() != other.FirstIn() {
		return false
	}
	for x := p.FirstIn(); x != 0; x = p.NextIn(x) {
		if p.NextIn(x) != other.NextIn(x) {
			return false
		}
	}
	return true
}

// String renders "{inList} {outList}" per spec.md §6.1.
func (p *ListPair) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for x := p.FirstIn(); x != 0; x = p.NextIn(x) {
		sb.WriteString(adt.RenderHandle(x, p.N()))
		if x != p.LastIn() {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("} {")
	for x := p.FirstOut(); x != 0; x = p.NextOut(x) {
		sb.WriteString(adt.RenderHandle(x, p.N()))
		if x != p.LastOut() {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// IsConsistent audits the partition invariant of spec.md §8.4.
func (p *ListPair) IsConsistent() error {
	if p.numIn+p.numOut != p.N() {
		return gferrors.Inconsistent("ListPair.IsConsistent", "numIn+numOut != n",
			map[string]any{"numIn": p.numIn, "numOut": p.numOut, "n": p.N()})
	}
	count := 0
	for x := p.FirstIn(); x != 0; x = p.NextIn(x) {
		if !p.isIn[x] {
			return gferrors.Inconsistent("ListPair.IsConsistent", "in-list member not marked in", map[string]any{"handle": x})
		}
		count++
	}
	if count != p.numIn {
		return gferrors.Inconsistent("ListPair.IsConsistent", "in-list traversal count mismatch", nil)
	}
	return nil
}
