package tree

import (
	"strconv"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
)

// Staircase is a step function over x in [0, +inf), represented as a
// sparse set of breakpoints in a DualKeyBst (key1 = x coordinate, key2 =
// y value from that x onward), supporting O(log n) point lookup,
// range-minimum query, and range-add update. Supplements the search-tree
// family with a feature present in the original corpus but not named by
// a dedicated spec.md subsection, grounded on
// original_source/cpp/dataStructures/searchTrees/StaircaseFunc.cpp (and
// its header, StaircaseFunc.h).
type Staircase struct {
	points *DualKeyBst[int, int]
	free   []adt.Handle
	root   adt.Handle
}

// NewStaircase constructs a Staircase over x in [0, n] with y == 0
// everywhere, reserving 2n+1 breakpoint slots.
func NewStaircase(n int) *Staircase {
	cap := 2*n + 1
	s := &Staircase{
		points: NewDualKeyBst[int, int](cap, func(a, b int) bool { return a < b }),
		root:   1,
	}
	s.points.SetKeys(1, 0, 0)
	for i := 2; i <= cap; i++ {
		s.free = append(s.free, adt.Handle(i))
	}
	return s
}

func (s *Staircase) takeFree() adt.Handle {
	h := s.free[0]
	s.free = s.free[1:]
	return h
}

func (s *Staircase) putFree(h adt.Handle) { s.free = append(s.free, h) }

// Value returns the function's y value at x.
func (s *Staircase) Value(x int) int {
	v := s.points.Access(x, s.points.Find(s.root))
	s.root = v
	return s.points.Key2(v)
}

// FindMin returns the smallest y value the function takes on over
// [lo, hi].
func (s *Staircase) FindMin(lo, hi int) int {
	lowNode := s.points.Access(lo, s.points.Find(s.root))
	t1, t2 := s.points.Split(lowNode)
	min := s.points.Key2(lowNode)

	var hiNode adt.Handle
	if t2 != 0 {
		hiNode = s.points.Access(hi, s.points.Find(t2))
	}
	var u1, u2 adt.Handle
	if hiNode != 0 {
		u1, u2 = s.points.Split(hiNode)
		if s.points.Key2(hiNode) < min {
			min = s.points.Key2(hiNode)
		}
	} else {
		u1 = t2
	}
	if u1 != 0 && s.points.Min2(u1) < min {
		min = s.points.Min2(u1)
	}

	hiPortion := u1
	if hiNode != 0 {
		hiPortion = s.points.Join(u1, hiNode, u2)
	}
	s.root = s.points.Join(t1, lowNode, hiPortion)
	return min
}

// Change adds diff to every y value of the function over [lo, hi].
func (s *Staircase) Change(lo, hi, diff int) {
	lowNode := s.points.Access(lo, s.points.Find(s.root))
	t1, t2 := s.points.Split(lowNode)

	var hiNode adt.Handle
	var u1, u2 adt.Handle
	if t2 != 0 {
		hiNode = s.points.Access(hi, s.points.Find(t2))
		u1, u2 = s.points.Split(hiNode)
	}

	if lo == s.points.Key1(lowNode) {
		s.points.Change2(s.points.Find(lowNode), diff)
	} else {
		insertLo := s.takeFree()
		s.points.SetKeys(insertLo, lo, diff+s.points.Key2(lowNode))
		if t2 == 0 {
			s.root = s.points.Insert(insertLo, s.points.Find(lowNode))
		} else {
			t2 = s.points.Insert(insertLo, s.points.Find(t2))
		}
	}

	if hiNode != 0 && hi == s.points.Key1(hiNode) {
		s.points.Change2(s.points.Find(hiNode), diff)
	} else {
		insertHi := s.takeFree()
		if hiNode != 0 && hi > s.points.Key1(hiNode) {
			s.points.SetKeys(insertHi, hi+1, 0)
		} else if hiNode != 0 {
			s.points.SetKeys(insertHi, hi+1, diff+s.points.Key2(hiNode))
		} else {
			s.points.SetKeys(insertHi, hi+1, 0)
		}
		switch {
		case u1 != 0:
			u1 = s.points.Insert(insertHi, s.points.Find(u1))
		case hiNode != 0:
			hiNode = s.points.Insert(insertHi, s.points.Find(hiNode))
		default:
			t2 = s.points.Insert(insertHi, s.points.Find(lowNode))
		}
	}

	if u1 != 0 {
		s.points.Change2(s.points.Find(u1), diff)
	}

	var hiPortion adt.Handle
	if hiNode != 0 {
		hiPortion = s.points.Join(u1, hiNode, u2)
	} else {
		hiPortion = t2
	}
	s.root = s.points.Join(t1, lowNode, hiPortion)
}

// String renders the breakpoints of the function in x order, "(x,y) ...".
func (s *Staircase) String() string {
	var sb strings.Builder
	for i := adt.Handle(1); i != 0; i = s.points.Next(i) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(s.points.Key1(i)))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(s.points.Key2(i)))
		sb.WriteByte(')')
	}
	return sb.String()
}
