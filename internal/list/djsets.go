package list

import (
	"fmt"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// DjSets is a union-find forest over 1..n with path compression and
// union-by-rank (spec.md §4.2.g), grounded on
// original_source/cpp/dataStructures/basic/Dsets.cpp.
type DjSets struct {
	adt.Base
	parent []adt.Handle
	rank   []int
}

// NewDjSets constructs a DjSets over 1..n with every handle its own
// singleton set.
func NewDjSets(n int) *DjSets {
	d := &DjSets{Base: adt.NewBase(n)}
	d.allocate(n)
	return d
}

func (d *DjSets) allocate(n int) {
	d.parent = make([]adt.Handle, n+1)
	d.rank = make([]int, n+1)
	for x := 0; x <= n; x++ {
		d.parent[x] = adt.Handle(x)
		d.rank[x] = 0
	}
}

// Resize drops all contents and reallocates for capacity n.
func (d *DjSets) Resize(n int) {
	d.SetN(n)
	d.allocate(n)
}

// Clear resets every handle to its own singleton set.
func (d *DjSets) Clear() { d.allocate(d.N()) }

// Find returns the canonical element of x's set, compressing the path
// to the root in a second pass.
func (d *DjSets) Find(x adt.Handle) adt.Handle {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		px := d.parent[x]
		d.parent[x] = root
		x = px
	}
	return root
}

// FindRoot returns x's canonical element without path compression.
func (d *DjSets) FindRoot(x adt.Handle) adt.Handle {
	for d.parent[x] != x {
		x = d.parent[x]
	}
	return x
}

// Link merges the sets named by canonical elements x and y (both must be
// canonical and distinct), returning the new canonical element. The
// smaller-rank tree becomes a child of the larger; on a tie, y is chosen
// and its rank is incremented.
func (d *DjSets) Link(x, y adt.Handle) (adt.Handle, error) {
	if err := d.Base.CheckValid("DjSets.Link", x); err != nil {
		return 0, err
	}
	if err := d.Base.CheckValid("DjSets.Link", y); err != nil {
		return 0, err
	}
	if d.parent[x] != x {
		return 0, gferrors.InvalidArgument("DjSets.Link", "x is not canonical", map[string]any{"x": x})
	}
	if d.parent[y] != y {
		return 0, gferrors.InvalidArgument("DjSets.Link", "y is not canonical", map[string]any{"y": y})
	}
	if x == y {
		return 0, gferrors.InvalidArgument("DjSets.Link", "x and y must be distinct", map[string]any{"x": x, "y": y})
	}
	if d.rank[x] > d.rank[y] {
		x, y = y, x
	} else if d.rank[x] == d.rank[y] {
		d.rank[y]++
	}
	d.parent[x] = y
	return y, nil
}

// Rank reports x's rank (used by tests of the rank-bound invariant).
func (d *DjSets) Rank(x adt.Handle) int { return d.rank[x] }

// String renders "{[a b c d* g] [e f* h]}": non-singleton blocks only,
// canonical element marked with '*', blocks space-separated.
func (d *DjSets) String() string {
	root := make([]adt.Handle, d.N()+1)
	size := make([]int, d.N()+1)
	for i := 1; i <= d.N(); i++ {
		root[i] = d.FindRoot(adt.Handle(i))
	}
	for i := 1; i <= d.N(); i++ {
		size[root[i]]++
	}
	var groups []string
	for i := 1; i <= d.N(); i++ {
		if size[i] <= 1 {
			continue
		}
		var sb strings.Builder
		sb.WriteByte('[')
		first := true
		for j := 1; j <= d.N(); j++ {
			if root[j] != adt.Handle(i) {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(adt.RenderHandle(adt.Handle(j), d.N()))
			if j == i {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte(']')
		groups = append(groups, sb.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(groups, " "))
}

// IsConsistent audits that Find is stable and agrees with FindRoot.
func (d *DjSets) IsConsistent() error {
	for x := 1; x <= d.N(); x++ {
		r := d.Find(adt.Handle(x))
		if d.parent[r] != r {
			return gferrors.Inconsistent("DjSets.IsConsistent", "root is not self-parented", map[string]any{"x": x})
		}
		if d.FindRoot(adt.Handle(x)) != r {
			return gferrors.Inconsistent("DjSets.IsConsistent", "Find/FindRoot disagree", map[string]any{"x": x})
		}
	}
	return nil
}
