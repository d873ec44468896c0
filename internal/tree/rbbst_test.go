package tree

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func checkRankInvariant(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, rb *RbBst[int], n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		h := adt.Handle(i)
		if rb.parent[h] == 0 && rb.left[h] == 0 && rb.right[h] == 0 {
			continue // isolated singleton, not on any multi-node tree
		}
		diffL := rb.Rank(h) - rb.Rank(rb.left[h])
		diffR := rb.Rank(h) - rb.Rank(rb.right[h])
		if diffL < 0 || diffL > 1 {
			t.Fatalf("handle %d: left rank diff %d out of [0,1]", h, diffL)
		}
		if diffR < 0 || diffR > 1 {
			t.Fatalf("handle %d: right rank diff %d out of [0,1]", h, diffR)
		}
		l, r := rb.left[h], rb.right[h]
		for _, g := range []adt.Handle{rb.left[l], rb.right[l], rb.left[r], rb.right[r]} {
			if rb.Rank(g) >= rb.Rank(h) {
				t.Fatalf("handle %d: grandchild %d has rank %d, not below %d", h, g, rb.Rank(g), rb.Rank(h))
			}
		}
	}
}

func TestRbBstInsertRemoveMaintainsOrder(t *testing.T) {
	rb := NewRbBst(8, less)
	var root adt.Handle
	for _, pair := range []struct {
		h adt.Handle
		k int
	}{{1, 5}, {2, 3}, {3, 8}, {4, 1}, {5, 4}, {6, 9}, {7, 2}} {
		rb.SetKey(pair.h, pair.k)
		root = rb.Insert(pair.h, root)
	}
	if err := rb.IsConsistent(); err != nil {
		t.Fatal(err)
	}
	checkRankInvariant(t, rb, 8)
	root = rb.Remove(3, root)
	if err := rb.IsConsistent(); err != nil {
		t.Fatal(err)
	}
	checkRankInvariant(t, rb, 8)
	if rb.Access(8, root) != 0 {
		t.Fatal("key 8 should be gone after removing handle 3")
	}
}

func TestRbBstRankInvariantUnderRandomOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 24).Draw(t, "n")
		rb := NewRbBst(n, less)
		var root adt.Handle
		present := map[adt.Handle]bool{}
		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := adt.Handle(rapid.IntRange(1, n).Draw(t, "h"))
			if present[h] {
				if rapid.Bool().Draw(t, "remove") {
					root = rb.Remove(h, root)
					present[h] = false
				}
				continue
			}
			rb.SetKey(h, rapid.IntRange(-30, 30).Draw(t, "key"))
			newRoot := rb.Insert(h, root)
			if rb.parent[h] != 0 || newRoot == h {
				present[h] = true
			}
			root = newRoot
		}
		if err := rb.IsConsistent(); err != nil {
			t.Fatal(err)
		}
		checkRankInvariant(t, rb, n)
	})
}
