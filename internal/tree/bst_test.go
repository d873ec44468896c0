package tree

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func less(a, b int) bool { return a < b }

func TestBstInsertFindRemove(t *testing.T) {
	b := NewBst(6, less)
	var root adt.Handle
	keys := map[adt.Handle]int{1: 5, 2: 3, 3: 8, 4: 1, 5: 4}
	for _, h := range []adt.Handle{1, 2, 3, 4, 5} {
		b.SetKey(h, keys[h])
		var added bool
		root, added = b.Insert(h, root)
		if !added {
			t.Fatalf("Insert(%d) reported duplicate, want fresh add", h)
		}
	}
	if err := b.IsConsistent(); err != nil {
		t.Fatal(err)
	}
	if got := b.Access(8, root); got != 3 {
		t.Fatalf("Access(8) = %d, want 3", got)
	}
	if got := b.Access(99, root); got != 0 {
		t.Fatalf("Access(99) = %d, want 0", got)
	}
	root = b.Remove(2, root)
	if b.Access(3, root) != 0 {
		t.Fatal("key 3 should be gone after removing handle 2")
	}
	if err := b.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestBstKeyOrderInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		b := NewBst(n, less)
		var root adt.Handle
		present := map[adt.Handle]bool{}
		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := adt.Handle(rapid.IntRange(1, n).Draw(t, "h"))
			if present[h] {
				if rapid.Bool().Draw(t, "remove") {
					root = b.Remove(h, root)
					present[h] = false
				}
				continue
			}
			b.SetKey(h, rapid.IntRange(-30, 30).Draw(t, "key"))
			var added bool
			root, added = b.Insert(h, root)
			present[h] = added
		}
		if err := b.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
