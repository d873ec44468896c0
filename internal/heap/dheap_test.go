package heap

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func TestDheapBasics(t *testing.T) {
	dh := NewDheap[int](5, 2, func(a, b int) bool { return a < b })
	if err := dh.Insert(1, 10); err != nil {
		t.Fatal(err)
	}
	if err := dh.Insert(2, 5); err != nil {
		t.Fatal(err)
	}
	if err := dh.Insert(3, 7); err != nil {
		t.Fatal(err)
	}
	if dh.FindMin() != 2 {
		t.Fatalf("FindMin() = %d, want 2", dh.FindMin())
	}
	if err := dh.ChangeKey(1, 1); err != nil {
		t.Fatal(err)
	}
	if dh.FindMin() != 1 {
		t.Fatalf("FindMin() after ChangeKey = %d, want 1", dh.FindMin())
	}
	if h := dh.DeleteMin(); h != 1 {
		t.Fatalf("DeleteMin() = %d, want 1", h)
	}
	if dh.FindMin() != 2 {
		t.Fatalf("FindMin() after DeleteMin = %d, want 2", dh.FindMin())
	}
	if err := dh.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestDheapOrderInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 24).Draw(t, "n")
		d := rapid.IntRange(2, 4).Draw(t, "d")
		dh := NewDheap[int](n, d, func(a, b int) bool { return a < b })
		present := map[adt.Handle]bool{}
		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := adt.Handle(rapid.IntRange(1, n).Draw(t, "h"))
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				if !present[h] {
					if err := dh.Insert(h, rapid.IntRange(-50, 50).Draw(t, "key")); err != nil {
						t.Fatal(err)
					}
					present[h] = true
				}
			case 1:
				if present[h] {
					if err := dh.Remove(h); err != nil {
						t.Fatal(err)
					}
					present[h] = false
				}
			case 2:
				if present[h] {
					if err := dh.ChangeKey(h, rapid.IntRange(-50, 50).Draw(t, "key")); err != nil {
						t.Fatal(err)
					}
				}
			}
			if err := dh.IsConsistent(); err != nil {
				t.Fatal(err)
			}
		}
	})
}
