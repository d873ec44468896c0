package hash

import (
	"testing"

	"pgregory.net/rapid"
)

func intHash(k int, hf int) uint32 { return HashU64(uint64(k), hf) }

func TestHashSetInsertFindRemove(t *testing.T) {
	hs := NewHashSet[int](8, intHash)
	x := hs.Insert(42)
	if x == 0 {
		t.Fatal("Insert(42) failed")
	}
	if !hs.Contains(42) {
		t.Fatal("Contains(42) should be true")
	}
	if hs.Find(42) != x {
		t.Fatalf("Find(42) = %d, want %d", hs.Find(42), x)
	}
	y := hs.Insert(42)
	if y == 0 || y == x || hs.Find(42) != y {
		t.Fatalf("re-inserting 42 should move it to a fresh index, got %d (old %d)", y, x)
	}
	hs.Remove(42)
	if hs.Contains(42) {
		t.Fatal("42 should be gone after Remove")
	}
	if err := hs.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestHashSetFindRecoversIndex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		hs := NewHashSet[int](n, intHash)
		present := map[int]bool{}
		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			v := rapid.IntRange(0, 100).Draw(t, "v")
			if present[v] {
				if rapid.Bool().Draw(t, "remove") {
					hs.Remove(v)
					present[v] = false
				}
				continue
			}
			if rapid.Bool().Draw(t, "insert") {
				x := hs.Insert(v)
				if x != 0 {
					present[v] = true
				}
			}
		}
		for v, want := range present {
			if !want {
				continue
			}
			if !hs.Contains(v) {
				t.Fatalf("Contains(%d) should be true", v)
			}
		}
		if err := hs.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
