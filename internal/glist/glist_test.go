package glist

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func TestGlistInsertFindRemove(t *testing.T) {
	g := NewGlist[string](4)
	a, err := g.AddLast("a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.AddLast("b")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Insert("m", a); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "[a m b]" {
		t.Fatalf("String() = %q, want [a m b]", got)
	}
	if g.Find("b", 0) != b {
		t.Fatalf("Find(b, 0) = %d, want %d", g.Find("b", 0), b)
	}
	if !g.Contains("m") {
		t.Fatal("Contains(m) should be true")
	}
	if err := g.Remove(a); err != nil {
		t.Fatal(err)
	}
	if g.Member(a) {
		t.Fatal("a should no longer be a member")
	}
	if err := g.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestGlistAutoExpand(t *testing.T) {
	g := NewGlistAutoExpand[int](1)
	var last adt.Handle
	for i := 0; i < 10; i++ {
		h, err := g.AddLast(i)
		if err != nil {
			t.Fatal(err)
		}
		last = h
	}
	if g.Length() != 10 {
		t.Fatalf("Length() = %d, want 10", g.Length())
	}
	if g.Value(last) != 9 {
		t.Fatalf("Value(last) = %d, want 9", g.Value(last))
	}
}

func TestGlistOrderMatchesListPair(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")
		g := NewGlist[int](n)
		var handles []adt.Handle
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if len(handles) > 0 && rapid.Bool().Draw(t, "remove") {
				idx := rapid.IntRange(0, len(handles)-1).Draw(t, "idx")
				if err := g.Remove(handles[idx]); err != nil {
					t.Fatal(err)
				}
				handles = append(handles[:idx], handles[idx+1:]...)
				continue
			}
			after := adt.Handle(0)
			if len(handles) > 0 && rapid.Bool().Draw(t, "after") {
				after = handles[rapid.IntRange(0, len(handles)-1).Draw(t, "afterIdx")]
			}
			h, err := g.Insert(i, after)
			if err != nil {
				continue
			}
			if after == 0 {
				handles = append([]adt.Handle{h}, handles...)
			} else {
				pos := 0
				for k, hh := range handles {
					if hh == after {
						pos = k + 1
						break
					}
				}
				handles = append(handles[:pos], append([]adt.Handle{h}, handles[pos:]...)...)
			}
		}
		got := make([]adt.Handle, 0, len(handles))
		for x := g.First(); x != 0; x = g.Next(x) {
			got = append(got, x)
		}
		if len(got) != len(handles) {
			t.Fatalf("length mismatch: got %d want %d", len(got), len(handles))
		}
		for i := range got {
			if got[i] != handles[i] {
				t.Fatalf("order mismatch at %d: got %d want %d", i, got[i], handles[i])
			}
		}
		if err := g.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
