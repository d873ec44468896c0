package list

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func TestDlistBasics(t *testing.T) {
	d := NewDlist(5)
	if !d.Empty() || d.Length() != 0 {
		t.Fatal("new Dlist should be empty")
	}
	if err := d.AddLast(1); err != nil {
		t.Fatal(err)
	}
	if err := d.AddLast(3); err != nil {
		t.Fatal(err)
	}
	if err := d.Insert(2, 1); err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "[a b c]" {
		t.Fatalf("String() = %q, want [a b c]", got)
	}
	if err := d.Remove(2); err != nil {
		t.Fatal(err)
	}
	if d.Member(2) {
		t.Fatal("2 should no longer be a member")
	}
	if got := d.String(); got != "[a c]" {
		t.Fatalf("String() after remove = %q, want [a c]", got)
	}
	if err := d.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestDlistPrevNextInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")
		d := NewDlist(n)
		inList := map[adt.Handle]bool{}
		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := adt.Handle(rapid.IntRange(1, n).Draw(t, "h"))
			if inList[h] {
				if rapid.Bool().Draw(t, "remove") {
					if err := d.Remove(h); err != nil {
						t.Fatal(err)
					}
					inList[h] = false
				}
				continue
			}
			after := adt.Handle(0)
			if rapid.Bool().Draw(t, "afterSomething") && d.Length() > 0 {
				after = d.Get(rapid.IntRange(1, d.Length()).Draw(t, "pos"))
			}
			if err := d.Insert(h, after); err != nil {
				t.Fatal(err)
			}
			inList[h] = true
		}
		for h := adt.Handle(1); h <= adt.Handle(n); h++ {
			if !d.Member(h) {
				continue
			}
			if p := d.Prev(h); p != 0 {
				if d.Next(p) != h {
					t.Fatalf("Next(Prev(%d)) != %d", h, h)
				}
			}
			if nx := d.Next(h); nx != 0 {
				if d.Prev(nx) != h {
					t.Fatalf("Prev(Next(%d)) != %d", h, h)
				}
			}
		}
		if err := d.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
