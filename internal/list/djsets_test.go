package list

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func TestDjSetsLinkFind(t *testing.T) {
	d := NewDjSets(6)
	for x := adt.Handle(1); x <= 6; x++ {
		if d.Find(x) != x {
			t.Fatalf("singleton %d should be its own root", x)
		}
	}
	if _, err := d.Link(1, 2); err != nil {
		t.Fatal(err)
	}
	if d.Find(1) != d.Find(2) {
		t.Fatal("1 and 2 should share a root after Link")
	}
	if _, err := d.Link(3, 4); err != nil {
		t.Fatal(err)
	}
	r := d.Find(1)
	if _, err := d.Link(r, d.Find(3)); err != nil {
		t.Fatal(err)
	}
	if d.Find(1) != d.Find(3) || d.Find(2) != d.Find(4) {
		t.Fatal("all four handles should share a root")
	}
	if _, err := d.Link(d.Find(1), d.Find(1)); err == nil {
		t.Fatal("linking a set to itself should fail")
	}
	if err := d.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestDjSetsFindStableAfterLink(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 20).Draw(t, "n")
		d := NewDjSets(n)
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			a := adt.Handle(rapid.IntRange(1, n).Draw(t, "a"))
			b := adt.Handle(rapid.IntRange(1, n).Draw(t, "b"))
			ra, rb := d.Find(a), d.Find(b)
			if ra == rb {
				continue
			}
			if _, err := d.Link(ra, rb); err != nil {
				t.Fatal(err)
			}
			if d.Find(a) != d.Find(b) {
				t.Fatalf("Find(%d) != Find(%d) right after linking their sets", a, b)
			}
		}
		for x := adt.Handle(1); x <= adt.Handle(n); x++ {
			r := d.Find(x)
			if d.Find(d.parent[x]) != r {
				t.Fatalf("Find(parent(%d)) != Find(%d)", x, x)
			}
		}
		if err := d.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
