package list

import (
	"testing"

	"github.com/jtalgo/grafalgo/internal/adt"
	"pgregory.net/rapid"
)

func TestListPairBasics(t *testing.T) {
	p := NewListPair(4)
	if p.NumOut() != 4 || p.NumIn() != 0 {
		t.Fatal("everything should start out")
	}
	if err := p.Swap(2, 0); err != nil {
		t.Fatal(err)
	}
	if err := p.Swap(4, 2); err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "{b d} {a c}" {
		t.Fatalf("String() = %q, want {b d} {a c}", got)
	}
	if err := p.Swap(2, 0); err != nil {
		t.Fatal(err)
	}
	if !p.IsOut(2) {
		t.Fatal("2 should be out again")
	}
	if err := p.IsConsistent(); err != nil {
		t.Fatal(err)
	}
}

func TestListPairPartitionInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		p := NewListPair(n)
		steps := rapid.IntRange(0, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := adt.Handle(rapid.IntRange(1, n).Draw(t, "h"))
			after := adt.Handle(0)
			if p.IsIn(h) {
				if p.NumOut() > 0 {
					after = p.FirstOut()
				}
			} else if p.NumIn() > 0 {
				after = p.FirstIn()
			}
			if err := p.Swap(h, after); err != nil {
				t.Fatal(err)
			}
			for x := adt.Handle(1); x <= adt.Handle(n); x++ {
				if p.IsIn(x) == p.IsOut(x) {
					t.Fatalf("handle %d must be exactly one of in/out", x)
				}
			}
			if p.NumIn()+p.NumOut() != n {
				t.Fatalf("numIn+numOut = %d, want %d", p.NumIn()+p.NumOut(), n)
			}
		}
		if err := p.IsConsistent(); err != nil {
			t.Fatal(err)
		}
	})
}
