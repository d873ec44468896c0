package hash

import "testing"

func TestHashMapPutGet(t *testing.T) {
	hm := NewHashMap[int, string](8, intHash)
	x := hm.Put(1, "one")
	if x == 0 {
		t.Fatal("Put(1, one) failed")
	}
	v, ok := hm.Get(1)
	if !ok || v != "one" {
		t.Fatalf("Get(1) = (%q, %v), want (\"one\", true)", v, ok)
	}
	y := hm.Put(1, "uno")
	if y == 0 || y == x {
		t.Fatalf("Put with same key should move the pair to a fresh index, got %d (old %d)", y, x)
	}
	v, _ = hm.Get(1)
	if v != "uno" {
		t.Fatalf("Get(1) after overwrite = %q, want uno", v)
	}
	if _, ok := hm.Get(2); ok {
		t.Fatal("Get(2) should report absent")
	}
}
