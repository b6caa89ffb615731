package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(20, 120)
		if v < 20 || v >= 120 {
			t.Fatalf("Range(20,120) = %v", v)
		}
	}
	if got := r.Range(5, 5); got != 5 {
		t.Fatalf("Range(5,5) = %v, want 5", got)
	}
}

func TestJitterSymmetric(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.Jitter(2)
		if v < -1 || v >= 1 {
			t.Fatalf("Jitter(2) = %v, want [-1,1)", v)
		}
	}
}
