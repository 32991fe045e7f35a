package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGRangeAndJitterBounds(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		if v := r.Range(0.3, 0.5); v < 0.3 || v >= 0.5 {
			t.Fatalf("Range out of bounds: %f", v)
		}
		if v := r.Jitter(0.05); v < -0.05 || v >= 0.05 {
			t.Fatalf("Jitter out of bounds: %f", v)
		}
	}
	if v := r.Range(2, 2); v != 2 {
		t.Fatalf("empty range should return lo, got %f", v)
	}
	if v := r.IntN(0); v != 0 {
		t.Fatalf("IntN(0) should be 0, got %d", v)
	}
}
