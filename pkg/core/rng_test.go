package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

func TestChanceBounds(t *testing.T) {
	s := &Script{Floats: []float64{0.5}}
	if Chance(s, 0) {
		t.Fatal("zero probability fired")
	}
	if !Chance(s, 1) {
		t.Fatal("probability one did not fire")
	}
	if s.fi != 0 {
		t.Fatalf("degenerate probabilities consumed %d draws", s.fi)
	}
	if Chance(s, 0.4) {
		t.Fatal("0.5 < 0.4 should not fire")
	}
	if !Chance(s, 0.6) {
		t.Fatal("0.5 < 0.6 should fire")
	}
}

func TestBetweenInclusive(t *testing.T) {
	r := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := Between(r, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("Between(1,3) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all of 1..3 to appear, saw %v", seen)
	}
	if got := Between(r, 5, 5); got != 5 {
		t.Fatalf("Between(5,5) = %d", got)
	}
}

func TestScriptCycles(t *testing.T) {
	s := &Script{Ints: []int{4, 1}}
	want := []int{1, 1, 1, 1}
	for i, w := range want {
		if got := s.IntN(3); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}
