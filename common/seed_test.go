package common

import "testing"

func TestSeededRNG_SameSeedSameSequence(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.Random(), b.Random(); av != bv {
			t.Fatalf("Expected identical sequences, diverged at %d: %f vs %f", i, av, bv)
		}
	}
}

func TestSeededRNG_Range(t *testing.T) {
	r := NewSeededRNG(7)

	for i := 0; i < 10000; i++ {
		v := r.Random()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0,1), got %f", v)
		}
	}
}

func TestSeededRNG_Reset(t *testing.T) {
	r := NewSeededRNG(99)
	first := r.Random()
	r.Random()
	r.Reset()

	if got := r.Random(); got != first {
		t.Errorf("Expected %f after Reset, got %f", first, got)
	}
}

func TestSeededRNG_SetSeed(t *testing.T) {
	r := NewSeededRNG(1)
	r.SetSeed(5)

	if r.Seed() != 5 {
		t.Errorf("Expected Seed() to be 5, got %d", r.Seed())
	}
	if got, want := r.Random(), NewSeededRNG(5).Random(); got != want {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestSeededRNG_RandomFloat(t *testing.T) {
	r := NewSeededRNG(3)

	for i := 0; i < 1000; i++ {
		v := r.RandomFloat(10, 25)
		if v < 10 || v >= 25 {
			t.Fatalf("Expected value in [10,25), got %f", v)
		}
	}
}

func TestTimeSeed_Differs(t *testing.T) {
	if TimeSeed(1000) == TimeSeed(1001) {
		t.Error("Expected neighbouring timestamps to give different seeds")
	}
}
