package utils

import "testing"

func TestPRNGIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestChanceSkipsCertainRolls(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)

	if a.Chance(0) {
		t.Error("Expected Chance(0) to be false")
	}
	if !a.Chance(1) {
		t.Error("Expected Chance(1) to be true")
	}
	// Гарантированные броски не сдвигают последовательность
	if a.Float64() != b.Float64() {
		t.Error("Expected Chance(0) and Chance(1) to leave the sequence untouched")
	}
}

func TestZeroSeedUsesTime(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Error("Expected a non-zero seed")
	}
}
