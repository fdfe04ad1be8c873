package intone

import (
	"math"
	"testing"
)

func TestGainClampsPositiveToZero(t *testing.T) {
	for _, g := range []float32{0.001, 1, 6, 1e9} {
		if got := NewGain(g).Value(); got != 0 {
			t.Errorf("NewGain(%v).Value() = %v, want 0", g, got)
		}
	}
}

func TestGainMultiplierIsExp2(t *testing.T) {
	for _, g := range []float32{0, -0.5, -1, -2, -6, -20} {
		got := NewGain(g).Multiplier()
		want := float32(math.Exp2(float64(g)))
		if got != want {
			t.Errorf("NewGain(%v).Multiplier() = %v, want %v", g, got, want)
		}
	}
	if got := NewGain(0).Multiplier(); got != 1 {
		t.Errorf("unity gain multiplier = %v, want 1", got)
	}
	if got := NewGain(-1).Multiplier(); got != 0.5 {
		t.Errorf("gain -1 multiplier = %v, want 0.5", got)
	}
}
