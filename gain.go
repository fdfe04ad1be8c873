package intone

import "math"

// Gain is a loudness control expressed as a base-2 exponent: 0 is unity,
// negative values attenuate, and equal steps sound like equal loudness
// changes. Values above 0 clamp to 0; the synth never amplifies.
type Gain float32

// NewGain clamps g into (-inf, 0].
func NewGain(g float32) Gain {
	if g > 0 {
		g = 0
	}
	return Gain(g)
}

// Value returns the clamped log-domain value.
func (g Gain) Value() float32 {
	return float32(g)
}

// Multiplier returns the linear amplitude factor 2^g.
func (g Gain) Multiplier() float32 {
	return float32(math.Exp2(float64(g)))
}
