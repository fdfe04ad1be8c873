package intone

import "fmt"

// Ratio is a rational frequency multiplier: a voice tuned to 3:2 of a
// 220 Hz base plays 330 Hz. Ratios with small integers are the just
// intervals this synth exists to explore.
type Ratio struct {
	Num uint32
	Den uint32
}

// Multiplicand returns the ratio as a float factor.
func (r Ratio) Multiplicand() float32 {
	return float32(r.Num) / float32(r.Den)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}
