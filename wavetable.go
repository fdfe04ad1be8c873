package intone

import (
	"fmt"
	"math"
)

// WavetableSize is the number of samples in one cycle of a WaveTable.
const WavetableSize = 1024

// Waveform selects one of the built-in single-cycle generators.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Saw
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Saw:
		return "saw"
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// ParseWaveform maps a waveform name to its Waveform value.
func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "sine":
		return Sine, nil
	case "triangle":
		return Triangle, nil
	case "square":
		return Square, nil
	case "saw":
		return Saw, nil
	}
	return Sine, fmt.Errorf("unknown waveform %q", s)
}

// WaveTable holds one period of a waveform sampled at WavetableSize equally
// spaced points in [0,1). Tables are immutable once built; voices share them
// by reference.
type WaveTable struct {
	samples [WavetableSize]float32
}

// NewWaveTable builds the table for one of the built-in generators.
func NewWaveTable(kind Waveform) *WaveTable {
	switch kind {
	case Triangle:
		return TableFromFunc(func(t float32) float32 {
			return 4*float32(math.Abs(float64(t+0.25-float32(math.Floor(float64(t+0.75)))))) - 1
		})
	case Square:
		return TableFromFunc(func(t float32) float32 {
			// the high half-cycle ends just before t = 0.5, so the
			// midpoint sample is already -1
			if t < 0.5 {
				return 1
			}
			return -1
		})
	case Saw:
		return TableFromFunc(func(t float32) float32 {
			return float32(math.Mod(float64(2*t+3), 2)) - 1
		})
	default:
		return TableFromFunc(func(t float32) float32 {
			return float32(math.Sin(float64(t) * 2 * math.Pi))
		})
	}
}

// TableFromFunc samples f, a periodic function of period 1, at WavetableSize
// points.
func TableFromFunc(f func(t float32) float32) *WaveTable {
	wt := &WaveTable{}
	for i := range wt.samples {
		wt.samples[i] = f(float32(i) / WavetableSize)
	}
	return wt
}

// At returns the raw sample at index, wrapped modulo the table size.
func (wt *WaveTable) At(index int) float32 {
	return wt.samples[index%WavetableSize]
}

// Interp returns the linearly interpolated value at a fractional index. The
// index wraps modulo the table size in either direction, so every float
// input is valid; negative indexes come from voices tuned to a negative
// frequency, which FreqCell deliberately does not reject.
func (wt *WaveTable) Interp(index float32) float32 {
	index = float32(math.Mod(float64(index), WavetableSize))
	if index < 0 {
		index += WavetableSize
	}
	// adding the table size to a tiny negative can round up to the size
	// itself, so the slot index still needs a wrap
	floor := int(index)
	s0 := wt.samples[floor%WavetableSize]
	s1 := wt.samples[(floor+1)%WavetableSize]
	return lerp(s0, s1, index-float32(floor))
}

func lerp(s0, s1, t float32) float32 {
	return (1-t)*s0 + t*s1
}
