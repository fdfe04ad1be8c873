package intone

import (
	"math"
	"testing"
)

func TestSineTableStartsAtZero(t *testing.T) {
	wt := NewWaveTable(Sine)
	if got := wt.At(0); got != 0 {
		t.Fatalf("sine[0] = %v, want 0", got)
	}
}

func TestSquareTableLevels(t *testing.T) {
	wt := NewWaveTable(Square)
	if got := wt.At(0); got != 1 {
		t.Fatalf("square[0] = %v, want 1", got)
	}
	if got := wt.At(WavetableSize/2 - 1); got != 1 {
		t.Fatalf("square just before midpoint = %v, want 1", got)
	}
	if got := wt.At(WavetableSize / 2); got != -1 {
		t.Fatalf("square[midpoint] = %v, want -1", got)
	}
}

func TestTriangleTableShape(t *testing.T) {
	wt := NewWaveTable(Triangle)
	cases := []struct {
		index int
		want  float32
	}{
		{0, 0},
		{WavetableSize / 4, 1},
		{WavetableSize / 2, 0},
		{3 * WavetableSize / 4, -1},
	}
	for _, c := range cases {
		if got := wt.At(c.index); math.Abs(float64(got-c.want)) > 1e-5 {
			t.Errorf("triangle[%d] = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestSawTableShape(t *testing.T) {
	wt := NewWaveTable(Saw)
	if got := wt.At(0); got != 0 {
		t.Fatalf("saw[0] = %v, want 0", got)
	}
	// ramp rises toward 1 just before the midpoint discontinuity
	if got := wt.At(WavetableSize/2 - 1); got < 0.99 {
		t.Fatalf("saw just before midpoint = %v, want close to 1", got)
	}
	if got := wt.At(WavetableSize / 2); got != -1 {
		t.Fatalf("saw[midpoint] = %v, want -1", got)
	}
}

func TestTableValuesWithinRange(t *testing.T) {
	for _, kind := range []Waveform{Sine, Triangle, Square, Saw} {
		wt := NewWaveTable(kind)
		for i := 0; i < WavetableSize; i++ {
			if v := wt.At(i); v < -1 || v > 1 {
				t.Fatalf("%s[%d] = %v outside [-1,1]", kind, i, v)
			}
		}
	}
}

func TestRawIndexWraps(t *testing.T) {
	wt := NewWaveTable(Sine)
	if wt.At(WavetableSize+7) != wt.At(7) {
		t.Fatal("raw index does not wrap modulo table size")
	}
}

func TestInterpAtIntegerIndexEqualsRaw(t *testing.T) {
	wt := NewWaveTable(Sine)
	for _, i := range []int{0, 1, 100, 511, 1023} {
		if got, want := wt.Interp(float32(i)), wt.At(i); got != want {
			t.Errorf("Interp(%d) = %v, want raw %v", i, got, want)
		}
	}
}

func TestInterpAtHalfIndexIsMean(t *testing.T) {
	wt := NewWaveTable(Sine)
	for _, i := range []int{0, 100, 767} {
		want := (wt.At(i) + wt.At(i+1)) / 2
		if got := wt.Interp(float32(i) + 0.5); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("Interp(%d.5) = %v, want mean %v", i, got, want)
		}
	}
}

func TestInterpWrapsPastTableEnd(t *testing.T) {
	wt := NewWaveTable(Sine)
	// the neighbor of the last slot is slot 0
	want := (wt.At(WavetableSize-1) + wt.At(0)) / 2
	if got := wt.Interp(WavetableSize - 0.5); math.Abs(float64(got-want)) > 1e-6 {
		t.Fatalf("Interp(last+0.5) = %v, want %v", got, want)
	}
	if got, want := wt.Interp(WavetableSize+3), wt.Interp(3); got != want {
		t.Fatalf("Interp past end = %v, want wrapped %v", got, want)
	}
}

func TestInterpNegativeIndexWraps(t *testing.T) {
	wt := NewWaveTable(Sine)
	if got, want := wt.Interp(-1), wt.At(WavetableSize-1); got != want {
		t.Fatalf("Interp(-1) = %v, want %v", got, want)
	}
	if got, want := wt.Interp(-0.5), wt.Interp(WavetableSize-0.5); got != want {
		t.Fatalf("Interp(-0.5) = %v, want %v", got, want)
	}
	// a tiny negative rounds up to the table size after the wrap; must not
	// panic and must land on slot 0
	if got, want := wt.Interp(-1e-8), wt.At(0); got != want {
		t.Fatalf("Interp(-1e-8) = %v, want %v", got, want)
	}
	if got, want := wt.Interp(-3*WavetableSize-7), wt.At(WavetableSize-7); got != want {
		t.Fatalf("Interp far negative = %v, want %v", got, want)
	}
}

func TestParseWaveform(t *testing.T) {
	for _, kind := range []Waveform{Sine, Triangle, Square, Saw} {
		got, err := ParseWaveform(kind.String())
		if err != nil {
			t.Fatalf("ParseWaveform(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Fatalf("ParseWaveform(%q) = %v", kind.String(), got)
		}
	}
	if _, err := ParseWaveform("theremin"); err == nil {
		t.Fatal("expected error for unknown waveform")
	}
}
