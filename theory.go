package intone

import (
	"fmt"
	"math"
)

// C4Frequency anchors 12-TET note naming (middle C with A4 = 440 Hz).
const C4Frequency = 261.63556

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Note is the nearest 12-TET note to a frequency, with the remaining offset
// in cents. It exists purely for display; the synth itself is not bound to
// any temperament.
type Note struct {
	Name       string
	Octave     int
	CentOffset float32
}

// NoteFromFrequency names the 12-TET note closest to hz.
func NoteFromFrequency(hz float32) Note {
	ratioLog2 := math.Log2(float64(hz) / C4Frequency)
	centsFromC4 := ratioLog2 * 1200
	halfSteps := math.Round(ratioLog2 * 12)
	index := (int(halfSteps)%12 + 12) % 12
	return Note{
		Name:       noteNames[index],
		Octave:     4 + int(math.Floor(halfSteps/12)),
		CentOffset: float32(centsFromC4 - halfSteps*100),
	}
}

func (n Note) String() string {
	cents := math.Round(float64(n.CentOffset))
	sign := ""
	if cents > 0 {
		sign = "+"
	} else if cents < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d (%s%.0fc)", n.Name, n.Octave, sign, math.Abs(cents))
}
