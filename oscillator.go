package intone

// Oscillator is one independently tunable voice: a phase accumulator over a
// wavetable. Frequency and volume come from shared cells, so the control
// side can retune a sounding voice without touching the engine. The phase
// accumulator is mutated only by the audio thread.
type Oscillator struct {
	srRecip float32
	freq    *FreqCell
	vol     *VolCell
	table   *WaveTable
	phase   float32 // cycles
}

// NewOscillator creates a voice reading from the given cells and table.
func NewOscillator(sampleRate int, freq *FreqCell, vol *VolCell, table *WaveTable) *Oscillator {
	return &Oscillator{
		srRecip: 1 / float32(sampleRate),
		freq:    freq,
		vol:     vol,
		table:   table,
	}
}

// NextSample produces one sample and advances the phase accumulator by
// frequency/sampleRate cycles.
func (o *Oscillator) NextSample() float32 {
	sample := o.table.Interp(o.phase * WavetableSize)
	o.phase += o.freq.Get() * o.srRecip
	// The table lookup already wraps per cycle; this outer wrap only keeps
	// the accumulator's float32 magnitude bounded over long sessions. Any
	// sufficiently large bound works; one table size of cycles is plenty.
	// Negative frequencies run the phase backwards, so bound both sides.
	if o.phase >= WavetableSize {
		o.phase -= WavetableSize
	} else if o.phase <= -WavetableSize {
		o.phase += WavetableSize
	}
	return sample * o.vol.Get()
}

// SetWaveTable swaps the voice's table without resetting phase. The voice
// continues at its current phase in the new shape, so the swap cannot click
// from a phase jump.
func (o *Oscillator) SetWaveTable(table *WaveTable) {
	o.table = table
}
