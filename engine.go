package intone

import "sync"

// DefaultGain is the global gain a new engine starts with.
const DefaultGain = Gain(-2.0)

type voice struct {
	id  int
	osc *Oscillator
}

// Engine owns the waveform template and the voice registry and mixes every
// voice into one mono stream. One coarse lock covers structural mutation
// (add/remove voice, waveform and gain changes, transport) and sample
// production; per-voice retuning goes through the shared cells and never
// takes this lock.
//
// Voice output is summed unweighted: more simultaneous voices mean more
// amplitude, and the caller keeps headroom with the global gain.
type Engine struct {
	mu         sync.Mutex
	sampleRate int
	table      *WaveTable
	voices     []voice // ascending id order
	nextID     int
	playing    bool
	gain       Gain
	gainMul    float32
}

// New creates a stopped engine with a sine template and the default gain.
func New(sampleRate int) *Engine {
	return &Engine{
		sampleRate: sampleRate,
		table:      NewWaveTable(Sine),
		gain:       DefaultGain,
		gainMul:    DefaultGain.Multiplier(),
	}
}

// SampleRate returns the sample rate the engine was created with.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// Play starts sample production.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = true
}

// Stop halts sample production. Voice phases freeze where they are, so a
// later Play resumes without a jump.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = false
}

// Playing reports whether the engine is producing samples.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// SetGlobalGain stores a new global gain and precomputes its linear
// multiplier for mixing.
func (e *Engine) SetGlobalGain(g Gain) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gain = g
	e.gainMul = g.Multiplier()
}

// GlobalGain returns the current global gain.
func (e *Engine) GlobalGain() Gain {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gain
}

// AddVoice creates an oscillator on the engine's current waveform template,
// reading from the given cells, and returns its id. Ids start at 0, increase
// strictly, and are never reused.
func (e *Engine) AddVoice(freq *FreqCell, vol *VolCell) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	e.voices = append(e.voices, voice{id, NewOscillator(e.sampleRate, freq, vol, e.table)})
	return id
}

// RemoveVoice deletes the voice with the given id. An unknown id is a no-op.
func (e *Engine) RemoveVoice(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.voices {
		if e.voices[i].id == id {
			e.voices = append(e.voices[:i], e.voices[i+1:]...)
			return
		}
	}
}

// ClearVoices removes every voice.
func (e *Engine) ClearVoices() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voices = e.voices[:0]
}

// SetWaveform builds a new template table and pushes it to every existing
// voice, so all sounding voices switch together. Voices added afterwards
// start on the new template.
func (e *Engine) SetWaveform(kind Waveform) {
	table := NewWaveTable(kind)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = table
	for i := range e.voices {
		e.voices[i].osc.SetWaveTable(table)
	}
}

// NextSample produces the next mono sample: 0 while stopped (no voice phase
// advances), otherwise the unweighted voice sum times the global gain
// multiplier. It never fails and never signals completion.
func (e *Engine) NextSample() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextSample()
}

func (e *Engine) nextSample() float32 {
	if !e.playing {
		return 0
	}
	var sum float32
	for i := range e.voices {
		sum += e.voices[i].osc.NextSample()
	}
	return sum * e.gainMul
}

// ReadSamples fills out with consecutive samples, taking the engine lock
// once for the whole buffer. It is equivalent to len(out) NextSample calls.
// The signature matches pulse.Float32Reader so an engine plugs directly into
// a playback stream.
func (e *Engine) ReadSamples(out []float32) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range out {
		out[i] = e.nextSample()
	}
	return len(out), nil
}
