package main

import (
	"github.com/just-intonation/intone"
)

// MinVoiceGain is the bottom of the per-voice gain range the UI exposes.
const MinVoiceGain = intone.Gain(-6.0)

// BaseFrequency is one user-editable absolute frequency, referenced by
// index from ratio voices.
type BaseFrequency struct {
	Hz float32
}

// RatioVoice is one sounding voice: a base frequency index, a rational
// multiplier, and a per-voice log-2 gain. It keeps the shared cells the
// engine's oscillator reads from, so edits retune the voice directly
// without going through the engine lock.
type RatioVoice struct {
	Base   int
	Ratio  intone.Ratio
	Volume intone.Gain

	id   int
	freq *intone.FreqCell
	vol  *intone.VolCell
}

// Session is the control-side model: base frequencies, ratio voices, and
// the current waveform. It translates edits into engine calls and cell
// writes. Sessions are driven from the UI event loop only and need no lock
// of their own.
type Session struct {
	eng      *intone.Engine
	bases    []BaseFrequency
	voices   []*RatioVoice
	waveform intone.Waveform
}

func NewSession(eng *intone.Engine) *Session {
	return &Session{eng: eng}
}

func (s *Session) Bases() []BaseFrequency { return s.bases }
func (s *Session) Voices() []*RatioVoice  { return s.voices }

// AddBase appends a base frequency and returns its index.
func (s *Session) AddBase(hz float32) int {
	s.bases = append(s.bases, BaseFrequency{Hz: hz})
	return len(s.bases) - 1
}

// SetBase changes a base frequency and retunes every voice that references
// it. Out-of-range indexes are ignored.
func (s *Session) SetBase(index int, hz float32) {
	if index < 0 || index >= len(s.bases) {
		return
	}
	s.bases[index].Hz = hz
	for _, v := range s.voices {
		if v.Base == index {
			v.freq.Set(s.playedHz(v.Base, v.Ratio))
		}
	}
}

// RemoveBase deletes a base frequency along with every voice referencing
// it, renumbering the bases that follow.
func (s *Session) RemoveBase(index int) {
	if index < 0 || index >= len(s.bases) {
		return
	}
	s.bases = append(s.bases[:index], s.bases[index+1:]...)
	kept := s.voices[:0]
	for _, v := range s.voices {
		switch {
		case v.Base == index:
			s.eng.RemoveVoice(v.id)
		case v.Base > index:
			v.Base--
			kept = append(kept, v)
		default:
			kept = append(kept, v)
		}
	}
	s.voices = kept
}

// AddVoice creates a ratio voice and registers it with the engine.
func (s *Session) AddVoice(base int, ratio intone.Ratio, volume intone.Gain) *RatioVoice {
	v := &RatioVoice{
		Base:   base,
		Ratio:  ratio,
		Volume: volume,
		freq:   intone.NewFreqCell(s.playedHz(base, ratio)),
		vol:    intone.NewVolCell(volume.Multiplier()),
	}
	v.id = s.eng.AddVoice(v.freq, v.vol)
	s.voices = append(s.voices, v)
	return v
}

// RemoveVoice deletes the voice at the given list position.
func (s *Session) RemoveVoice(index int) {
	if index < 0 || index >= len(s.voices) {
		return
	}
	s.eng.RemoveVoice(s.voices[index].id)
	s.voices = append(s.voices[:index], s.voices[index+1:]...)
}

// SetVoice rebinds a voice to a base and ratio, retuning it in place.
func (s *Session) SetVoice(index, base int, ratio intone.Ratio) {
	if index < 0 || index >= len(s.voices) {
		return
	}
	if base < 0 || base >= len(s.bases) || ratio.Den == 0 {
		return
	}
	v := s.voices[index]
	v.Base = base
	v.Ratio = ratio
	v.freq.Set(s.playedHz(base, ratio))
}

// SetVoiceVolume changes a voice's loudness. The gain clamps to [-6, 0] and
// lands in the volume cell as a linear multiplier.
func (s *Session) SetVoiceVolume(index int, g intone.Gain) {
	if index < 0 || index >= len(s.voices) {
		return
	}
	g = max(intone.NewGain(g.Value()), MinVoiceGain)
	v := s.voices[index]
	v.Volume = g
	v.vol.Set(g.Multiplier())
}

// PlayedHz returns the frequency a voice currently sounds at.
func (s *Session) PlayedHz(v *RatioVoice) float32 {
	return s.playedHz(v.Base, v.Ratio)
}

func (s *Session) playedHz(base int, r intone.Ratio) float32 {
	if base < 0 || base >= len(s.bases) || r.Den == 0 {
		return 0
	}
	return s.bases[base].Hz * r.Multiplicand()
}

// Waveform returns the session's current waveform.
func (s *Session) Waveform() intone.Waveform {
	return s.waveform
}

// SetWaveform switches every sounding voice to a new waveform.
func (s *Session) SetWaveform(w intone.Waveform) {
	s.waveform = w
	s.eng.SetWaveform(w)
}

// CycleWaveform advances sine -> triangle -> square -> saw -> sine.
func (s *Session) CycleWaveform() {
	s.SetWaveform((s.waveform + 1) % 4)
}

// Apply replaces the whole session with the layout from a config.
func (s *Session) Apply(cfg *Config) error {
	w, err := intone.ParseWaveform(cfg.Waveform)
	if err != nil {
		return err
	}
	s.eng.ClearVoices()
	s.bases = s.bases[:0]
	s.voices = s.voices[:0]
	s.SetWaveform(w)
	s.eng.SetGlobalGain(intone.NewGain(cfg.Gain))
	for _, hz := range cfg.BaseFrequencies {
		s.AddBase(hz)
	}
	for _, vc := range cfg.Voices {
		s.AddVoice(vc.Base, intone.Ratio{Num: vc.Num, Den: vc.Den}, intone.NewGain(vc.Volume))
	}
	return nil
}
