// Package intone is the real-time core of an interactive additive
// synthesizer: wavetable oscillators over shared tuning cells, mixed by an
// engine that an audio backend pulls mono samples from.
//
// The engine is built for two threads. An audio thread calls NextSample or
// ReadSamples; a control thread adds, removes, and reconfigures voices under
// the engine's single coarse lock. Retuning a sounding voice bypasses that
// lock entirely: frequency and volume live in per-voice shared cells
// (FreqCell, VolCell) with one small lock each, so parameter changes never
// contend with registry changes or with other voices.
//
// Nothing in this package fails: gains and volume multipliers clamp into
// their valid ranges, unknown voice ids are ignored, and sample production
// is total. A real-time audio path has no good place for an error to go.
package intone
