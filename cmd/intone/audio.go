package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ebitengine/oto/v3"
	"github.com/jfreymuth/pulse"

	"github.com/just-intonation/intone"
)

// AudioOutput is the boundary between the engine and a playback device. The
// device pulls samples from the engine at its own cadence; the engine never
// pushes.
type AudioOutput interface {
	Start() error
	Close()
}

// NewAudioOutput opens the named backend pulling from eng at the engine's
// own sample rate.
func NewAudioOutput(backend string, eng *intone.Engine) (AudioOutput, error) {
	switch backend {
	case "pulse":
		return newPulseOutput(eng)
	case "oto":
		return newOtoOutput(eng)
	case "none":
		return headlessOutput{}, nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", backend)
}

type pulseOutput struct {
	client *pulse.Client
	stream *pulse.PlaybackStream
}

func newPulseOutput(eng *intone.Engine) (*pulseOutput, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("intone"),
	)
	if err != nil {
		return nil, fmt.Errorf("pulse.NewClient failed: %w", err)
	}

	stream, err := client.NewPlayback(pulse.Float32Reader(eng.ReadSamples),
		pulse.PlaybackLatency(0.02),
		pulse.PlaybackSampleRate(eng.SampleRate()),
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("pulse.NewPlayback failed: %w", err)
	}
	return &pulseOutput{client: client, stream: stream}, nil
}

func (p *pulseOutput) Start() error {
	p.stream.Start()
	return nil
}

func (p *pulseOutput) Close() {
	p.stream.Close()
	p.client.Close()
}

type otoOutput struct {
	ctx    *oto.Context
	player *oto.Player
	eng    *intone.Engine
	buf    []float32
}

func newOtoOutput(eng *intone.Engine) (*otoOutput, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   eng.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("oto.NewContext failed: %w", err)
	}
	<-ready

	o := &otoOutput{ctx: ctx, eng: eng, buf: make([]float32, 1024)}
	o.player = ctx.NewPlayer(o)
	return o, nil
}

// Read converts the engine's float32 stream into the little-endian byte
// stream oto expects.
func (o *otoOutput) Read(p []byte) (int, error) {
	n := len(p) / 4
	if len(o.buf) < n {
		o.buf = make([]float32, n)
	}
	samples := o.buf[:n]
	o.eng.ReadSamples(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(s))
	}
	return n * 4, nil
}

func (o *otoOutput) Start() error {
	o.player.Play()
	return nil
}

func (o *otoOutput) Close() {
	o.player.Close()
}

// headlessOutput is a no-op device for running without audio.
type headlessOutput struct{}

func (headlessOutput) Start() error { return nil }
func (headlessOutput) Close()       {}
