package main

import (
	"testing"

	"github.com/just-intonation/intone"
)

func TestNewAudioOutputHeadless(t *testing.T) {
	eng := intone.New(44100)
	out, err := NewAudioOutput("none", eng)
	if err != nil {
		t.Fatalf("NewAudioOutput(none): %v", err)
	}
	if err := out.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	out.Close()
}

func TestNewAudioOutputUnknownBackend(t *testing.T) {
	if _, err := NewAudioOutput("gramophone", intone.New(48000)); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
