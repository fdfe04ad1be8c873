package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigUnmarshal(t *testing.T) {
	var c Config
	err := json.Unmarshal([]byte(defaultConfig), &c)
	if err != nil {
		t.Fatalf("error unmarshalling: %v", err)
	}
	if err := c.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(c.BaseFrequencies) != 2 {
		t.Fatalf("expected 2 base frequencies, got %d", len(c.BaseFrequencies))
	}
	if len(c.Voices) != 3 {
		t.Fatalf("expected 3 voices, got %d", len(c.Voices))
	}
	if c.Waveform != "sine" {
		t.Fatalf("expected sine waveform, got %q", c.Waveform)
	}
}

func TestReadConfigCreatesDefault(t *testing.T) {
	p := filepath.Join(t.TempDir(), "intone.json")
	c, err := ReadConfig(p)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if len(c.Voices) == 0 {
		t.Fatal("expected seeded default voices")
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	base := func() Config {
		return Config{
			Waveform:        "square",
			BaseFrequencies: []float32{220},
			Voices:          []VoiceSpec{{Base: 0, Num: 3, Den: 2}},
		}
	}

	c := base()
	if err := c.validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	c = base()
	c.Waveform = "theremin"
	if err := c.validate(); err == nil {
		t.Error("expected error for unknown waveform")
	}

	c = base()
	c.Voices[0].Den = 0
	if err := c.validate(); err == nil {
		t.Error("expected error for zero denominator")
	}

	c = base()
	c.Voices[0].Base = 5
	if err := c.validate(); err == nil {
		t.Error("expected error for out-of-range base index")
	}

	c = base()
	c.BaseFrequencies[0] = -220
	if err := c.validate(); err == nil {
		t.Error("expected error for negative base frequency")
	}
}
