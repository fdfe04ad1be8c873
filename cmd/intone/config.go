package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/just-intonation/intone"
)

// defaultConfig seeds a missing config file. The layout matches the
// session the program starts with when run without -config at all.
const defaultConfig = `
{
	"watchConfig": true,
	"waveform": "sine",
	"gain": -2.0,
	"baseFrequencies": [220, 253.4622],
	"voices": [
		{ "base": 0, "num": 5, "den": 3, "volume": 0 },
		{ "base": 0, "num": 1, "den": 1, "volume": 0 },
		{ "base": 1, "num": 3, "den": 2, "volume": 0 }
	]
}
`

// VoiceSpec describes one ratio voice: an index into baseFrequencies, an
// integer ratio, and a per-voice gain in [-6, 0].
type VoiceSpec struct {
	Base   int     `json:"base"`
	Num    uint32  `json:"num"`
	Den    uint32  `json:"den"`
	Volume float32 `json:"volume"`
}

type Config struct {
	WatchConfig     bool        `json:"watchConfig"`
	Waveform        string      `json:"waveform"`
	Gain            float32     `json:"gain"`
	BaseFrequencies []float32   `json:"baseFrequencies"`
	Voices          []VoiceSpec `json:"voices"`
}

// ReadConfig loads a config, writing the default first if the file does not
// exist yet.
func ReadConfig(p string) (*Config, error) {
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		err = os.WriteFile(p, []byte(defaultConfig), 0644)
		if err != nil {
			return nil, fmt.Errorf("can't write default config: %w", err)
		}
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	var c Config
	err = json.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if _, err := intone.ParseWaveform(c.Waveform); err != nil {
		return err
	}
	for i, hz := range c.BaseFrequencies {
		if hz <= 0 {
			return fmt.Errorf("baseFrequencies[%d]: frequency must be positive, got %v", i, hz)
		}
	}
	for i, v := range c.Voices {
		if v.Base < 0 || v.Base >= len(c.BaseFrequencies) {
			return fmt.Errorf("voices[%d]: base %d out of range", i, v.Base)
		}
		if v.Den == 0 {
			return fmt.Errorf("voices[%d]: ratio denominator must not be zero", i)
		}
	}
	return nil
}
