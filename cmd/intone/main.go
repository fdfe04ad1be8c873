package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"

	"github.com/just-intonation/intone"
)

var cfg struct {
	SampleRate int
	Backend    string
	ConfigFile string
	LogLevel   string
}

func init() {
	flag.IntVar(&cfg.SampleRate, "sample-rate", 48000, "output sample rate in Hz")
	flag.StringVar(&cfg.Backend, "backend", "pulse", "audio backend: pulse, oto, or none")
	flag.StringVar(&cfg.ConfigFile, "config", "", "layout config file, created with defaults if not found")
	flag.StringVar(&cfg.LogLevel, "log-level", "error", "minimum level of messages to log to console")
}

func main() {
	log.Logger = zerolog.New(
		zerolog.ConsoleWriter{
			Out: os.Stderr,
		},
	).With().Timestamp().Logger()

	flag.Parse()

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Str("level", cfg.LogLevel).Msg("Unknown log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	eng := intone.New(cfg.SampleRate)
	session := NewSession(eng)

	var fileConfig *Config
	if cfg.ConfigFile != "" {
		fileConfig, err = ReadConfig(cfg.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("can't read config")
		}
		if err := session.Apply(fileConfig); err != nil {
			log.Fatal().Err(err).Msg("bad config")
		}
	} else {
		defaultSession(session)
	}

	output, err := NewAudioOutput(cfg.Backend, eng)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend).Msg("can't open audio output")
	}
	defer output.Close()

	eng.Play()
	if err := output.Start(); err != nil {
		log.Fatal().Err(err).Msg("can't start audio output")
	}

	p := tea.NewProgram(newUI(session, eng), tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	if fileConfig != nil && fileConfig.WatchConfig {
		err := WatchConfig(cfg.ConfigFile, func(c *Config) {
			p.Send(configMsg{cfg: c})
		}, done)
		if err != nil {
			log.Fatal().Err(err).Msg("can't watch config")
		}
	}

	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("UI error")
	}
}

// defaultSession is the layout the program starts with when no config file
// is given: two base frequencies and three ratio voices.
func defaultSession(s *Session) {
	s.AddBase(220.0)
	s.AddBase(253.4622)
	s.AddVoice(0, intone.Ratio{Num: 5, Den: 3}, intone.NewGain(0))
	s.AddVoice(0, intone.Ratio{Num: 1, Den: 1}, intone.NewGain(0))
	s.AddVoice(1, intone.Ratio{Num: 3, Den: 2}, intone.NewGain(0))
}
