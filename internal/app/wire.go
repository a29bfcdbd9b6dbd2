package app

import (
	"os"

	"github.com/rs/zerolog"

	"chucknorris/internal/domain"
	"chucknorris/internal/quips"
	"chucknorris/internal/services/selector"
)

// Wire bundles the services and logger for the CLI.
type Wire struct {
	Quips domain.QuipService
	Log   zerolog.Logger
}

// NewWire validates cfg and constructs the dependency graph from it.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	// Logs go to stderr; stdout carries quips only.
	out := cfg.LogOut
	if out == nil {
		out = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	store := quips.Default()
	svc := selector.New(store, cfg.Rand, logger.With().Str("component", "selector").Logger())

	logger.Debug().Int("templates", store.Len()).Msg("wired quip selector")

	return &Wire{
		Quips: svc,
		Log:   logger,
	}, nil
}
