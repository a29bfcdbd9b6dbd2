package app

import (
	"fmt"
	"io"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"chucknorris/internal/domain"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// logLevels are the accepted values of Config.LogLevel.
var logLevels = map[string]zerolog.Level{
	zerolog.LevelDebugValue: zerolog.DebugLevel,
	zerolog.LevelInfoValue:  zerolog.InfoLevel,
	zerolog.LevelWarnValue:  zerolog.WarnLevel,
	zerolog.LevelErrorValue: zerolog.ErrorLevel,
}

// Config holds runtime options for building the app.
type Config struct {
	Name     string `koanf:"name"`      // substituted for {name}
	Number   int    `koanf:"number"`    // template index, used when HasIndex
	HasIndex bool   `koanf:"has_index"` // false selects at random
	All      bool   `koanf:"all"`       // render every template
	Format   string `koanf:"format"`    // text, json or yaml
	LogLevel string `koanf:"log_level"` // zerolog level name

	Rand   domain.RandomSource `koanf:"-"` // optional; defaults to a process-wide source
	LogOut io.Writer           `koanf:"-"` // optional; defaults to os.Stderr
}

// Index returns the requested template index, or nil for a random pick.
func (c Config) Index() *int {
	if !c.HasIndex {
		return nil
	}
	i := c.Number
	return &i
}

// Defaults returns the default option values keyed as in Config's koanf tags.
func Defaults() map[string]any {
	return map[string]any{
		"name":      domain.DefaultName,
		"number":    0,
		"has_index": false,
		"all":       false,
		"format":    FormatText,
		"log_level": zerolog.LevelWarnValue,
	}
}

// LoadConfig layers overrides on top of Defaults and unmarshals the result.
// Keys absent from overrides keep their default.
func LoadConfig(overrides map[string]any) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks option values that the flag parser cannot.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", domain.ErrUnknownFormat, c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (zerolog.Level, error) {
	level, ok := logLevels[c.LogLevel]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("%w %q (want debug, info, warn or error)", domain.ErrUnknownLogLevel, c.LogLevel)
	}
	return level, nil
}
