// Package config loads the f18expr settings file.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatANSI = "ansi"
	FormatHTML = "html"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting. The zero value is not valid; start from
// Default.
type Config struct {
	Output Output `yaml:"output"`
	Fold   Fold   `yaml:"fold"`
	Log    Log    `yaml:"log"`
}

// Output controls how dumps and diagnostics are rendered.
type Output struct {
	Format string `yaml:"format"` // ansi or html
	Color  string `yaml:"color"`  // auto, always or never
}

// Fold controls integer constant folding.
type Fold struct {
	Enabled bool `yaml:"enabled"`
	// Diagnostics turns overflow reports on. When off, folding still wraps
	// but says nothing.
	Diagnostics bool `yaml:"diagnostics"`
}

type Log struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Output: Output{Format: FormatANSI, Color: ColorAuto},
		Fold:   Fold{Enabled: true, Diagnostics: true},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML settings over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decoding")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatANSI, FormatHTML:
	default:
		return errors.Newf("output.format must be %q or %q, got %q", FormatANSI, FormatHTML, c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// Debug reports whether debug logging was asked for.
func (c *Config) Debug() bool { return c.Log.Level == "debug" }

// Logger builds a console logger on standard error that keeps entries at or
// above log.level. The debug level uses zap's development settings.
func (c *Config) Logger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, errors.Wrapf(err, "log.level %q", c.Log.Level)
	}
	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	l, err := zc.Build()
	return l, errors.Wrap(err, "creating logger")
}
