package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Output formats for step results.
const (
	FormatText    = "text"
	FormatLaTeX   = "latex"
	FormatRepr    = "repr"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack" // hex encoded
)

var (
	ErrNoWorksheet   = errors.New("no worksheet given")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrVerbosity     = errors.New("verbosity must be between 0 and 5")
)

// Config holds the resolved command line settings.
type Config struct {
	Worksheet string
	Format    string
	Verbosity int
	Workers   int
}

// DefaultConfig returns the settings used when no flag overrides them.
func DefaultConfig() Config {
	return Config{
		Format:    FormatText,
		Verbosity: 3,
	}
}

// Validate checks that the configuration can be used to run a worksheet.
func (c *Config) Validate() error {
	if c.Worksheet == "" {
		return ErrNoWorksheet
	}
	switch c.Format {
	case FormatText, FormatLaTeX, FormatRepr, FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("%w, got %d", ErrVerbosity, c.Verbosity)
	}
	return nil
}

// LogLevel maps the 0-5 verbosity onto a logrus level.
// 0 only reports panics, 5 traces every step.
func (c *Config) LogLevel() log.Level {
	switch c.Verbosity {
	case 0:
		return log.PanicLevel
	case 1:
		return log.ErrorLevel
	case 2:
		return log.WarnLevel
	case 3:
		return log.InfoLevel
	case 4:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}
