// Package logging configures the global zerolog logger for the CLI and server.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// Setup installs a global logger writing to w at the given level.
// Pretty selects the human-readable console writer.
func Setup(w io.Writer, level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// LoadFile replaces the global logger with one compiled from a zeroconfig
// YAML file (see go.mau.fi/zeroconfig for the format).
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read log config %s: %w", path, err)
	}
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse log config %s: %w", path, err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("compile log config %s: %w", path, err)
	}
	log.Logger = *logger
	return nil
}
