// Package config loads theme settings from built-in defaults, an optional
// YAML file and PUBDOCS_* environment variables, in that order of
// increasing precedence.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/eringen/pubdocs/theme"
)

// EnvPrefix prefixes environment overrides. Nested keys are joined with
// underscores, e.g. PUBDOCS_HEAD_BASEURL or PUBDOCS_FEEDBACK_LABELS=a,b.
const EnvPrefix = "PUBDOCS"

// Load reads the settings and builds the validated theme configuration.
// An empty path uses defaults and the environment only.
func Load(path string) (*theme.Config, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	cfg, err := theme.New(s)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Str("baseURL", cfg.BaseURL()).Msg("theme configuration loaded")
	return cfg, nil
}

// LoadSettings merges defaults, the file at path and the environment into
// unvalidated Settings.
func LoadSettings(path string) (theme.Settings, error) {
	var s theme.Settings

	defaults, err := yaml.Marshal(theme.DefaultSettings())
	if err != nil {
		return s, fmt.Errorf("encode default settings: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return s, fmt.Errorf("read default settings: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return s, fmt.Errorf("read theme config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode theme config: %w", err)
	}
	return s, nil
}

// Encode writes s as YAML.
func Encode(w io.Writer, s theme.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
