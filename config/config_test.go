package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/eringen/pubdocs/theme"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Marcus AI", cfg.Logo().Text)
	assert.Equal(t, 162, cfg.PrimaryHue())
	assert.Equal(t, []string{"feedback"}, cfg.FeedbackLabels())
	assert.True(t, cfg.Sidebar().ToggleButton)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := Load("testdata/theme.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Acme Docs", cfg.Logo().Text)
	assert.Equal(t, 700, cfg.Logo().FontWeight, "unset keys keep their defaults")
	assert.Equal(t, "https://github.com/acme/widgets", cfg.ProjectLink())
	assert.Equal(t, "https://docs.acme.test", cfg.BaseURL())
	assert.Equal(t, 210, cfg.PrimaryHue())
	assert.False(t, cfg.Sidebar().ToggleButton)
	assert.Equal(t, 1, cfg.Sidebar().DefaultMenuCollapseLevel)
	assert.Equal(t, []string{"docs-feedback"}, cfg.FeedbackLabels())
	assert.Equal(t, "Setup | Acme", cfg.Title("Setup"))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("PUBDOCS_PRIMARYHUE", "12")
	t.Setenv("PUBDOCS_HEAD_BASEURL", "https://staging.acme.test")
	t.Setenv("PUBDOCS_FEEDBACK_LABELS", "docs,triage")
	t.Setenv("PUBDOCS_NAVIGATION_PREV", "false")

	cfg, err := Load("testdata/theme.yaml")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.PrimaryHue())
	assert.Equal(t, "https://staging.acme.test/docs", cfg.CanonicalURL("/docs"))
	assert.Equal(t, []string{"docs", "triage"}, cfg.FeedbackLabels())
	assert.False(t, cfg.Navigation().Prev)
	assert.True(t, cfg.Navigation().Next)
}

func TestLoadInvalidFileFailsWithEveryField(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	require.Error(t, err)

	var ve *theme.ValidationError
	assert.True(t, errors.As(err, &ve))
	var te *theme.TemplateError
	assert.True(t, errors.As(err, &te))
	for _, field := range []string{"primaryHue", "project/link", "titleTemplate"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvInvalidValue(t *testing.T) {
	t.Setenv("PUBDOCS_PRIMARYHUE", "361")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primaryHue")
}

func TestEncodeRoundTripsThroughLoader(t *testing.T) {
	s := theme.DefaultSettings()
	s.Logo.Text = "Round Trip"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "titleTemplate")

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
