package theme

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func mustDefault(t *testing.T) *Config {
	t.Helper()
	c, err := New(DefaultSettings())
	require.NoError(t, err)
	return c
}

func TestNewDefaultSettings(t *testing.T) {
	c := mustDefault(t)

	assert.Equal(t, "Marcus AI", c.Logo().Text)
	assert.Equal(t, 700, c.Logo().FontWeight)
	assert.Equal(t, "https://github.com/lwgray/marcus", c.ProjectLink())
	assert.Equal(t, "https://discord.gg/your-discord", c.ChatLink())
	assert.Equal(t, "https://github.com/lwgray/marcus/tree/main/docs", c.DocsRepositoryBase())
	assert.Equal(t, 162, c.PrimaryHue())
	assert.Equal(t, Sidebar{DefaultMenuCollapseLevel: 1, ToggleButton: true}, c.Sidebar())
	assert.Equal(t, Navigation{Prev: true, Next: true}, c.Navigation())
	assert.Equal(t, TOC{Float: true, Title: "On This Page"}, c.TOC())
	assert.Equal(t, "Search documentation...", c.SearchPlaceholder())
	assert.Equal(t, "Edit this page on GitHub", c.EditLinkText())
	assert.Equal(t, "Questions? Give us feedback →", c.FeedbackText())
	assert.Equal(t, []string{"feedback"}, c.FeedbackLabels())
	assert.Equal(t, "%s – Marcus AI", c.TitleTemplate())
}

func TestPrimaryHueBounds(t *testing.T) {
	tests := []struct {
		hue     int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{162, false},
		{360, false},
		{361, true},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		s.PrimaryHue = tt.hue
		_, err := New(s)
		if !tt.wantErr {
			assert.NoError(t, err, "hue %d", tt.hue)
			continue
		}
		require.Error(t, err, "hue %d", tt.hue)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "hue %d: want *ValidationError, got %T", tt.hue, err)
		assert.Equal(t, "primaryHue", ve.Field)
		assert.Contains(t, err.Error(), "primaryHue")
	}
}

func TestProjectLinkMustBeAbsoluteURL(t *testing.T) {
	s := DefaultSettings()
	s.Project.Link = "not a url"
	_, err := New(s)
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "project/link", ve.Field)

	s.Project.Link = "https://example.com/repo"
	c, err := New(s)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/repo", c.ProjectLink())
}

func TestURLFieldsRejectRelativeAndOtherSchemes(t *testing.T) {
	for _, raw := range []string{"", "/docs", "ftp://example.com", "https://", "example.com"} {
		s := DefaultSettings()
		s.Chat.Link = raw
		_, err := New(s)
		assert.Error(t, err, "chat link %q", raw)
	}
}

func TestTitleTemplatePlaceholder(t *testing.T) {
	for _, tmpl := range []string{"Marcus AI", "%s | %s", "%d – Marcus AI"} {
		s := DefaultSettings()
		s.TitleTemplate = tmpl
		_, err := New(s)
		require.Error(t, err, "template %q", tmpl)
		var te *TemplateError
		require.True(t, errors.As(err, &te), "template %q: got %T", tmpl, err)
		assert.Equal(t, "titleTemplate", te.Field)
	}
}

func TestNewReportsEveryProblem(t *testing.T) {
	s := DefaultSettings()
	s.PrimaryHue = 400
	s.Project.Link = "nope"
	s.TOC.Title = " "
	s.TitleTemplate = "no placeholder"

	_, err := New(s)
	require.Error(t, err)
	msg := err.Error()
	for _, field := range []string{"primaryHue", "project/link", "toc/title", "titleTemplate"} {
		assert.Contains(t, msg, field)
	}
}

func TestNewValidatesRemainingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"empty logo", func(s *Settings) { s.Logo.Text = "" }, "logo/text"},
		{"odd font weight", func(s *Settings) { s.Logo.FontWeight = 750 }, "logo/fontWeight"},
		{"negative collapse level", func(s *Settings) { s.Sidebar.DefaultMenuCollapseLevel = -1 }, "sidebar/defaultMenuCollapseLevel"},
		{"empty search placeholder", func(s *Settings) { s.Search.Placeholder = "" }, "search/placeholder"},
		{"empty edit link text", func(s *Settings) { s.EditLink.Text = "" }, "editLink/text"},
		{"empty feedback text", func(s *Settings) { s.Feedback.Content = "" }, "feedback/content"},
		{"no feedback labels", func(s *Settings) { s.Feedback.Labels = []string{" ", ""} }, "feedback/labels"},
		{"unknown twitter card", func(s *Settings) { s.Head.TwitterCard = "huge" }, "head/twitterCard"},
		{"twitter handle without @", func(s *Settings) { s.Head.TwitterSite = "marcus" }, "head/twitterSite"},
		{"relative base url", func(s *Settings) { s.Head.BaseURL = "marcus-ai.dev" }, "head/baseURL"},
		{"bad image url", func(s *Settings) { s.Head.Image = "og.png" }, "head/image"},
		{"protocol-relative image", func(s *Settings) { s.Head.Image = "//cdn.example.com/og.png" }, "head/image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			_, err := New(s)
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestFeedbackLabelsNormalized(t *testing.T) {
	s := DefaultSettings()
	s.Feedback.Labels = []string{"feedback, docs", "docs", " triage "}
	c, err := New(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"feedback", "docs", "triage"}, c.FeedbackLabels())

	labels := c.FeedbackLabels()
	labels[0] = "mutated"
	assert.Equal(t, "feedback", c.FeedbackLabels()[0])
}

func TestConfigIsIsolatedFromInput(t *testing.T) {
	s := DefaultSettings()
	c, err := New(s)
	require.NoError(t, err)

	s.Feedback.Labels[0] = "changed"
	s.PrimaryHue = 10
	assert.Equal(t, []string{"feedback"}, c.FeedbackLabels())
	assert.Equal(t, 162, c.PrimaryHue())

	out := c.Settings()
	out.Feedback.Labels[0] = "changed"
	assert.Equal(t, "feedback", c.Settings().Feedback.Labels[0])
}

func TestTitle(t *testing.T) {
	c := mustDefault(t)
	assert.Equal(t, "Installation – Marcus AI", c.Title("Installation"))
	assert.Equal(t, "100% Coverage – Marcus AI", c.Title("100% Coverage"))
	assert.Equal(t, "Marcus AI - Intelligent Agent Coordination", c.Title(""))
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	s := DefaultSettings()
	s.PrimaryHue = 361
	assert.Panics(t, func() { MustNew(s) })
	assert.NotPanics(t, func() { MustNew(DefaultSettings()) })
}
