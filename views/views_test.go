package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pubdocs/theme"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testHead() theme.Head {
	return theme.Head{
		CanonicalURL: "https://marcus-ai.dev/docs/intro",
		Title:        "Marcus AI - Intelligent Agent Coordination",
		Description:  "Agents & humans <together>",
		Type:         "website",
		TwitterCard:  "summary_large_image",
		TwitterSite:  "@marcus",
		Favicon:      "/favicon.ico",
		ThemeColor:   "hsl(162, 100%, 45%)",
	}
}

func TestHeadRendersTags(t *testing.T) {
	got := render(t, Head(testHead(), "Intro – Marcus AI"))

	assert.Contains(t, got, "<title>Intro – Marcus AI</title>")
	assert.Contains(t, got, `<link rel="canonical" href="https://marcus-ai.dev/docs/intro">`)
	assert.Contains(t, got, `<meta property="og:url" content="https://marcus-ai.dev/docs/intro">`)
	assert.Contains(t, got, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, got, `<link rel="icon" href="/favicon.ico">`)
	assert.Contains(t, got, `<script type="application/ld+json">`)
}

func TestHeadEscapesValues(t *testing.T) {
	got := render(t, Head(testHead(), ""))

	assert.Contains(t, got, "<title>Marcus AI - Intelligent Agent Coordination</title>")
	assert.Contains(t, got, `content="Agents &amp; humans &lt;together&gt;"`)
	assert.NotContains(t, got, "<together>")
}

func TestWebsiteJsonLD(t *testing.T) {
	h := testHead()
	h.SiteName = "Marcus AI"
	h.Image = "https://marcus-ai.dev/og.png"

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(h)), &data))
	assert.Equal(t, "WebSite", data["@type"])
	assert.Equal(t, h.CanonicalURL, data["url"])
	assert.Equal(t, h.Image, data["image"])
	publisher, ok := data["publisher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Marcus AI", publisher["name"])

	assert.False(t, strings.Contains(WebsiteJsonLD(h), "<together>"), "JSON-LD must not carry raw angle brackets")
}

func TestLogo(t *testing.T) {
	got := render(t, Logo(theme.Logo{Text: "Marcus AI", FontWeight: 700, FontSize: "1.2rem"}))
	assert.Equal(t, `<span style="font-weight:700;font-size:1.2rem;">Marcus AI</span>`, got)

	got = render(t, Logo(theme.Logo{Text: "A&B"}))
	assert.Equal(t, `<span>A&amp;B</span>`, got)
}

func TestFooter(t *testing.T) {
	got := render(t, Footer(theme.Footer{
		Year:      2025,
		Holder:    "Marcus AI",
		Link:      "https://marcus-ai.dev",
		BuiltWith: "Built with Next.js and Nextra.",
	}))
	assert.Equal(t, `<span>2025 © <a href="https://marcus-ai.dev" target="_blank" rel="noopener">Marcus AI</a>. Built with Next.js and Nextra.</span>`, got)

	got = render(t, Footer(theme.Footer{Year: 2026, Holder: "Acme"}))
	assert.Equal(t, `<span>2026 © Acme.</span>`, got)
}
