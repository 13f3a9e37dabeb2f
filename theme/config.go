// Package theme holds the documentation site's theme configuration: logo,
// navigation, SEO metadata, footer text and search placeholder.
//
// A Config is built once from Settings with New, which validates every
// field and fails on the first start-up instead of at render time. After
// that the Config is read-only and may be shared by any number of
// concurrent renders. Values that depend on the page being rendered
// (footer year, canonical URL, page title) are computed by pure methods
// that take those inputs as parameters.
package theme

import (
	"strings"
)

const (
	// TitlePlaceholder is replaced by the page title in TitleTemplate.
	TitlePlaceholder = "%s"

	MinHue = 0
	MaxHue = 360
)

var twitterCards = []string{"summary", "summary_large_image", "app", "player"}

// Config is the validated, immutable theme configuration.
type Config struct {
	s Settings
}

// Logo is the text logo with its style hints.
type Logo struct {
	Text       string
	FontWeight int
	FontSize   string
}

type Sidebar struct {
	DefaultMenuCollapseLevel int
	ToggleButton             bool
}

type Navigation struct {
	Prev bool
	Next bool
}

type TOC struct {
	Float bool
	Title string
}

// New validates s and returns the Config built from it. All problems are
// reported together; each is a *ValidationError or a *TemplateError.
func New(s Settings) (*Config, error) {
	s = s.clone()
	s.Head.BaseURL = strings.TrimRight(strings.TrimSpace(s.Head.BaseURL), "/")
	s.DocsRepositoryBase = strings.TrimRight(strings.TrimSpace(s.DocsRepositoryBase), "/")
	s.Project.Link = strings.TrimRight(strings.TrimSpace(s.Project.Link), "/")
	s.Feedback.Labels = normalizeLabels(s.Feedback.Labels)

	v := &validator{}
	s.validate(v)
	if err := v.err(); err != nil {
		return nil, err
	}
	return &Config{s: s}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(s Settings) *Config {
	c, err := New(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (s *Settings) validate(v *validator) {
	v.requireString("logo/text", s.Logo.Text)
	if s.Logo.FontWeight != 0 {
		if v.requireRange("logo/fontWeight", s.Logo.FontWeight, 100, 900) && s.Logo.FontWeight%100 != 0 {
			v.invalid("logo/fontWeight", s.Logo.FontWeight, "must be a multiple of 100")
		}
	}

	v.requireURL("project/link", s.Project.Link)
	v.requireURL("chat/link", s.Chat.Link)
	v.requireURL("docsRepositoryBase", s.DocsRepositoryBase)

	v.requireString("footer/holder", s.Footer.Holder)
	v.requireURL("footer/link", s.Footer.Link)

	v.requireURL("head/baseURL", s.Head.BaseURL)
	v.requireString("head/title", s.Head.Title)
	v.requireString("head/description", s.Head.Description)
	v.requireOneOf("head/twitterCard", s.Head.TwitterCard, twitterCards)
	if s.Head.TwitterSite != "" && !strings.HasPrefix(s.Head.TwitterSite, "@") {
		v.invalid("head/twitterSite", s.Head.TwitterSite, "must start with @")
	}
	v.requireString("head/favicon", s.Head.Favicon)
	if s.Head.Image != "" && !isRootRelative(s.Head.Image) {
		v.requireURL("head/image", s.Head.Image)
	}

	v.requireRange("primaryHue", s.PrimaryHue, MinHue, MaxHue)
	v.requireMin("sidebar/defaultMenuCollapseLevel", s.Sidebar.DefaultMenuCollapseLevel, 0)
	v.requireString("toc/title", s.TOC.Title)
	v.requireString("search/placeholder", s.Search.Placeholder)
	v.requireString("editLink/text", s.EditLink.Text)
	v.requireString("feedback/content", s.Feedback.Content)
	if len(s.Feedback.Labels) == 0 {
		v.invalid("feedback/labels", s.Feedback.Labels, "at least one label is required")
	}

	if v.requireString("titleTemplate", s.TitleTemplate) {
		v.requirePlaceholder("titleTemplate", s.TitleTemplate, TitlePlaceholder)
	}
}

// normalizeLabels trims labels, splits comma-joined entries and drops
// empties and duplicates while keeping order.
func normalizeLabels(labels []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, l := range labels {
		for _, part := range strings.Split(l, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Logo() Logo {
	return Logo{Text: c.s.Logo.Text, FontWeight: c.s.Logo.FontWeight, FontSize: c.s.Logo.FontSize}
}

func (c *Config) ProjectLink() string        { return c.s.Project.Link }
func (c *Config) ChatLink() string           { return c.s.Chat.Link }
func (c *Config) DocsRepositoryBase() string { return c.s.DocsRepositoryBase }
func (c *Config) BaseURL() string            { return c.s.Head.BaseURL }
func (c *Config) PrimaryHue() int            { return c.s.PrimaryHue }
func (c *Config) SearchPlaceholder() string  { return c.s.Search.Placeholder }
func (c *Config) EditLinkText() string       { return c.s.EditLink.Text }
func (c *Config) FeedbackText() string       { return c.s.Feedback.Content }
func (c *Config) TitleTemplate() string      { return c.s.TitleTemplate }

func (c *Config) Sidebar() Sidebar {
	return Sidebar{
		DefaultMenuCollapseLevel: c.s.Sidebar.DefaultMenuCollapseLevel,
		ToggleButton:             c.s.Sidebar.ToggleButton,
	}
}

func (c *Config) Navigation() Navigation {
	return Navigation{Prev: c.s.Navigation.Prev, Next: c.s.Navigation.Next}
}

func (c *Config) TOC() TOC {
	return TOC{Float: c.s.TOC.Float, Title: c.s.TOC.Title}
}

// FeedbackLabels returns a copy of the labels attached to feedback issues.
func (c *Config) FeedbackLabels() []string {
	return append([]string(nil), c.s.Feedback.Labels...)
}

// Settings returns a deep copy of the validated settings.
func (c *Config) Settings() Settings {
	return c.s.clone()
}

// Title applies the title template to a page title. An empty page title
// yields the site-wide head title.
func (c *Config) Title(pageTitle string) string {
	if strings.TrimSpace(pageTitle) == "" {
		return c.s.Head.Title
	}
	return strings.Replace(c.s.TitleTemplate, TitlePlaceholder, pageTitle, 1)
}
