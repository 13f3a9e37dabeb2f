package theme

import (
	"net/url"
	"strings"
)

// Head carries per-page SEO and social-card metadata for the <head> element.
type Head struct {
	CanonicalURL string // canonical + og:url
	Title        string
	Description  string
	SiteName     string
	Type         string // og:type
	Image        string // absolute og:image / twitter:image, may be empty
	Locale       string
	TwitterCard  string
	TwitterSite  string
	Favicon      string
	ThemeColor   string
}

// Tag is a single <meta> or <link> element. Exactly one of Name, Property
// or Rel is set.
type Tag struct {
	Element  string `json:"element"` // "meta" or "link"
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Rel      string `json:"rel,omitempty"`
	Content  string `json:"content,omitempty"`
	Href     string `json:"href,omitempty"`
}

func meta(property, content string) Tag {
	return Tag{Element: "meta", Property: property, Content: content}
}

func metaName(name, content string) Tag {
	return Tag{Element: "meta", Name: name, Content: content}
}

func link(rel, href string) Tag {
	return Tag{Element: "link", Rel: rel, Href: href}
}

// Tags returns the head elements in render order. Optional tags whose
// value is empty are left out.
func (h Head) Tags() []Tag {
	tags := make([]Tag, 0, 14)
	tags = append(tags,
		link("canonical", h.CanonicalURL),
		meta("og:url", h.CanonicalURL),
		meta("og:type", h.Type),
	)
	if h.SiteName != "" {
		tags = append(tags, meta("og:site_name", h.SiteName))
	}
	tags = append(tags,
		meta("og:title", h.Title),
		meta("og:description", h.Description),
	)
	if h.Image != "" {
		tags = append(tags, meta("og:image", h.Image))
	}
	if h.Locale != "" {
		tags = append(tags, meta("og:locale", h.Locale))
	}
	tags = append(tags, metaName("twitter:card", h.TwitterCard))
	if h.TwitterSite != "" {
		tags = append(tags, metaName("twitter:site", h.TwitterSite))
	}
	if h.Image != "" {
		tags = append(tags, metaName("twitter:image", h.Image))
	}
	tags = append(tags,
		metaName("theme-color", h.ThemeColor),
		link("icon", h.Favicon),
	)
	return tags
}

// CanonicalURL joins the base URL and a request path. The path is kept
// verbatim apart from the slashes at the join: an empty path yields the
// base URL, and a path without a leading slash gets one.
func (c *Config) CanonicalURL(requestPath string) string {
	return joinURL(c.s.Head.BaseURL, requestPath)
}

// HeadMetadata returns the head metadata for the page at requestPath.
func (c *Config) HeadMetadata(requestPath string) Head {
	h := c.s.Head
	return Head{
		CanonicalURL: c.CanonicalURL(requestPath),
		Title:        h.Title,
		Description:  h.Description,
		SiteName:     h.SiteName,
		Type:         "website",
		Image:        c.resolve(h.Image),
		Locale:       h.Locale,
		TwitterCard:  h.TwitterCard,
		TwitterSite:  h.TwitterSite,
		Favicon:      h.Favicon,
		ThemeColor:   c.ThemeColor(),
	}
}

// resolve turns a root-relative path into an absolute URL under the base.
func (c *Config) resolve(ref string) string {
	if !isRootRelative(ref) {
		return ref
	}
	return joinURL(c.s.Head.BaseURL, ref)
}

func joinURL(base, p string) string {
	base = strings.TrimRight(base, "/")
	if p == "" {
		return base
	}
	if p[0] == '?' || p[0] == '#' {
		return base + p
	}
	rest := ""
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p, rest = p[:i], p[i:]
	}
	return base + "/" + escapePath(strings.TrimLeft(p, "/")) + rest
}

// escapePath percent-encodes p unless it already is a valid encoding, so
// both "/a b" and "/a%20b" yield "/a%20b".
func escapePath(p string) string {
	u := &url.URL{Path: p, RawPath: p}
	if unescaped, err := url.PathUnescape(p); err == nil {
		u.Path = unescaped
	}
	return u.EscapedPath()
}

// isRootRelative reports whether ref is a path under the site root. A
// protocol-relative "//host/..." reference is not.
func isRootRelative(ref string) bool {
	return strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//")
}
