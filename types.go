package pubdocs

import "github.com/eringen/pubdocs/theme"

// themeResponse is the full theme as served to the documentation framework.
type themeResponse struct {
	theme.Settings
	ThemeColor string `json:"themeColor"`
}

// headResponse carries per-page head metadata.
type headResponse struct {
	Canonical string      `json:"canonical"`
	Title     string      `json:"title"`
	Tags      []theme.Tag `json:"tags"`
}

type footerResponse struct {
	theme.Footer
	Text string `json:"text"`
}

type titleResponse struct {
	Title string `json:"title"`
}

type linkResponse struct {
	URL    string   `json:"url"`
	Text   string   `json:"text"`
	Labels []string `json:"labels,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
