package views

import (
	"encoding/json"

	"github.com/eringen/pubdocs/theme"
)

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the page
// described by h.
func WebsiteJsonLD(h theme.Head) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     h.Title,
		"url":      h.CanonicalURL,
	}
	if h.Description != "" {
		data["description"] = h.Description
	}
	if h.SiteName != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  h.SiteName,
		}
	}
	if h.Image != "" {
		data["image"] = h.Image
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
