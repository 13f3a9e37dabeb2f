package theme

import (
	"net/url"
	"strings"
)

// EditURL returns the repository URL for editing the page source at
// filePath, relative to the docs repository base.
func (c *Config) EditURL(filePath string) string {
	return joinURL(c.s.DocsRepositoryBase, strings.TrimLeft(filePath, "/"))
}

// FeedbackURL returns the link that opens a new issue on the project,
// titled after the page and tagged with the feedback labels.
func (c *Config) FeedbackURL(pageTitle string) string {
	if strings.TrimSpace(pageTitle) == "" {
		pageTitle = c.s.Head.Title
	}
	q := url.Values{}
	q.Set("title", "Feedback for “"+pageTitle+"”")
	q.Set("labels", strings.Join(c.s.Feedback.Labels, ","))
	return joinURL(c.s.Project.Link, "issues/new") + "?" + q.Encode()
}
