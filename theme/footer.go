package theme

import (
	"strconv"
	"strings"
)

// Footer is the structured footer line for one render.
type Footer struct {
	Year      int    `json:"year"`
	Holder    string `json:"holder"`
	Link      string `json:"link"`
	BuiltWith string `json:"builtWith,omitempty"`
}

// Text renders the footer as plain text, e.g.
// "2025 © Marcus AI. Built with Next.js and Nextra."
func (f Footer) Text() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(f.Year))
	b.WriteString(" © ")
	b.WriteString(f.Holder)
	b.WriteByte('.')
	if f.BuiltWith != "" {
		b.WriteByte(' ')
		b.WriteString(f.BuiltWith)
	}
	return b.String()
}

// FooterText returns the footer for the given year. Callers pass the
// current year on every render so long-running processes roll over.
func (c *Config) FooterText(year int) Footer {
	return Footer{
		Year:      year,
		Holder:    c.s.Footer.Holder,
		Link:      c.s.Footer.Link,
		BuiltWith: c.s.Footer.BuiltWith,
	}
}
