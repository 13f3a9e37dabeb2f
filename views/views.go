// Package views renders theme data as HTML fragments. The documentation
// framework may use these components or render the same data itself.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/pubdocs/theme"
)

func component(fn func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Head renders the <title>, meta/link tags and JSON-LD for one page.
// An empty title falls back to the head's site title.
func Head(h theme.Head, title string) templ.Component {
	if title == "" {
		title = h.Title
	}
	return component(func(buf *bytes.Buffer) {
		buf.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
		for _, t := range h.Tags() {
			writeTag(buf, t)
			buf.WriteByte('\n')
		}
		buf.WriteString(`<script type="application/ld+json">`)
		buf.WriteString(WebsiteJsonLD(h))
		buf.WriteString("</script>\n")
	})
}

func writeTag(buf *bytes.Buffer, t theme.Tag) {
	buf.WriteString("<" + t.Element)
	attr := func(name, value string) {
		if value != "" {
			buf.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
		}
	}
	attr("name", t.Name)
	attr("property", t.Property)
	attr("rel", t.Rel)
	attr("content", t.Content)
	attr("href", t.Href)
	buf.WriteString(">")
}

// Logo renders the text logo with its style hints inline.
func Logo(l theme.Logo) templ.Component {
	return component(func(buf *bytes.Buffer) {
		style := ""
		if l.FontWeight != 0 {
			style += "font-weight:" + strconv.Itoa(l.FontWeight) + ";"
		}
		if l.FontSize != "" {
			style += "font-size:" + l.FontSize + ";"
		}
		buf.WriteString("<span")
		if style != "" {
			buf.WriteString(` style="` + html.EscapeString(style) + `"`)
		}
		buf.WriteString(">" + html.EscapeString(l.Text) + "</span>")
	})
}

// Footer renders the footer line with the holder linked.
func Footer(f theme.Footer) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString("<span>")
		buf.WriteString(strconv.Itoa(f.Year) + " © ")
		if f.Link != "" {
			buf.WriteString(`<a href="` + html.EscapeString(f.Link) + `" target="_blank" rel="noopener">`)
			buf.WriteString(html.EscapeString(f.Holder))
			buf.WriteString("</a>")
		} else {
			buf.WriteString(html.EscapeString(f.Holder))
		}
		buf.WriteByte('.')
		if f.BuiltWith != "" {
			buf.WriteString(" " + html.EscapeString(f.BuiltWith))
		}
		buf.WriteString("</span>")
	})
}
