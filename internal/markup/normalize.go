// Package markup turns the HTML-ish text blobs served by the Archives of
// Nethys index into plain text suitable for regex extraction and display.
package markup

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strip = bluemonday.StrictPolicy()
	ws    = regexp.MustCompile(`\s+`)
)

// Normalize removes markup tags, unescapes HTML entities and collapses runs
// of whitespace to a single space. Already-normalized text passes through
// unchanged, with one caveat: an entity that decodes into tag-shaped text
// ("&lt;b&gt;" becomes "<b>") is stripped by a second pass.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// StrictPolicy drops every tag but re-escapes the remaining text, so
	// entity unescaping has to happen after sanitizing.
	text = strip.Sanitize(text)
	text = html.UnescapeString(text)
	return strings.TrimSpace(ws.ReplaceAllString(text, " "))
}
