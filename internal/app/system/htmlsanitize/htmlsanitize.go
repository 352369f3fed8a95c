// Package htmlsanitize cleans user-supplied rich text before it is stored
// or rendered. Announcement messages may carry simple formatting (paragraphs,
// emphasis, lists, tables); everything executable is stripped.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once; bluemonday policies are safe for concurrent use.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Rich-text editors emit these beyond the UGC defaults.
	p.AllowElements("u", "s", "sub", "sup", "mark")

	// Tables keep their classes and inline alignment/sizing.
	tableElements := []string{"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption", "colgroup", "col"}
	p.AllowAttrs("class").OnElements(tableElements...)
	p.AllowAttrs("style").OnElements(tableElements...)

	return p
}

// Sanitize strips unsafe markup from s. Allowed formatting passes through
// unchanged; script, style, iframes, forms, and event handlers are removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no HTML tags. The check is a
// heuristic: a string needs both '<' and '>' before we treat it as markup,
// so text like "5 < 10" stays plain.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML converts plain text to minimal HTML: entities are escaped,
// newlines become <br>, and the whole thing is wrapped in a paragraph.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders either plain text or rich text safely: plain
// strings are converted with PlainTextToHTML, anything with markup is
// sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
