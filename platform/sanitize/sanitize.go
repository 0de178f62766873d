// Package sanitize provides text sanitization for values shown to staff.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	// spaceRegex matches runs of whitespace, including newlines
	spaceRegex = regexp.MustCompile(`\s+`)
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Line strips HTML and collapses whitespace so s fits on one line, cut to
// at most max runes. A max of zero or less disables truncation.
func Line(s string, max int) string {
	result := spaceRegex.ReplaceAllString(StripHTML(s), " ")
	if max > 0 {
		runes := []rune(result)
		if len(runes) > max {
			result = string(runes[:max]) + "…"
		}
	}
	return result
}
