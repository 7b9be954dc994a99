package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizer = bluemonday.UGCPolicy()
	stripper  = bluemonday.StrictPolicy()
)

// Sanitize cleans user-generated HTML, keeping safe formatting. The result is
// unescaped again so plain text such as `Tom & Jerry's` is stored as sent.
func Sanitize(input string) string {
	return html.UnescapeString(sanitizer.Sanitize(input))
}

// SanitizeStrict removes all markup, for single-line fields such as titles.
func SanitizeStrict(input string) string {
	return html.UnescapeString(stripper.Sanitize(input))
}
