// Package sanitize scrubs outgoing order text before it is handed to the
// messaging dispatcher. The storefront forwards free-form user input, so any
// URL-looking token or token smuggling the forbidden keyword is dropped.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	httpURLs   = regexp.MustCompile(`(?i)https?://\S+`)
	wwwURLs    = regexp.MustCompile(`(?i)www\.\S+`)
	keywordTok = regexp.MustCompile(`(?i)\S*github\S*`)
	blankLines = regexp.MustCompile(`\n{2,}`)
	hSpaceRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// OrderText strips URL-like substrings and any token containing the forbidden
// keyword, then collapses the whitespace damage left behind. The transforms
// apply in a fixed order and the whole function is idempotent.
func OrderText(s string) string {
	if s == "" {
		return ""
	}
	s = httpURLs.ReplaceAllString(s, "")
	s = wwwURLs.ReplaceAllString(s, "")
	s = keywordTok.ReplaceAllString(s, "")
	s = blankLines.ReplaceAllString(s, "\n")
	s = hSpaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
