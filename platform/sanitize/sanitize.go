// Package sanitize cleans user-provided text before it is logged or mailed.
// It never rewrites markup; templates escape output themselves.
package sanitize

import (
	"regexp"
	"strings"
)

// controlRegex matches control characters except tab and newlines
var controlRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// Text removes control characters and keeps everything else as written.
func Text(s string) string {
	return controlRegex.ReplaceAllString(s, "")
}

// SingleLine sanitizes text that must fit on one line, such as an email subject.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}
