package demo

import (
	"strings"

	sanitize "github.com/mrz1836/go-sanitize"
)

// CleanLabel reduces a user-supplied bar label to a single trimmed line so
// embedded line breaks cannot corrupt the in-place redraw. If nothing
// printable remains, fallback is returned.
func CleanLabel(s, fallback string) string {
	s = strings.TrimSpace(sanitize.SingleLine(s))
	if s == "" {
		return fallback
	}
	return s
}
