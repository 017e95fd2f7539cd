package domain

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSpace    = regexp.MustCompile(`[\s_]+`)
	slugHyphens  = regexp.MustCompile(`-{2,}`)
	slugTrimEdge = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts a display name to its URL-safe slug.
// e.g. "Kalanggaman Island!" → "kalanggaman-island"
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return slugTrimEdge.ReplaceAllString(s, "")
}

// FormatFee returns the entrance fee for display, "Free" when empty.
func FormatFee(fee string) string {
	if t := strings.TrimSpace(fee); t != "" {
		return t
	}
	return "Free"
}

// FormatHours returns the opening hours for display, "Open daily" when empty.
func FormatHours(hours string) string {
	if t := strings.TrimSpace(hours); t != "" {
		return t
	}
	return "Open daily"
}

// Paragraphs splits a description on line breaks, dropping blank lines.
func Paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
