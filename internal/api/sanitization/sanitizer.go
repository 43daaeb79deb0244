package sanitization

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeField trims a single-line form value and removes control characters.
// HTML escaping is left to the templates, which escape contextually on render.
func SanitizeField(input string) string {
	return strings.TrimSpace(stripControl(input, false))
}

// SanitizeMessage normalizes a free-text value: line endings become \n,
// control characters other than newline and tab are removed and the result is trimmed.
func SanitizeMessage(input string) string {
	msg := strings.ReplaceAll(input, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	return strings.TrimSpace(stripControl(msg, true))
}

// SanitizeHeader collapses a value onto a single line so it is safe in a mail header
func SanitizeHeader(input string) string {
	safe := whitespaceRun.ReplaceAllString(input, " ")
	return strings.TrimSpace(stripControl(safe, false))
}

// SanitizeEmail trims an address and removes control characters
func SanitizeEmail(input string) string {
	return strings.TrimSpace(stripControl(input, false))
}

func stripControl(input string, keepNewlines bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r == '\n' && keepNewlines:
			return r
		case r == '\n', r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, input)
}
