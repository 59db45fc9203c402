package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the maximum length for task titles in logs
	MaxTitleLength = 200
	// MaxDescriptionLength is the maximum length for task descriptions in logs
	MaxDescriptionLength = 500
	// MaxGeneralStringLength is the maximum length for general strings in logs
	MaxGeneralStringLength = 2000
)

// SanitizeString sanitizes a user-supplied string for safe logging.
// Removes control characters, truncates to maxLength bytes on a rune
// boundary, and validates UTF-8.
func SanitizeString(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = MaxGeneralStringLength
	}
	s = sanitizeFilterRunes(s)
	if len(s) > maxLength {
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}

// sanitizeFilterRunes validates UTF-8 and removes control characters (keeps printable, space, tab).
// Newlines are dropped so a description cannot forge extra log lines.
func sanitizeFilterRunes(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// SanitizeTitle sanitizes a task title for safe logging
func SanitizeTitle(title string) string {
	return SanitizeString(title, MaxTitleLength)
}

// SanitizeDescription sanitizes a task description for safe logging
func SanitizeDescription(description string) string {
	return SanitizeString(description, MaxDescriptionLength)
}
