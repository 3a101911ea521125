// Package postal recognizes and formats Canadian postal codes and US ZIP codes.
package postal

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	canadianRegex = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)
	zipRegex      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// IsCanadian reports whether s has the shape A1A1A1 or A1A 1A1, in any case.
func IsCanadian(s string) bool {
	return canadianRegex.MatchString(s)
}

// IsZip reports whether s is a five digit ZIP, optionally followed by -NNNN.
func IsZip(s string) bool {
	return zipRegex.MatchString(s)
}

// Format normalizes a Canadian postal code to "A1A 1A1" and passes ZIP codes
// through. Input matching neither shape is returned unchanged.
func Format(s string) string {
	trimmed := strings.TrimSpace(s)
	switch {
	case IsCanadian(trimmed):
		return formatCanadian(trimmed)
	case IsZip(trimmed):
		return trimmed
	default:
		return s
	}
}

func formatCanadian(s string) string {
	compact := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
	return compact[:3] + " " + compact[3:]
}
