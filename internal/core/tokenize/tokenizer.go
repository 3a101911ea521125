// Package tokenize splits raw input into the token sequences consumed by the
// assemblers. Tokenizing never fails: any string yields zero or more segments.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_casefmt/internal/core/domain"
)

// Segment is one piece of a city name: either a word or a retained boundary.
type Segment struct {
	Text      string
	Separator bool
}

// Words splits text on runs of whitespace and returns positioned tokens.
// Empty segments produced by repeated separators are dropped.
func Words(text string) []domain.Token {
	fields := strings.Fields(text)
	tokens := make([]domain.Token, 0, len(fields))
	for i, f := range fields {
		tokens = append(tokens, domain.Token{Text: f, Position: i})
	}
	return tokens
}

// AddressParts splits text on commas, trims every part and drops empty ones.
func AddressParts(text string) []string {
	raw := strings.Split(text, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// CitySegments splits text on space and hyphen boundaries, keeping the
// boundaries as separator segments. A run of whitespace becomes one space.
func CitySegments(text string) []Segment {
	text = strings.TrimSpace(text)
	var segments []Segment
	var word strings.Builder
	inSpace := false

	flush := func() {
		if word.Len() > 0 {
			segments = append(segments, Segment{Text: word.String()})
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
			if !inSpace {
				segments = append(segments, Segment{Text: " ", Separator: true})
				inSpace = true
			}
			continue
		case r == '-':
			flush()
			segments = append(segments, Segment{Text: "-", Separator: true})
		default:
			word.WriteRune(r)
		}
		inSpace = false
	}
	flush()

	return segments
}
