package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/tokenize"
)

// City formats city names. Spaces and hyphens are kept as boundaries and
// every word between them is capitalized.
type City struct {
	capitalizer *capitalize.Capitalizer
}

// NewCity returns a city name formatter using c.
func NewCity(c *capitalize.Capitalizer) *City {
	return &City{capitalizer: c}
}

// Format returns the display form of a city name.
func (c *City) Format(text string) string {
	if isBlank(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range tokenize.CitySegments(text) {
		if seg.Separator {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(c.capitalizer.Capitalize(seg.Text))
	}
	return b.String()
}
