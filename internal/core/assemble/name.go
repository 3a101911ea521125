package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/tokenize"
)

// Name formats personal names. Every whitespace-separated token is
// capitalized as a generic word and the tokens are joined by single spaces.
type Name struct {
	capitalizer *capitalize.Capitalizer
}

// NewName returns a person name formatter using c.
func NewName(c *capitalize.Capitalizer) *Name {
	return &Name{capitalizer: c}
}

// Format returns the display form of a personal name.
func (n *Name) Format(text string) string {
	if isBlank(text) {
		return text
	}
	tokens := tokenize.Words(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = n.capitalizer.Capitalize(tok.Text)
	}
	return strings.Join(out, " ")
}
