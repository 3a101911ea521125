package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/classify"
	"github.com/baditaflorin/go_casefmt/internal/core/domain"
	"github.com/baditaflorin/go_casefmt/internal/core/postal"
	"github.com/baditaflorin/go_casefmt/internal/core/rules"
	"github.com/baditaflorin/go_casefmt/internal/core/tokenize"
)

// Address formats comma-separated postal addresses.
type Address struct {
	capitalizer *capitalize.Capitalizer
	classifier  *classify.Classifier
}

// NewAddress returns an address formatter. Generic words are capitalized
// with c.
func NewAddress(c *capitalize.Capitalizer) *Address {
	return &Address{
		capitalizer: c,
		classifier: classify.New(
			domain.PostalCode,
			domain.ZipCode,
			domain.UppercaseAbbreviation,
			domain.Ordinal,
			domain.RegionCode,
			domain.CountryCode,
			domain.CountryName,
			domain.CommonLowercaseWord,
		),
	}
}

// Format returns the display form of an address. Parts are joined with ", "
// and words within a part with a single space.
func (a *Address) Format(text string) string {
	if isBlank(text) {
		return text
	}
	parts := tokenize.AddressParts(text)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, a.formatPart(p))
	}
	return strings.Join(out, ", ")
}

func (a *Address) formatPart(part string) string {
	if postal.IsCanadian(part) {
		return postal.Format(part)
	}
	if name, ok := rules.CountryName(rules.Fold(strings.Join(strings.Fields(part), " "))); ok {
		return name
	}

	tokens := tokenize.Words(part)
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		// a spaced postal code arrives as two tokens
		if i+1 < len(tokens) {
			pair := tokens[i].Text + " " + tokens[i+1].Text
			if postal.IsCanadian(pair) {
				out = append(out, postal.Format(pair))
				i++
				continue
			}
		}
		out = append(out, formatToken(a.classifier.ClassifyToken(tokens[i]), a.capitalizer))
	}
	return strings.Join(out, " ")
}
