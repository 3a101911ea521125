package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/postal"
	"github.com/baditaflorin/go_casefmt/internal/core/rules"
)

// PostalCode formats a standalone postal or ZIP code.
type PostalCode struct{}

// NewPostalCode returns a postal code formatter.
func NewPostalCode() *PostalCode {
	return &PostalCode{}
}

// Format normalizes Canadian postal codes and passes everything else through.
func (PostalCode) Format(text string) string {
	return postal.Format(text)
}

// Country formats a standalone country code or country name.
type Country struct{}

// NewCountry returns a country formatter.
func NewCountry() *Country {
	return &Country{}
}

// Format uppercases a known country code and returns the display form of a
// known country name. Anything else is returned unchanged.
func (Country) Format(text string) string {
	if isBlank(text) {
		return text
	}
	folded := rules.Fold(strings.Join(strings.Fields(text), " "))
	if rules.IsCountryCode(folded) {
		return folded
	}
	if name, ok := rules.CountryName(folded); ok {
		return name
	}
	return text
}
