// Package assemble composes the tokenizer, classifier and capitalizer into
// the per-domain formatters. Every formatter is total: blank input is
// returned unchanged and any other input produces formatted output.
package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/domain"
	"github.com/baditaflorin/go_casefmt/internal/core/postal"
	"github.com/baditaflorin/go_casefmt/internal/core/rules"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// formatToken renders a classified token.
func formatToken(tok domain.Token, c *capitalize.Capitalizer) string {
	switch tok.Tag {
	case domain.PostalCode:
		return postal.Format(tok.Text)
	case domain.ZipCode:
		return tok.Text
	case domain.UppercaseAbbreviation, domain.RegionCode, domain.CountryCode:
		return rules.Fold(tok.Text)
	case domain.Ordinal, domain.CommonLowercaseWord:
		return strings.ToLower(tok.Text)
	case domain.CountryName:
		if name, ok := rules.CountryName(rules.Fold(tok.Text)); ok {
			return name
		}
	case domain.BusinessDesignator:
		if d, ok := rules.BusinessDesignator(rules.Fold(tok.Text)); ok {
			return d
		}
	}
	return c.Capitalize(tok.Text)
}
