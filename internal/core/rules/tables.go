// Package rules holds the static classification tables shared by every
// formatter. All tables are built once at package init and never mutated, so
// they may be read concurrently without synchronization.
package rules

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the case-folded lookup key for s. Table keys are stored in this
// form. A new Caser is created per call because Casers carry state.
func Fold(s string) string {
	return cases.Upper(language.Und).String(s)
}

var uppercaseAbbreviations = newSet(
	"PO", "RR", "NE", "NW", "SE", "SW",
)

var regionCodes = newSet(
	// Canadian provinces and territories
	"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT",
	// U.S. states and territories
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL",
	"IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT",
	"NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
)

var countryCodes = newSet(
	"US", "CA", "GB", "FR", "DE", "IT", "ES", "AU", "JP", "CN", "IN", "RU", "ZA",
	"USA", "CAN", "GBR", "FRA", "DEU", "ITA", "ESP", "AUS", "JPN", "CHN", "IND",
	"RUS", "ZAF",
)

var countryNames = newCanonical(
	"United States", "United States of America", "Canada", "United Kingdom",
	"France", "Germany", "Italy", "Spain", "Australia", "Japan", "China",
	"India", "Russia", "South Africa",
)

var businessDesignators = newCanonical(
	"LLC", "LLP", "Inc.", "Inc", "Ltd.", "Ltd", "Corp.", "Corp", "Co.",
	"Company", "Group", "Partners", "PLC", "GmbH", "AG",
	"SARL", "SA", "EURL", "SNC", "SAS", "SASU", "GIE", "SCI", "EI",
)

// Tokens never contain whitespace, so the multi-word entries never match on
// their own; "DE LA CRUZ" is cased word by word.
var namePrefixes = newCanonical(
	"Mc", "Mac", "O'", "D'", "St.", "De La", "Van Der", "De Los",
)

// Words that start like a prefixed surname but are capitalized plainly.
var prefixExceptions = newSet(
	"MACE", "MACK", "MACKIE", "MACKLIN", "MACHIN", "MACHADO", "MACHINE",
	"MACHINES", "MACIAS", "MACON", "MACRO", "MACY",
)

var commonLowercaseWords = newSet(
	"AND", "OF", "THE", "IN", "AT", "ON", "FOR", "BY", "WITH",
)

var specialCharacters = map[rune]struct{}{
	'\'': {}, '-': {}, '/': {}, '+': {}, '&': {}, '(': {}, ')': {},
	'[': {}, ']': {}, '"': {}, ',': {}, '.': {}, '!': {},
}

// IsUppercaseAbbreviation reports whether folded is an always-uppercase abbreviation.
func IsUppercaseAbbreviation(folded string) bool { return has(uppercaseAbbreviations, folded) }

// IsRegionCode reports whether folded is a province or state code.
func IsRegionCode(folded string) bool { return has(regionCodes, folded) }

// IsCountryCode reports whether folded is a two- or three-letter country code.
func IsCountryCode(folded string) bool { return has(countryCodes, folded) }

// CountryName returns the display form of a full country name.
func CountryName(folded string) (string, bool) {
	v, ok := countryNames[folded]
	return v, ok
}

// BusinessDesignator returns the display form of a legal entity designator.
func BusinessDesignator(folded string) (string, bool) {
	v, ok := businessDesignators[folded]
	return v, ok
}

// IsCommonLowercaseWord reports whether folded is a connective word.
func IsCommonLowercaseWord(folded string) bool { return has(commonLowercaseWords, folded) }

// IsPrefixException reports whether folded must not be split on a name prefix.
func IsPrefixException(folded string) bool { return has(prefixExceptions, folded) }

// IsSpecial reports whether r resets capitalization for the following letter.
func IsSpecial(r rune) bool {
	_, ok := specialCharacters[r]
	return ok
}

// NamePrefixes returns the default prefix table keyed by folded prefix. The
// returned map is a copy.
func NamePrefixes() map[string]string {
	out := make(map[string]string, len(namePrefixes))
	for k, v := range namePrefixes {
		out[k] = v
	}
	return out
}

// Prefix is one name prefix in both folded and display form.
type Prefix struct {
	Folded    string
	Canonical string
}

// SortPrefixes returns the table ordered longest folded key first, ties
// broken alphabetically, so that a linear scan finds the longest match.
func SortPrefixes(table map[string]string) []Prefix {
	out := make([]Prefix, 0, len(table))
	for k, v := range table {
		out = append(out, Prefix{Folded: k, Canonical: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Folded) != len(out[j].Folded) {
			return len(out[i].Folded) > len(out[j].Folded)
		}
		return out[i].Folded < out[j].Folded
	})
	return out
}

func newSet(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[Fold(k)] = struct{}{}
	}
	return m
}

func newCanonical(values ...string) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[Fold(v)] = v
	}
	return m
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
