package domain

// Tag identifies which classification rule matched a token.
type Tag int

const (
	// GenericWord is the fallback: the token gets prefix-aware capitalization.
	GenericWord Tag = iota
	// PostalCode marks a Canadian postal code (A1A 1A1).
	PostalCode
	// ZipCode marks a US ZIP or ZIP+4 code.
	ZipCode
	// UppercaseAbbreviation marks an abbreviation that is always uppercase (PO).
	UppercaseAbbreviation
	// Ordinal marks a street ordinal such as 42nd.
	Ordinal
	// RegionCode marks a province or state code.
	RegionCode
	// CountryCode marks an ISO-style country code.
	CountryCode
	// CountryName marks a full country name.
	CountryName
	// BusinessDesignator marks a legal entity designator such as LLC.
	BusinessDesignator
	// CommonLowercaseWord marks a connective that stays lowercase mid-name.
	CommonLowercaseWord
)

var tagNames = [...]string{
	GenericWord:           "generic_word",
	PostalCode:            "postal_code",
	ZipCode:               "zip_code",
	UppercaseAbbreviation: "uppercase_abbreviation",
	Ordinal:               "ordinal",
	RegionCode:            "region_code",
	CountryCode:           "country_code",
	CountryName:           "country_name",
	BusinessDesignator:    "business_designator",
	CommonLowercaseWord:   "common_lowercase_word",
}

// String returns the snake_case name of the tag.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}

// Token is one unit of a tokenized input string.
type Token struct {
	// Text is the raw token text, trimmed of surrounding separators.
	Text string
	// Position is the zero-based index of the token within its sequence.
	Position int
	// Tag is set once the token has been classified.
	Tag Tag
}

// WithTag returns a copy of the token carrying the given tag.
func (t Token) WithTag(tag Tag) Token {
	t.Tag = tag
	return t
}
