package normalizer

import (
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"golang.org/x/text/unicode/norm"
)

// UnicodeNormalizer composes decomposed input to NFC so that a base letter and
// its combining accent are cased as a single letter.
type UnicodeNormalizer struct{}

// NewUnicodeNormalizer creates a new NFC normalizer.
func NewUnicodeNormalizer() ports.Normalizer {
	return &UnicodeNormalizer{}
}

// Normalize returns text in Unicode normalization form C. ASCII input is
// returned as is.
func (n *UnicodeNormalizer) Normalize(text string) string {
	if isASCII(text) {
		return text
	}
	return norm.NFC.String(text)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IdentityNormalizer leaves text untouched.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates a normalizer that returns its input.
func NewIdentityNormalizer() ports.Normalizer {
	return IdentityNormalizer{}
}

// Normalize returns text unchanged.
func (IdentityNormalizer) Normalize(text string) string {
	return text
}
