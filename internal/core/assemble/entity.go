package assemble

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/classify"
	"github.com/baditaflorin/go_casefmt/internal/core/domain"
	"github.com/baditaflorin/go_casefmt/internal/core/tokenize"
)

// LegalEntity formats company and organization names.
type LegalEntity struct {
	capitalizer *capitalize.Capitalizer
	classifier  *classify.Classifier
}

// NewLegalEntity returns a legal entity name formatter using c for words
// that are neither designators nor connectives.
func NewLegalEntity(c *capitalize.Capitalizer) *LegalEntity {
	return &LegalEntity{
		capitalizer: c,
		classifier:  classify.New(domain.BusinessDesignator, domain.CommonLowercaseWord),
	}
}

// Format returns the display form of a legal entity name.
func (e *LegalEntity) Format(text string) string {
	if isBlank(text) {
		return text
	}
	tokens := tokenize.Words(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = formatToken(e.classifier.ClassifyToken(tok), e.capitalizer)
	}
	return strings.Join(out, " ")
}
