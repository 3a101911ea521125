// Package classify decides which formatting rule applies to a token.
//
// Rules are kept in one ordered list of predicate/tag pairs. The first rule
// that matches wins, and GenericWord is returned when none does, so every
// token receives exactly one tag.
package classify

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/core/domain"
	"github.com/baditaflorin/go_casefmt/internal/core/postal"
	"github.com/baditaflorin/go_casefmt/internal/core/rules"
)

// Rule pairs a tag with the predicate that selects it. Match receives the
// case-folded token text and the token's position.
type Rule struct {
	Tag   domain.Tag
	Match func(folded string, pos int) bool
}

var ordinalRegex = regexp.MustCompile(`^\d+(ST|ND|RD|TH)$`)

// priority is the global tie-break order. Classifiers built from a subset of
// tags always evaluate them in this order.
var priority = []Rule{
	{Tag: domain.PostalCode, Match: func(f string, _ int) bool { return postal.IsCanadian(f) }},
	{Tag: domain.ZipCode, Match: func(f string, _ int) bool { return postal.IsZip(f) }},
	{Tag: domain.UppercaseAbbreviation, Match: func(f string, _ int) bool { return rules.IsUppercaseAbbreviation(f) }},
	{Tag: domain.Ordinal, Match: func(f string, _ int) bool { return ordinalRegex.MatchString(f) }},
	{Tag: domain.RegionCode, Match: func(f string, _ int) bool { return rules.IsRegionCode(f) }},
	{Tag: domain.CountryCode, Match: func(f string, _ int) bool { return rules.IsCountryCode(f) }},
	{Tag: domain.CountryName, Match: func(f string, _ int) bool {
		_, ok := rules.CountryName(f)
		return ok
	}},
	{Tag: domain.BusinessDesignator, Match: func(f string, _ int) bool {
		_, ok := rules.BusinessDesignator(f)
		return ok
	}},
	// the first word of a name is never lowercased
	{Tag: domain.CommonLowercaseWord, Match: func(f string, pos int) bool {
		return pos > 0 && rules.IsCommonLowercaseWord(f)
	}},
}

// Classifier evaluates an ordered list of rules.
type Classifier struct {
	rules []Rule
}

// New returns a classifier enabling the given tags. The tags are evaluated in
// the global priority order regardless of the order they are passed in.
// GenericWord is always the fallback and need not be listed.
func New(tags ...domain.Tag) *Classifier {
	enabled := make(map[domain.Tag]bool, len(tags))
	for _, t := range tags {
		enabled[t] = true
	}
	c := &Classifier{}
	for _, r := range priority {
		if enabled[r.Tag] {
			c.rules = append(c.rules, r)
		}
	}
	return c
}

// Classify returns the tag of the first rule matching text at position pos.
func (c *Classifier) Classify(text string, pos int) domain.Tag {
	folded := rules.Fold(strings.TrimSpace(text))
	for _, r := range c.rules {
		if r.Match(folded, pos) {
			return r.Tag
		}
	}
	return domain.GenericWord
}

// ClassifyToken classifies tok and returns a tagged copy.
func (c *Classifier) ClassifyToken(tok domain.Token) domain.Token {
	return tok.WithTag(c.Classify(tok.Text, tok.Position))
}

// Order returns the tags this classifier evaluates, in evaluation order,
// ending with the GenericWord fallback.
func (c *Classifier) Order() []domain.Tag {
	out := make([]domain.Tag, 0, len(c.rules)+1)
	for _, r := range c.rules {
		out = append(out, r.Tag)
	}
	return append(out, domain.GenericWord)
}
