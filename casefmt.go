// Package casefmt normalizes inconsistently cased, human-entered text
// (personal names, legal entity names, postal addresses, city names) into a
// canonical display form.
//
// Each input is tokenized, every token is classified against a fixed set of
// rule tables (postal and ZIP codes, region and country codes, business
// designators, name prefixes, connective words) and the tokens are
// reassembled with normalized spacing:
//
//	casefmt.FormatPersonName("MACLEOD")                 // "MacLeod"
//	casefmt.FormatAddress("123 MAIN ST, PO BOX 5, ON") // "123 Main St, PO Box 5, ON"
//	casefmt.FormatLegalEntityName("MCDONALD'S CORP.")   // "McDonald's Corp."
//
// Formatting is total and idempotent: blank input is returned unchanged and
// formatting an already formatted string returns it as is. Every function is
// safe for concurrent use.
package casefmt

import (
	"strings"

	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/internal/adapters/normalizer"
	"github.com/baditaflorin/go_casefmt/internal/core/assemble"
	"github.com/baditaflorin/go_casefmt/internal/core/capitalize"
	"github.com/baditaflorin/go_casefmt/internal/core/rules"
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/baditaflorin/l"
)

// Option defines a functional option for configuring a Formatter.
type Option func(*config)

type config struct {
	Logger            ports.Logger
	Normalizer        ports.Normalizer
	NamePrefixes      map[string]string
	PlainAddressWords bool
}

// WithLogger sets a custom logger. Every call is logged at debug level.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.ForComponent(lg, "formatter")
	}
}

// WithNormalizer replaces the Unicode NFC pre-normalizer applied to input
// before tokenizing.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithNamePrefixes replaces the name prefix table used by every word-based
// kind. Each prefix is given in its display form, e.g. "Mc" or "O'".
func WithNamePrefixes(prefixes ...string) Option {
	return func(cfg *config) {
		table := make(map[string]string, len(prefixes))
		for _, p := range prefixes {
			if p = strings.TrimSpace(p); p != "" {
				table[rules.Fold(p)] = p
			}
		}
		cfg.NamePrefixes = table
	}
}

// WithPlainAddressWords makes addresses and city names ignore the name prefix
// table, so "MACLEOD STREET" becomes "Macleod Street".
func WithPlainAddressWords() Option {
	return func(cfg *config) {
		cfg.PlainAddressWords = true
	}
}

// Formatter formats text of every Kind. It is immutable once built.
type Formatter struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	formatters map[Kind]ports.Formatter
}

// New creates a Formatter. Without options it discards log output, applies
// NFC normalization and uses the built-in name prefix table.
func New(opts ...Option) *Formatter {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewUnicodeNormalizer()
	}
	if cfg.NamePrefixes == nil {
		cfg.NamePrefixes = rules.NamePrefixes()
	}

	names := capitalize.New(cfg.NamePrefixes)
	places := names
	if cfg.PlainAddressWords {
		places = capitalize.Plain()
	}

	return &Formatter{
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
		formatters: map[Kind]ports.Formatter{
			KindName:        assemble.NewName(names),
			KindAddress:     assemble.NewAddress(places),
			KindCity:        assemble.NewCity(places),
			KindLegalEntity: assemble.NewLegalEntity(names),
			KindPostalCode:  assemble.NewPostalCode(),
			KindCountry:     assemble.NewCountry(),
		},
	}
}

// Format formats text as the given kind. An unknown kind returns text
// unchanged.
func (f *Formatter) Format(kind Kind, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	fm, ok := f.formatters[kind]
	if !ok {
		f.logger.Warn("Unknown format kind", "kind", kind.String())
		return text
	}

	out := fm.Format(f.normalizer.Normalize(text))
	f.logger.Debug("Formatted text",
		"kind", kind.String(),
		"input", text,
		"output", out,
	)
	return out
}

// For returns a single-kind view of f.
func (f *Formatter) For(kind Kind) ports.Formatter {
	return ports.FormatterFunc(func(text string) string {
		return f.Format(kind, text)
	})
}

// FormatPersonName formats a personal name.
func (f *Formatter) FormatPersonName(text string) string { return f.Format(KindName, text) }

// FormatAddress formats a comma-separated postal address.
func (f *Formatter) FormatAddress(text string) string { return f.Format(KindAddress, text) }

// FormatCityName formats a city name.
func (f *Formatter) FormatCityName(text string) string { return f.Format(KindCity, text) }

// FormatLegalEntityName formats a company or organization name.
func (f *Formatter) FormatLegalEntityName(text string) string {
	return f.Format(KindLegalEntity, text)
}

// FormatPostalCode formats a Canadian postal code or US ZIP code.
func (f *Formatter) FormatPostalCode(text string) string { return f.Format(KindPostalCode, text) }

// FormatCountry formats a country code or country name.
func (f *Formatter) FormatCountry(text string) string { return f.Format(KindCountry, text) }

var defaultFormatter = New()

// Default returns the Formatter behind the package-level functions.
func Default() *Formatter {
	return defaultFormatter
}

// FormatPersonName formats a personal name: "O'SHEA" becomes "O'Shea".
func FormatPersonName(text string) string { return defaultFormatter.FormatPersonName(text) }

// FormatFirstName formats a given name. It is equivalent to FormatPersonName.
func FormatFirstName(text string) string { return defaultFormatter.FormatPersonName(text) }

// FormatLastName formats a surname. It is equivalent to FormatPersonName.
func FormatLastName(text string) string { return defaultFormatter.FormatPersonName(text) }

// FormatAddress formats a comma-separated postal address.
func FormatAddress(text string) string { return defaultFormatter.FormatAddress(text) }

// FormatCityName formats a city name: "OTTAWA-GATINEAU" becomes "Ottawa-Gatineau".
func FormatCityName(text string) string { return defaultFormatter.FormatCityName(text) }

// FormatLegalEntityName formats a company or organization name.
func FormatLegalEntityName(text string) string { return defaultFormatter.FormatLegalEntityName(text) }

// FormatPostalCode formats a Canadian postal code as "A1A 1A1" and returns
// US ZIP codes unchanged.
func FormatPostalCode(text string) string { return defaultFormatter.FormatPostalCode(text) }

// FormatCountry uppercases country codes and gives country names their
// display form.
func FormatCountry(text string) string { return defaultFormatter.FormatCountry(text) }
