package casefmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for a name it does not recognize.
var ErrUnknownKind = errors.New("unknown format kind")

// Kind selects which formatter handles a string.
type Kind int

const (
	KindName Kind = iota
	KindAddress
	KindCity
	KindLegalEntity
	KindPostalCode
	KindCountry
)

var kindNames = map[Kind]string{
	KindName:        "name",
	KindAddress:     "address",
	KindCity:        "city",
	KindLegalEntity: "entity",
	KindPostalCode:  "postal",
	KindCountry:     "country",
}

var kindAliases = map[string]Kind{
	"name":         KindName,
	"person":       KindName,
	"address":      KindAddress,
	"city":         KindCity,
	"entity":       KindLegalEntity,
	"legal-entity": KindLegalEntity,
	"legal_entity": KindLegalEntity,
	"postal":       KindPostalCode,
	"postal-code":  KindPostalCode,
	"postal_code":  KindPostalCode,
	"zip":          KindPostalCode,
	"country":      KindCountry,
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindName, KindAddress, KindCity, KindLegalEntity, KindPostalCode, KindCountry}
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name, or one of its aliases, to a Kind. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
