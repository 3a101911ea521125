// Package capitalize implements prefix-aware word capitalization.
package capitalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_casefmt/internal/core/rules"
)

// Capitalizer capitalizes single words. The zero value capitalizes plainly,
// without consulting any name prefix table. A Capitalizer is immutable and
// safe for concurrent use.
type Capitalizer struct {
	prefixes []rules.Prefix
}

// New returns a Capitalizer that recognizes the given prefix table, keyed by
// folded prefix with the display form as value.
func New(prefixes map[string]string) *Capitalizer {
	return &Capitalizer{prefixes: rules.SortPrefixes(prefixes)}
}

// Default returns a Capitalizer using the built-in name prefix table.
func Default() *Capitalizer {
	return New(rules.NamePrefixes())
}

// Plain returns a Capitalizer that ignores name prefixes.
func Plain() *Capitalizer {
	return &Capitalizer{}
}

// Capitalize formats one word. When the word starts with a known name prefix
// and has something left after it, the prefix is emitted in its display form
// and the remainder is capitalized on its own; otherwise every letter that
// starts the word or follows a special character is uppercased and all other
// letters are lowercased.
func (c *Capitalizer) Capitalize(word string) string {
	if word == "" {
		return word
	}
	if len(c.prefixes) > 0 && !rules.IsPrefixException(rules.Fold(stem(word))) {
		for _, p := range c.prefixes {
			n, ok := matchPrefix(word, p.Folded)
			if ok && n < len(word) {
				return p.Canonical + c.Capitalize(word[n:])
			}
		}
	}
	return scan(word)
}

// stem returns the leading part of word up to the first special character,
// so "MACE-SMITH" and "MACHINE'S" are looked up as "MACE" and "MACHINE".
func stem(word string) string {
	if i := strings.IndexFunc(word, rules.IsSpecial); i >= 0 {
		return word[:i]
	}
	return word
}

// matchPrefix compares the leading runes of word against the folded prefix
// and returns the byte length of the match within word.
func matchPrefix(word, folded string) (int, bool) {
	i := 0
	for _, pr := range folded {
		if i >= len(word) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(word[i:])
		if unicode.ToUpper(r) != pr {
			return 0, false
		}
		i += size
	}
	return i, true
}

func scan(word string) string {
	runes := []rune(word)
	var b strings.Builder
	b.Grow(len(word))

	capNext := true
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r):
			if capNext && !isPossessive(runes, i) {
				b.WriteRune(unicode.ToTitle(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			capNext = false
		case rules.IsSpecial(r):
			b.WriteRune(r)
			capNext = true
		default:
			// digits, combining marks and everything else pass through
			b.WriteRune(r)
		}
	}

	return b.String()
}

// isPossessive reports whether runes[i] is the s of a trailing 's, as in
// Peggy's. That s stays lowercase even though it follows an apostrophe.
func isPossessive(runes []rune, i int) bool {
	if i < 2 || (runes[i] != 's' && runes[i] != 'S') {
		return false
	}
	if runes[i-1] != '\'' || !unicode.IsLetter(runes[i-2]) {
		return false
	}
	return i+1 == len(runes) || !unicode.IsLetter(runes[i+1])
}
