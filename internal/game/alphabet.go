// internal/game/alphabet.go
//
// The Czech alphabet handled by the game and its diacritic-stripping table.
// Base letters are looked up, not derived from Unicode normalization, so the
// mapping is total and independent of locale data.

package game

import (
	"strings"
	"unicode"
)

// baseLetters maps each accented letter of the alphabet to its base letter.
var baseLetters = map[rune]rune{
	'Á': 'A',
	'Č': 'C',
	'Ď': 'D',
	'É': 'E',
	'Ě': 'E',
	'Í': 'I',
	'Ň': 'N',
	'Ó': 'O',
	'Ř': 'R',
	'Š': 'S',
	'Ť': 'T',
	'Ú': 'U',
	'Ů': 'U',
	'Ý': 'Y',
	'Ž': 'Z',
}

// Base returns the letter with its diacritic removed.
// Runes outside the table are returned unchanged.
func Base(r rune) rune {
	if b, ok := baseLetters[r]; ok {
		return b
	}
	return r
}

// BaseWord strips diacritics from every letter of w.
func BaseWord(w string) string {
	return strings.Map(Base, w)
}

// IsLetter reports whether r (upper-case) belongs to the alphabet.
func IsLetter(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	_, ok := baseLetters[r]
	return ok
}

// NormalizeLetter upper-cases r and reports whether the result is a letter
// of the alphabet.
func NormalizeLetter(r rune) (rune, bool) {
	u := unicode.ToUpper(r)
	return u, IsLetter(u)
}

// NormalizeWord trims and upper-cases w.
func NormalizeWord(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsWord reports whether w consists of exactly n alphabet letters.
func IsWord(w string, n int) bool {
	count := 0
	for _, r := range w {
		if !IsLetter(r) {
			return false
		}
		count++
	}
	return count == n
}
