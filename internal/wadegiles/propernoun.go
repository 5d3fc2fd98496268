package wadegiles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEligibleProperNoun decides whether a discrete word is worth attempting
// as a Chinese name. PDF page models expose word boxes rather than flowing
// text, so this filter runs before matching: only capitalized words qualify,
// except that an apostrophe or hyphen (strong Wade-Giles signals) or a known
// postal romanization makes a word eligible outright. Short capitalized
// words at a sentence boundary are more likely ordinary English and are
// skipped. This is a policy layer in front of the conversion rules, not a
// replacement for them.
func (c *Converter) IsEligibleProperNoun(word string, sentenceStart bool) bool {
	if word == "" {
		return false
	}
	if strings.ContainsRune(word, '-') || strings.ContainsFunc(word, isApostrophe) {
		return true
	}
	if _, ok := c.postal[normalizeKey(word)]; ok {
		return true
	}
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return false
	}
	if sentenceStart && utf8.RuneCountInString(word) <= 4 {
		return false
	}
	return true
}
