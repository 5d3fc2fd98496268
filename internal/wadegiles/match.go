package wadegiles

import (
	"regexp"
	"strings"
	"unicode"
)

// Matching is two-pass. A regexp picks out hyphen-joined letter runs first
// (candidate proper names); a rune scanner then probes the remainder for
// single syllables, longest key first, so a longer key is never shadowed by
// a shorter one sharing its prefix. Boundaries are non-letter on both sides:
// a syllable is never a substring of a longer letter run.

// letters plus every apostrophe glyph the normalizer accepts
const wordClass = `\pL\x{0300}-\x{036f}'‘’` + "`´ʼʻ"

// hyphen-joined words, e.g. "Tse-tung" or "Ch'ien-lung"
var hyphenRun = regexp.MustCompile(`[` + wordClass + `]+(?:-[` + wordClass + `]+)+`)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || isApostrophe(r) || unicode.Is(unicode.Mn, r)
}

// replaceSpans runs the single-syllable pass over text.
func (c *Converter) replaceSpans(text string, mode Mode) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if !isWordRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		b.WriteString(c.convertRun(runes[i:j], mode))
		i = j
	}
	return b.String()
}

// convertRun probes one maximal word run for syllable matches. A match may
// start at the run head or just after an apostrophe (possessives like
// "Chien's"), and must end at the run tail or before an apostrophe, never
// mid-letters. Candidate lengths are tried longest first; combiningSlack
// covers keys whose umlaut arrives as a combining mark in the text.
const combiningSlack = 2

func (c *Converter) convertRun(run []rune, mode Mode) string {
	var b strings.Builder

	pos := 0
	for pos < len(run) {
		canStart := pos == 0 || isApostrophe(run[pos-1])
		if canStart && unicode.IsLetter(run[pos]) {
			if end := c.longestMatch(run, pos); end > pos {
				b.WriteString(c.convertSingle(string(run[pos:end]), mode, false))
				pos = end
				continue
			}
		}
		b.WriteRune(run[pos])
		pos++
	}
	return b.String()
}

// longestMatch returns the end index of the longest table match starting at
// pos, or pos when nothing matches.
func (c *Converter) longestMatch(run []rune, pos int) int {
	max := c.maxKeyLen + combiningSlack
	if rest := len(run) - pos; rest < max {
		max = rest
	}
	for l := max; l >= 1; l-- {
		end := pos + l
		if end < len(run) && !isApostrophe(run[end]) {
			continue // would split a letter run
		}
		if _, ok := c.table[normalizeKey(string(run[pos:end]))]; ok {
			return end
		}
	}
	return pos
}
