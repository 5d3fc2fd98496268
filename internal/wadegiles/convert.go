// Package wadegiles converts Wade-Giles romanized Chinese inside arbitrary
// prose to toneless Pinyin. The converter is built once and is immutable:
// every method is a pure function of its input and safe for concurrent use.
package wadegiles

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Mode selects how eagerly matches are converted.
type Mode int

const (
	// Conservative skips common English collisions and context-sensitive
	// single letters. The default.
	Conservative Mode = iota
	// Aggressive converts every table match, exclusion lists included.
	Aggressive
)

func (m Mode) String() string {
	if m == Aggressive {
		return "aggressive"
	}
	return "conservative"
}

// Converter holds the merged syllable table. Create one with New and share
// it freely.
type Converter struct {
	table     map[string]string
	postal    map[string]string
	maxKeyLen int // in runes, over all table keys
}

// New builds the syllable table from its four sources and returns a ready
// converter.
func New() *Converter {
	table := buildTable()
	maxKeyLen := lo.Max(lo.Map(lo.Keys(table), func(k string, _ int) int {
		return utf8.RuneCountInString(k)
	}))
	return &Converter{
		table:     table,
		postal:    postalRomanizations,
		maxKeyLen: maxKeyLen,
	}
}

// Convert rewrites every recognized Wade-Giles syllable in text to toneless
// Pinyin. Hyphen-joined runs are handled first so that multi-syllable names
// are joined before the single-syllable pass sees the remainder. Returns the
// input unchanged when nothing matches.
func (c *Converter) Convert(text string, mode Mode) string {
	if text == "" {
		return text
	}
	text = hyphenRun.ReplaceAllStringFunc(text, func(seq string) string {
		return c.ConvertHyphenated(seq, mode)
	})
	return c.replaceSpans(text, mode)
}

// ConvertSpan converts a single word span, applying the full conservative
// disambiguation policy. Adapters that walk words themselves (the PDF
// planner) use this instead of Convert.
func (c *Converter) ConvertSpan(span string, mode Mode) string {
	return c.convertSingle(span, mode, false)
}

// convertSingle decides whether a matched span converts at all, then applies
// the case pattern of the original onto the table value.
func (c *Converter) convertSingle(original string, mode Mode, inHyphenGroup bool) string {
	norm := normalizeKey(original)

	// Hyphenation is strong evidence of a transliterated name, so group
	// members bypass the English-collision filters.
	if mode != Aggressive && !inHyphenGroup {
		if _, ok := excludedAnyCase[norm]; ok {
			return original
		}
		if _, ok := excludedLowercase[norm]; ok && allLower(original) {
			return original
		}
		if _, ok := contextSensitive[norm]; ok {
			return original
		}
	}

	if pinyin, ok := c.table[norm]; ok {
		return applyCasePattern(original, pinyin)
	}
	return original
}

// ConvertHyphenated converts a hyphen-delimited sequence ("Tse-tung").
// Recognized sub-parts convert with the group override; the first keeps the
// original case pattern, later ones are forced lowercase per the Pinyin
// convention that only a name's first syllable is capitalized. The hyphens
// are dropped when any spelling changed or every part is a recognized
// syllable; otherwise the sequence is returned untouched.
func (c *Converter) ConvertHyphenated(seq string, mode Mode) string {
	parts := strings.Split(seq, "-")

	out := make([]string, 0, len(parts))
	allKnown := true
	changed := false
	first := true

	for _, part := range parts {
		if part == "" {
			continue
		}
		if _, ok := c.table[normalizeKey(part)]; !ok {
			out = append(out, part)
			allKnown = false
			first = false
			continue
		}
		conv := c.convertSingle(part, mode, true)
		if !first {
			conv = strings.ToLower(conv)
		}
		if !strings.EqualFold(conv, part) {
			changed = true
		}
		out = append(out, conv)
		first = false
	}

	if changed || allKnown {
		return strings.Join(out, "")
	}
	return seq
}
