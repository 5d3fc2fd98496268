package wadegiles

import "strings"

// Source documents mix typographic quotes, OCR output and combining marks.
// Both normalizers are pure and idempotent; the table is keyed on their
// output.

// apostrophe glyphs seen in the wild for the Wade-Giles aspiration mark
const apostropheVariants = "'‘’`´ʼʻ"

func isApostrophe(r rune) bool {
	return strings.ContainsRune(apostropheVariants, r)
}

// NormalizeApostrophes replaces every apostrophe-like glyph with the plain
// ASCII apostrophe.
func NormalizeApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		if isApostrophe(r) {
			return '\''
		}
		return r
	}, s)
}

// bareVowels maps vowels carrying a circumflex, breve or macron to the plain
// letter. The umlaut is phonemic in Wade-Giles and is left alone.
var bareVowels = map[rune]rune{
	'â': 'a', 'ă': 'a', 'ā': 'a',
	'ê': 'e', 'ĕ': 'e', 'ē': 'e',
	'î': 'i', 'ĭ': 'i', 'ī': 'i',
	'ô': 'o', 'ŏ': 'o', 'ō': 'o',
	'û': 'u', 'ŭ': 'u', 'ū': 'u',
	'Â': 'A', 'Ă': 'A', 'Ā': 'A',
	'Ê': 'E', 'Ĕ': 'E', 'Ē': 'E',
	'Î': 'I', 'Ĭ': 'I', 'Ī': 'I',
	'Ô': 'O', 'Ŏ': 'O', 'Ō': 'O',
	'Û': 'U', 'Ŭ': 'U', 'Ū': 'U',
}

// combining circumflex, breve and macron
const combiningStripped = "\u0302\u0304\u0306"

// NormalizeDiacritics strips circumflex, breve and macron marks from vowels,
// in both precomposed and combining form. The umlaut survives, and a
// combining diaeresis after u is folded into ü.
func NormalizeDiacritics(s string) string {
	s = strings.ReplaceAll(s, "u\u0308", "ü")
	s = strings.ReplaceAll(s, "U\u0308", "Ü")
	return strings.Map(func(r rune) rune {
		if bare, ok := bareVowels[r]; ok {
			return bare
		}
		if strings.ContainsRune(combiningStripped, r) {
			return -1
		}
		return r
	}, s)
}

// normalizeKey reduces a candidate span to table-key form: lowercase, plain
// apostrophes, bare vowels, umlaut intact.
func normalizeKey(s string) string {
	return NormalizeDiacritics(NormalizeApostrophes(strings.ToLower(s)))
}
