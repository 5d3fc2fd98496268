package wadegiles

import (
	"strings"
	"unicode"
)

// applyCasePattern maps the per-character capitalization of source onto
// target. Apostrophes, hyphens and combining marks in source have no
// counterpart in the replacement and consume no target character. A longer
// source is truncated against the target; a shorter one extends the target
// with the case of the source's final character.
func applyCasePattern(source, target string) string {
	if source == "" || target == "" {
		return target
	}

	src := []rune(source)
	tgt := []rune(target)
	out := make([]rune, 0, len(tgt))

	ti := 0
	for _, r := range src {
		if ti >= len(tgt) {
			break
		}
		if isApostrophe(r) || r == '-' || unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsUpper(r) {
			out = append(out, unicode.ToUpper(tgt[ti]))
		} else {
			out = append(out, unicode.ToLower(tgt[ti]))
		}
		ti++
	}

	if ti < len(tgt) {
		rest := string(tgt[ti:])
		if unicode.IsUpper(src[len(src)-1]) {
			rest = strings.ToUpper(rest)
		} else {
			rest = strings.ToLower(rest)
		}
		out = append(out, []rune(rest)...)
	}

	return string(out)
}

// allLower reports whether s contains no uppercase letters.
func allLower(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsUpper)
}
