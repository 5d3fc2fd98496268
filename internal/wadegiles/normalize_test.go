package wadegiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeApostrophes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ch’ien", "ch'ien"},
		{"ch‘ien", "ch'ien"},
		{"ch`ien", "ch'ien"},
		{"ch´ien", "ch'ien"},
		{"chʼien", "ch'ien"},
		{"chʻien", "ch'ien"},
		{"ch'ien", "ch'ien"},
		{"no apostrophe", "no apostrophe"},
	}
	for _, tt := range tests {
		got := NormalizeApostrophes(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeApostrophes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tsê", "tse"},
		{"ŭ", "u"},
		{"Ā", "A"},
		{"chü", "chü"},   // umlaut is phonemic, stays
		{"chu\u0308", "chü"}, // combining diaeresis folds into ü
		{"tse\u0302", "tse"}, // combining circumflex stripped
		{"plain", "plain"},
	}
	for _, tt := range tests {
		got := NormalizeDiacritics(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeDiacritics(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizersIdempotent(t *testing.T) {
	inputs := []string{
		"ch’ü", "tsê-tŭng", "Ch‘ien", "ü", "already plain text", "",
	}
	for _, in := range inputs {
		once := NormalizeApostrophes(in)
		assert.Equal(t, once, NormalizeApostrophes(once), "apostrophes not idempotent for %q", in)

		once = NormalizeDiacritics(in)
		assert.Equal(t, once, NormalizeDiacritics(once), "diacritics not idempotent for %q", in)
	}
}
