package wadegiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligibleProperNoun(t *testing.T) {
	c := New()

	tests := []struct {
		word          string
		sentenceStart bool
		want          bool
	}{
		{"Chien", false, true},
		{"chien", false, false},       // lowercase, no signal
		{"Ch'ien", false, true},       // apostrophe is a strong signal
		{"ch'ien", false, true},       // even lowercase
		{"Tse-tung", false, true},     // hyphen is a strong signal
		{"peking", false, true},       // postal romanization, any case
		{"Szechwan", true, true},      // postal beats the sentence-start rule
		{"Sung", true, false},         // four letters at sentence start
		{"Sung", false, true},
		{"Chungking", true, true},     // postal, and longer than four anyway
		{"Chien", true, true},         // five letters clears the bar
		{"The", true, false},
		{"", false, false},
	}
	for _, tt := range tests {
		got := c.IsEligibleProperNoun(tt.word, tt.sentenceStart)
		assert.Equal(t, tt.want, got, "IsEligibleProperNoun(%q, %v)", tt.word, tt.sentenceStart)
	}
}
