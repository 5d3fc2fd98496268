// Package pdf plans in-place word replacements over a PDF page model. The
// page model itself is a collaborator: something else parses pages into
// (bounding box, word) tuples and draws the results. This package owns the
// engine-side policy: which word boxes to attempt, how to convert them, and
// the erase/draw instructions to hand back.
package pdf

import (
	"strings"
	"unicode"

	"github.com/jusunglee/wadegiles/internal/wadegiles"
)

// Box is an axis-aligned bounding box in page coordinates, origin bottom
// left, as PDF page models report them.
type Box struct {
	X, Y, W, H float64
}

// Word is one extracted word and where it sits on the page.
type Word struct {
	Text string
	Box  Box
}

// Instruction tells the drawing collaborator to erase a word's box and draw
// the replacement at the original baseline.
type Instruction struct {
	Erase Box
	Text  string
	// At is the baseline origin for the replacement text.
	At struct{ X, Y float64 }
}

// Planner applies the proper-noun heuristic and the conversion engine to a
// page worth of words.
type Planner struct {
	conv *wadegiles.Converter
	mode wadegiles.Mode
}

func NewPlanner(conv *wadegiles.Converter, mode wadegiles.Mode) *Planner {
	return &Planner{conv: conv, mode: mode}
}

// PlanPage walks the page's words in reading order and returns one
// instruction per word whose conversion changed its spelling. The first word
// of a page counts as sentence-initial, as does any word following
// terminating punctuation; short capitalized words at those positions are
// skipped per the proper-noun heuristic.
func (p *Planner) PlanPage(words []Word) []Instruction {
	var out []Instruction

	sentenceStart := true
	for _, w := range words {
		prefix, core, suffix := splitPunct(w.Text)
		nextStart := endsSentence(w.Text)

		if core == "" || !p.conv.IsEligibleProperNoun(core, sentenceStart) {
			sentenceStart = nextStart
			continue
		}

		var converted string
		if strings.ContainsRune(core, '-') {
			converted = p.conv.ConvertHyphenated(core, p.mode)
		} else {
			converted = p.conv.ConvertSpan(core, p.mode)
		}

		if converted != core {
			ins := Instruction{
				Erase: w.Box,
				Text:  prefix + converted + suffix,
			}
			ins.At.X = w.Box.X
			ins.At.Y = w.Box.Y
			out = append(out, ins)
		}
		sentenceStart = nextStart
	}
	return out
}

// splitPunct peels leading and trailing punctuation off a word box's text.
// Apostrophes and hyphens stay with the core; they are conversion signals,
// not wrapping punctuation.
func splitPunct(s string) (prefix, core, suffix string) {
	runes := []rune(s)
	start := 0
	for start < len(runes) && isWrapPunct(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && isWrapPunct(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

// apostrophe glyphs, including the typographic and OCR variants the
// normalizer folds together
const apostrophes = "'‘’`´ʼʻ"

func isWrapPunct(r rune) bool {
	if r == '-' || strings.ContainsRune(apostrophes, r) {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// endsSentence looks for terminating punctuation, ignoring any closing
// quotes or brackets after it ("ended.\"", "fell.)").
func endsSentence(word string) bool {
	runes := []rune(word)
	i := len(runes)
	for i > 0 && strings.ContainsRune(`)]}>"'’”›»`, runes[i-1]) {
		i--
	}
	if i == 0 {
		return false
	}
	switch runes[i-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
