package review

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jusunglee/wadegiles/internal/docx"
)

func sampleChanges() []docx.Change {
	return []docx.Change{
		{Part: "word/document.xml", Ordinal: 0, Original: "Sung Dynasty", Converted: "Song Dynasty"},
		{Part: "word/document.xml", Ordinal: 1, Original: "Tse-tung", Converted: "Zedong"},
		{Part: "word/header1.xml", Ordinal: 0, Original: "Peking", Converted: "Beijing"},
	}
}

func press(m model, k tea.KeyMsg) model {
	next, _ := m.Update(k)
	return next.(model)
}

func TestModelStartsAllAccepted(t *testing.T) {
	m := newModel(sampleChanges())
	assert.Equal(t, []bool{true, true, true}, m.accepted)
}

func TestModelToggleAndNavigate(t *testing.T) {
	m := newModel(sampleChanges())

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []bool{true, false, true}, m.accepted)

	// toggling back restores it
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []bool{true, true, true}, m.accepted)

	// cursor clamps at the edges
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)
}

func TestModelRejectAllAcceptAll(t *testing.T) {
	m := newModel(sampleChanges())

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, []bool{false, false, false}, m.accepted)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Equal(t, []bool{true, true, true}, m.accepted)
}

func TestModelAcceptAndAbort(t *testing.T) {
	m := newModel(sampleChanges())
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)

	m = newModel(sampleChanges())
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.aborted)
}

func TestFilter(t *testing.T) {
	changes := sampleChanges()
	filter := Filter(changes[:2])

	assert.True(t, filter(changes[0]))
	assert.True(t, filter(changes[1]))
	// Ordinal 0 in a different part is a different change.
	assert.False(t, filter(changes[2]))

	empty := Filter(nil)
	assert.False(t, empty(changes[0]))
}
