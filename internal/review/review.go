// Package review is an interactive pass over proposed conversions. It shows
// the dry-run changes for a document and lets the user reject individual
// ones before anything is written; the surviving set becomes the filter for
// the apply pass.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jusunglee/wadegiles/internal/docx"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	None   key.Binding
	Accept key.Binding
	Abort  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept all")),
	None:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "reject all")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Abort:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "abort")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	acceptedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	rejectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	partStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

const pageSize = 15

type model struct {
	changes  []docx.Change
	accepted []bool
	cursor   int
	offset   int
	done     bool
	aborted  bool
	width    int
}

func newModel(changes []docx.Change) model {
	accepted := make([]bool, len(changes))
	for i := range accepted {
		accepted[i] = true
	}
	return model{changes: changes, accepted: accepted}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.changes)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if len(m.changes) > 0 {
				m.accepted[m.cursor] = !m.accepted[m.cursor]
			}
		case key.Matches(msg, keys.All):
			for i := range m.accepted {
				m.accepted[i] = true
			}
		case key.Matches(msg, keys.None):
			for i := range m.accepted {
				m.accepted[i] = false
			}
		case key.Matches(msg, keys.Accept):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, keys.Abort):
			m.aborted = true
			return m, tea.Quit
		}

		// keep the cursor visible
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+pageSize {
			m.offset = m.cursor - pageSize + 1
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	accepted := lo.Count(m.accepted, true)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Proposed conversions — %d of %d accepted", accepted, len(m.changes))))
	b.WriteString("\n")

	end := min(m.offset+pageSize, len(m.changes))
	for i := m.offset; i < end; i++ {
		ch := m.changes[i]

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := acceptedStyle.Render("[x]")
		line := fmt.Sprintf("%s → %s", ch.Original, ch.Converted)
		if !m.accepted[i] {
			mark = "[ ]"
			line = rejectedStyle.Render(line)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, mark, line, partStyle.Render(ch.Part)))
	}

	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · a all · n none · enter apply · q abort"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the review UI for a set of proposed changes and returns the
// accepted subset. The second return is false when the user aborted.
func Run(changes []docx.Change) ([]docx.Change, bool, error) {
	if len(changes) == 0 {
		return nil, true, nil
	}

	final, err := tea.NewProgram(newModel(changes)).Run()
	if err != nil {
		return nil, false, fmt.Errorf("running review UI: %w", err)
	}

	m := final.(model)
	if m.aborted {
		return nil, false, nil
	}

	out := make([]docx.Change, 0, len(changes))
	for i, ch := range m.changes {
		if m.accepted[i] {
			out = append(out, ch)
		}
	}
	return out, true, nil
}

type changeKey struct {
	part    string
	ordinal int
}

// Filter turns an accepted subset into the veto func the docx converter
// takes. Changes are keyed by part and ordinal, which are stable between
// the dry run and the apply pass.
func Filter(accepted []docx.Change) func(docx.Change) bool {
	set := lo.SliceToMap(accepted, func(ch docx.Change) (changeKey, struct{}) {
		return changeKey{part: ch.Part, ordinal: ch.Ordinal}, struct{}{}
	})
	return func(ch docx.Change) bool {
		_, ok := set[changeKey{part: ch.Part, ordinal: ch.Ordinal}]
		return ok
	}
}
