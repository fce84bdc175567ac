package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type multiSelectModel struct {
	title    string
	choices  []string
	cursor   int
	selected map[int]struct{}
	done     bool
	aborted  bool
}

func newMultiSelect(title string, choices []string) multiSelectModel {
	return multiSelectModel{
		title:    title,
		choices:  choices,
		selected: make(map[int]struct{}),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if len(m.choices) == 0 {
			break
		}
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case "a":
		if len(m.selected) == len(m.choices) {
			m.selected = make(map[int]struct{})
		} else {
			for i := range m.choices {
				m.selected[i] = struct{}{}
			}
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		if m.cursor == i {
			cursor = theme.Cursor.Render("> ")
		}

		line := "[ ] " + choice
		style := theme.Normal
		if _, ok := m.selected[i]; ok {
			line = "[x] " + choice
			style = theme.Selected
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtle.Render("space: toggle • a: all • enter: confirm • esc: abort"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entries in presentation order.
func (m multiSelectModel) Selected() []string {
	result := make([]string, 0, len(m.selected))
	for i, choice := range m.choices {
		if _, ok := m.selected[i]; ok {
			result = append(result, choice)
		}
	}
	return result
}
