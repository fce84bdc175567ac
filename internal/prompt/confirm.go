package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title   string
	value   bool
	done    bool
	skipped bool
}

func newConfirm(title string, def bool) confirmModel {
	return confirmModel{title: title, value: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.skipped = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		m.value = !m.value
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.skipped {
		return ""
	}

	yes, no := theme.Normal.Render("yes"), theme.Normal.Render("no")
	if m.value {
		yes = theme.Selected.Render("[yes]")
	} else {
		no = theme.Selected.Render("[no]")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.title))
	b.WriteString("  ")
	b.WriteString(yes)
	b.WriteString(" / ")
	b.WriteString(no)
	b.WriteString("\n")
	b.WriteString(theme.Subtle.Render("y/n • enter: accept • esc: skip"))
	b.WriteString("\n")
	return b.String()
}

// Answer is false unless the question was actually answered.
func (m confirmModel) Answer() bool {
	if m.skipped || !m.done {
		return false
	}
	return m.value
}
