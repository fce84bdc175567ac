package prompt

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestMultiSelect_SelectedIsSubsetInCatalogOrder(t *testing.T) {
	items := []string{"bluez", "cups", "docker", "tlp"}

	m := press(newMultiSelect("services", items),
		keyDown, keyDown, keySpace, // docker
		keyUp, keyUp, keySpace, // bluez
		keyDown, keyDown, keyDown, keyDown, keyDown, keySpace, // cursor clamps on tlp
		keyEnter,
	).(multiSelectModel)

	assert.True(t, m.done)
	assert.False(t, m.aborted)
	assert.Equal(t, []string{"bluez", "docker", "tlp"}, m.Selected())
	for _, s := range m.Selected() {
		assert.Contains(t, items, s)
	}
}

func TestMultiSelect_ToggleOff(t *testing.T) {
	m := press(newMultiSelect("fonts", []string{"noto-fonts"}), keySpace, runes("x"), keyEnter).(multiSelectModel)
	assert.Empty(t, m.Selected())
}

func TestMultiSelect_ToggleAll(t *testing.T) {
	items := []string{"go", "zig", "rustup"}

	m := press(newMultiSelect("languages", items), runes("a")).(multiSelectModel)
	assert.Equal(t, items, m.Selected())

	m = press(m, runes("a")).(multiSelectModel)
	assert.Empty(t, m.Selected())
}

func TestMultiSelect_EmptyCatalog(t *testing.T) {
	m := press(newMultiSelect("nothing", nil), keyDown, keySpace, keyEnter).(multiSelectModel)
	assert.True(t, m.done)
	assert.Empty(t, m.Selected())
}

func TestMultiSelect_Abort(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyEsc, keyCtrlC} {
		m := press(newMultiSelect("software", []string{"firefox"}), keySpace, key).(multiSelectModel)
		assert.True(t, m.aborted)
		assert.False(t, m.done)
	}
}

func TestMultiSelect_View(t *testing.T) {
	m := press(newMultiSelect("Which fonts?", []string{"noto-fonts", "ttf-fira-code"}), keySpace)
	view := m.View()
	assert.Contains(t, view, "Which fonts?")
	assert.Contains(t, view, "[x] noto-fonts")
	assert.Contains(t, view, "[ ] ttf-fira-code")
}

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		name string
		def  bool
		keys []tea.KeyMsg
		want bool
	}{
		{name: "enter keeps default true", def: true, keys: []tea.KeyMsg{keyEnter}, want: true},
		{name: "enter keeps default false", def: false, keys: []tea.KeyMsg{keyEnter}, want: false},
		{name: "y", def: false, keys: []tea.KeyMsg{runes("y")}, want: true},
		{name: "n", def: true, keys: []tea.KeyMsg{runes("n")}, want: false},
		{name: "toggle then enter", def: true, keys: []tea.KeyMsg{{Type: tea.KeyRight}, keyEnter}, want: false},
		{name: "esc with default true", def: true, keys: []tea.KeyMsg{keyEsc}, want: false},
		{name: "ctrl+c with default true", def: true, keys: []tea.KeyMsg{keyCtrlC}, want: false},
		{name: "esc with default false", def: false, keys: []tea.KeyMsg{keyEsc}, want: false},
		{name: "no input at all", def: true, keys: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newConfirm("Install paru?", tt.def), tt.keys...).(confirmModel)
			assert.Equal(t, tt.want, m.Answer())
		})
	}
}

func TestInput_Value(t *testing.T) {
	m := press(newInput("Git name: "), runes("Jane Doe "), keyEnter).(inputModel)
	assert.True(t, m.done)
	assert.Equal(t, "Jane Doe", m.Value())
}

func TestInput_Abort(t *testing.T) {
	m := press(newInput("Git email: "), runes("jane@"), keyEsc).(inputModel)
	assert.True(t, m.aborted)
}

func TestTerminal_NotInteractive(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{in: strings.NewReader(""), out: &out, interactive: false}

	_, err := term.SelectMany("Which software packages do you want to install?", []string{"firefox"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTerminal)

	_, err = term.Input("Git name: ")
	assert.ErrorIs(t, err, ErrNoTerminal)

	assert.False(t, term.Confirm("Install paru?", true))
	assert.False(t, term.Confirm("Install paru?", false))
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	Banner(&out, "Post Install Setup")
	assert.Contains(t, out.String(), "Post Install Setup")
}
