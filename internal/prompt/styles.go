package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Subtle   lipgloss.Style
}

var theme = styles{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9dcbfb")),
	Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0d99d")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#8ed88c")),
	Normal:   lipgloss.NewStyle(),
	Subtle:   lipgloss.NewStyle().Faint(true),
}

var bannerStyle = lipgloss.NewStyle().Bold(true)

// Banner prints the program title in bold.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w, bannerStyle.Render(title))
}
