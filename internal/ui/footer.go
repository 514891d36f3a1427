package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Default footer links.
var DefaultFooterLinks = []string{"Política de Privacidade", "Termos de Uso", "Suporte"}

// Footer is the copyright line with the links row under it. Custom content
// replaces both.
type Footer struct {
	Year    int // 0 means the current year
	Links   []string
	Content string
	Width   int
}

// NewFooter creates a footer with the default links for the current year.
func NewFooter() *Footer {
	return &Footer{
		Links: DefaultFooterLinks,
		Width: GetTerminalWidth(),
	}
}

// Copyright returns the copyright line.
func (f *Footer) Copyright() string {
	year := f.Year
	if year == 0 {
		year = time.Now().Year()
	}
	return fmt.Sprintf("© %d InfoHub. Todos os direitos reservados.", year)
}

// Render returns the styled footer.
func (f *Footer) Render() string {
	width := f.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	style := lipgloss.NewStyle().
		Width(width - 2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Foreground(MutedColor)

	if f.Content != "" {
		return style.Render(f.Content)
	}

	links := make([]string, len(f.Links))
	for i, l := range f.Links {
		links[i] = LinkStyle.Render(l)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center,
		f.Copyright(),
		strings.Join(links, "  ·  "),
	))
}

// String implements fmt.Stringer
func (f *Footer) String() string {
	return f.Render()
}
