package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the top bar of a page: an optional back arrow and a title.
type Header struct {
	Title    string
	ShowBack bool
	Width    int
}

// NewHeader creates a header sized to the terminal.
func NewHeader(title string, showBack bool) *Header {
	return &Header{
		Title:    title,
		ShowBack: showBack,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var parts []string
	if h.ShowBack {
		parts = append(parts, BackStyle.Render(BackArrow))
	}
	if h.Title != "" {
		parts = append(parts, TitleStyle.Render(h.Title))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// Logo renders the INFO HUB mark shown above the forms.
func Logo() string {
	info := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render("INFO")
	hub := lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true).Render("HUB")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2).
		Render(info + hub)
}
