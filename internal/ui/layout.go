package ui

import "github.com/charmbracelet/lipgloss"

// Layout arranges a page: header on top, optional sidebar left of the
// content, footer at the bottom. Empty sections are left out.
type Layout struct {
	Header  string
	Sidebar string
	Content string
	Footer  string
	Width   int
	Height  int
}

// Render joins the sections. When Height is set the footer is pinned to the
// last rows of the terminal.
func (l Layout) Render() string {
	width := l.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	main := lipgloss.NewStyle().Width(width - 2).Render(l.Content)
	if l.Sidebar != "" {
		sidebar := lipgloss.NewStyle().
			BorderStyle(lipgloss.Border{Right: "│"}).
			BorderForeground(MutedColor).
			PaddingRight(1).
			Render(l.Sidebar)
		contentWidth := width - 2 - lipgloss.Width(sidebar) - 1
		if contentWidth < 10 {
			contentWidth = 10
		}
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			sidebar, " ",
			lipgloss.NewStyle().Width(contentWidth).Render(l.Content),
		)
	}

	var top []string
	if l.Header != "" {
		top = append(top, l.Header)
	}
	top = append(top, main)
	body := lipgloss.JoinVertical(lipgloss.Left, top...)

	if l.Footer == "" {
		return l.place(width, body)
	}

	if l.Height > 0 {
		gap := l.Height - lipgloss.Height(body) - lipgloss.Height(l.Footer)
		if gap > 0 {
			body = lipgloss.NewStyle().Height(lipgloss.Height(body) + gap).Render(body)
		}
	}
	return l.place(width, lipgloss.JoinVertical(lipgloss.Left, body, l.Footer))
}

func (l Layout) place(width int, view string) string {
	if l.Height <= 0 {
		return view
	}
	return lipgloss.Place(width, l.Height, lipgloss.Center, lipgloss.Top, view)
}

// Center places content in the middle of a box of the given width.
func Center(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// RenderContainer lays out a full page at the given terminal size.
func RenderContainer(header, content, footer string, width, height int) string {
	return Layout{
		Header:  header,
		Content: content,
		Footer:  footer,
		Width:   width,
		Height:  height,
	}.Render()
}
