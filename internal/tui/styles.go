package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/infohub/infohub/internal/ui"
	"github.com/infohub/infohub/internal/version"
)

// Application branding constants
const (
	AppName = "INFOHUB"
	Tagline = "FAZER COMPRAS PODE SER SIMPLES"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth = ui.MinTerminalWidth
	FormWidth        = 48 // Forms keep the narrow mobile column
)

// Common styles
var (
	// Title style for screen headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	// Flash banner for one-shot success messages
	FlashStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.SuccessColor)

	// Notice banner for informational messages
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.WarningColor)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)

	// Link style for in-form shortcuts
	LinkStyle = ui.LinkStyle
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderFlash renders a success banner
func RenderFlash(text string) string {
	return FlashStyle.Render(ui.SuccessMarker + " " + text)
}

// RenderNotice renders an informational banner
func RenderNotice(text string) string {
	return NoticeStyle.Render(text)
}

// RenderApplicationContainer is the wrapper for every screen: page header,
// centered content column, help line and the copyright footer pinned to the
// bottom of the terminal.
//
//	func (m LoginModel) View() string {
//	    return RenderApplicationContainer(routes.Login.Title(), true, content, help, m.Width, m.Height)
//	}
func RenderApplicationContainer(title string, showBack bool, content, helpText string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	header := ui.NewHeader(title, showBack).SetWidth(width).Render()

	column := lipgloss.NewStyle().Width(FormWidth).Render(content)
	body := ui.Center(width-2, column)

	footer := ui.NewFooter()
	footer.Width = width
	bottom := lipgloss.JoinVertical(lipgloss.Left,
		HelpStyle.Width(width-2).Padding(0, 1).Render(helpText),
		footer.Render(),
	)

	return ui.RenderContainer(header, body, bottom, width, height)
}

// versionLine renders the application name and version for the home screen.
func versionLine() string {
	return SubtitleStyle.Render(AppName + " " + AppVersion())
}
