package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#FF6B35") // Orange - buttons, borders, focus
	SecondaryColor = lipgloss.Color("#F7931E") // Amber - secondary buttons
	SuccessColor   = lipgloss.Color("#4CAF50") // Green - success
	ErrorColor     = lipgloss.Color("#F44336") // Red - errors, danger
	WarningColor   = lipgloss.Color("#FF9800") // Orange - warnings
	InfoColor      = lipgloss.Color("#2196F3") // Blue - links
	LightColor     = lipgloss.Color("#F5F5F5") // Near white - text on buttons
	DarkColor      = lipgloss.Color("#333333") // Dark gray - disabled fill
	MutedColor     = lipgloss.Color("#8A8A8A") // Gray - placeholders, hints
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 80 // Forms stay narrow like the mobile layout
	DefaultPadding   = 2  // Default padding inside boxes
)

// Shared styles
var (
	// TitleStyle is for page titles ("cadastro", "login")
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// BackStyle is for the back arrow in headers
	BackStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// LabelStyle is for input labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// RequiredMarkStyle is for the asterisk after required labels
	RequiredMarkStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// PlaceholderStyle is for empty input placeholders
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// FieldErrorStyle is for messages under invalid inputs
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(1)

	// FormErrorStyle is for the message above a form after a failed submit
	FormErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Align(lipgloss.Center)

	// NoteStyle is for small print under forms
	NoteStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// LinkStyle is for footer and inline links
	LinkStyle = lipgloss.NewStyle().
			Foreground(InfoColor).
			Underline(true)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for warning headings
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// HintTitleStyle is for the "Dicas:" header in failure boxes
	HintTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// HintItemStyle is for hint bullet points
	HintItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// StepCompleteStyle is for finished registration steps
	StepCompleteStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// StepCurrentStyle is for the step being filled
	StepCurrentStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// StepPendingStyle is for steps not reached yet
	StepPendingStyle = lipgloss.NewStyle().
				Foreground(MutedColor)
)

// Markers
const (
	StepMarkerComplete = "✓"
	StepMarkerCurrent  = "●"
	StepMarkerPending  = "·"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
	WarningMarker      = "⚠"
	BackArrow          = "←"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return clampWidth(width, err)
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	return clampWidth(width, nil), height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func clampWidth(width int, err error) int {
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width-2).
		Padding(0, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, 2)
}

// WarningBoxStyle returns the border style for warning boxes
func WarningBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2)
}

// HintBoxStyle returns the border style for hint sections
func HintBoxStyle(width int) lipgloss.Style {
	innerWidth := width - 12
	if innerWidth < 24 {
		innerWidth = 24
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
