package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Input describes how a single form field is drawn. The editing itself is
// done by the caller (a textinput in the interactive screens); Input only
// lays out the label, the current text, the icon and the error line.
type Input struct {
	Label       string
	Placeholder string
	Value       string // Already rendered text, masked for passwords
	Icon        string
	Error       string
	Required    bool
	Disabled    bool
	Focused     bool
	Width       int
}

// Render draws the field as a bordered box with the error message under it.
func (in Input) Render() string {
	width := in.Width
	if width < MinTerminalWidth-4 {
		width = MinTerminalWidth - 4
	}

	var label strings.Builder
	label.WriteString(LabelStyle.Render(in.Label))
	if in.Required {
		label.WriteString(RequiredMarkStyle.Render(" *"))
	}

	text := in.Value
	if text == "" {
		text = PlaceholderStyle.Render(in.Placeholder)
	}
	if in.Icon != "" {
		gap := width - 4 - lipgloss.Width(text) - lipgloss.Width(in.Icon)
		if gap < 1 {
			gap = 1
		}
		text += strings.Repeat(" ", gap) + in.Icon
	}

	border := MutedColor
	switch {
	case in.Error != "":
		border = ErrorColor
	case in.Focused && !in.Disabled:
		border = PrimaryColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 1)
	if in.Disabled {
		box = box.Foreground(MutedColor)
	}

	parts := []string{label.String(), box.Render(text)}
	if in.Error != "" {
		parts = append(parts, FieldErrorStyle.Render(in.Error))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Mask replaces every character of value with a bullet.
func Mask(value string) string {
	return strings.Repeat("•", len([]rune(value)))
}
