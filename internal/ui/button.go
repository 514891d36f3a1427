package ui

import "github.com/charmbracelet/lipgloss"

// Variant selects a button's color.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantSuccess
	VariantDanger
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantPrimary:
		return "primary"
	case VariantSecondary:
		return "secondary"
	case VariantSuccess:
		return "success"
	case VariantDanger:
		return "danger"
	default:
		return "unknown"
	}
}

func (v Variant) color() lipgloss.Color {
	switch v {
	case VariantSecondary:
		return SecondaryColor
	case VariantSuccess:
		return SuccessColor
	case VariantDanger:
		return ErrorColor
	default:
		return PrimaryColor
	}
}

// Size selects a button's padding.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// String returns the size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

func (s Size) padding() (int, int) {
	switch s {
	case SizeSmall:
		return 0, 1
	case SizeLarge:
		return 1, 4
	default:
		return 0, 2
	}
}

// Button is a labelled action. A disabled or loading button cannot be
// pressed; while loading it shows LoadingLabel (or "⏳") instead of Label.
type Button struct {
	Label        string
	LoadingLabel string
	Variant      Variant
	Size         Size
	Disabled     bool
	Loading      bool
	Width        int // 0 sizes the button to its label
}

// NewButton creates a medium primary button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// Pressable reports whether activating the button should run its action.
func (b Button) Pressable() bool {
	return !b.Disabled && !b.Loading
}

// Text returns the label the button currently shows.
func (b Button) Text() string {
	if b.Loading {
		if b.LoadingLabel != "" {
			return b.LoadingLabel
		}
		return "⏳"
	}
	return b.Label
}

// Render draws the button. A focused button is marked with an arrow.
func (b Button) Render(focused bool) string {
	vertical, horizontal := b.Size.padding()

	style := lipgloss.NewStyle().
		Padding(vertical, horizontal).
		Bold(true).
		Align(lipgloss.Center)

	if b.Pressable() {
		style = style.Foreground(LightColor).Background(b.Variant.color())
	} else {
		style = style.Foreground(MutedColor).Background(DarkColor)
	}
	if b.Width > 0 {
		style = style.Width(b.Width)
	}
	if focused && b.Pressable() {
		style = style.Underline(true)
	}

	rendered := style.Render(b.Text())
	if focused {
		return lipgloss.JoinHorizontal(lipgloss.Center, BackStyle.Render("▸ "), rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, "  ", rendered)
}
