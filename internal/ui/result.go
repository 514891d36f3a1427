package ui

import (
	"fmt"
	"strings"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Detail is one key-value line of a result box.
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string
	Details []Detail // Shown in order
	Message string   // User-facing error text (for failure results)
	Hints   []string // Follow-up suggestions (for failure results)
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title, message string, hints ...string) *Result {
	return &Result{
		Type:    ResultFailure,
		Title:   title,
		Message: message,
		Hints:   hints,
		Width:   GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Detail) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	switch r.Type {
	case ResultFailure:
		return ErrorBoxStyle(width).Render(r.failureContent(width))
	case ResultWarning:
		title := WarningTitle(r.Title)
		return WarningBoxStyle(width).Render(r.detailContent(title))
	default:
		title := SuccessTitleStyle.Render(fmt.Sprintf(" %s  %s", SuccessMarker, r.Title))
		return SuccessBoxStyle(width).Render(r.detailContent(title))
	}
}

func (r *Result) detailContent(title string) string {
	lines := []string{"", title, ""}
	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (r *Result) failureContent(width int) string {
	lines := []string{"", ErrorTitleStyle.Render(fmt.Sprintf(" %s  %s", FailureMarker, r.Title)), ""}

	if r.Message != "" {
		lines = append(lines, ErrorMessageStyle.Render(" "+r.Message), "")
	}

	if len(r.Hints) > 0 {
		hints := []string{HintTitleStyle.Render("Dicas:"), ""}
		for _, h := range r.Hints {
			hints = append(hints, HintItemStyle.Render("  • "+h))
		}
		lines = append(lines, HintBoxStyle(width).Render(strings.Join(hints, "\n")), "")
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// WarningTitle renders a warning heading.
func WarningTitle(title string) string {
	return WarningTitleStyle.Render(fmt.Sprintf(" %s  %s", WarningMarker, title))
}
