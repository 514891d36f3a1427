package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepIndicator shows where the user is in a multi-step form: a progress
// bar, a step counter and the step names.
type StepIndicator struct {
	Names   []string
	Current int // 1-based
	Width   int
	bar     progress.Model
}

// NewStepIndicator creates an indicator positioned on step current.
func NewStepIndicator(current int, names ...string) *StepIndicator {
	s := &StepIndicator{Names: names, Current: current}
	return s.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (s *StepIndicator) SetWidth(width int) *StepIndicator {
	s.Width = width
	barWidth := width - 20
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}
	s.bar = progress.New(
		progress.WithSolidFill(string(PrimaryColor)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return s
}

// Total returns the number of steps.
func (s *StepIndicator) Total() int {
	return len(s.Names)
}

// Percent returns the share of steps reached, counting the current one.
func (s *StepIndicator) Percent() float64 {
	if s.Total() == 0 {
		return 0
	}
	current := s.Current
	if current < 0 {
		current = 0
	}
	if current > s.Total() {
		current = s.Total()
	}
	return float64(current) / float64(s.Total())
}

// Render returns the bar with the counter and the list of step names.
func (s *StepIndicator) Render() string {
	counter := StepCurrentStyle.Render(fmt.Sprintf("Etapa %d de %d", s.Current, s.Total()))
	barLine := lipgloss.JoinHorizontal(lipgloss.Center, s.bar.ViewAs(s.Percent()), "  ", counter)

	names := make([]string, len(s.Names))
	for i, name := range s.Names {
		step := i + 1
		switch {
		case step < s.Current:
			names[i] = StepCompleteStyle.Render(StepMarkerComplete + " " + name)
		case step == s.Current:
			names[i] = StepCurrentStyle.Render(StepMarkerCurrent + " " + name)
		default:
			names[i] = StepPendingStyle.Render(StepMarkerPending + " " + name)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, barLine, strings.Join(names, "   "))
}

// String implements fmt.Stringer
func (s *StepIndicator) String() string {
	return s.Render()
}
