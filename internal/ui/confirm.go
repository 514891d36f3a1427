package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a yes/no question. Only an
// explicit "s", "sim", "y" or "yes" confirms; anything else, including a
// read error, declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitle(title), ""}
	for _, w := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+w))
	}
	lines = append(lines, "")

	fmt.Fprintln(out, WarningBoxStyle(width).Render(strings.Join(lines, "\n")))
	fmt.Fprintln(out)

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	fmt.Fprint(out, prompt.Render(question+" [s/N]: "))

	answer, err := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}

	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operação cancelada."))
	return false
}
