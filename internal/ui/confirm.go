package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite displays a warning box and asks the user to confirm with
// "y" or "yes". Any other answer, including EOF, declines.
func (p *Printer) ConfirmOverwrite(title string, warnings []string, in io.Reader) bool {
	width := GetTerminalWidth()

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)),
		"",
	}
	bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, warning := range warnings {
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	p.Println(boxStyle(WarningColor, width).Render(strings.Join(lines, "\n")))
	p.Println("")

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render("Overwrite? [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		p.Println("")
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		p.Println("")
		return true
	default:
		p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("Aborted."))
		return false
	}
}
