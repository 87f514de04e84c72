package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line of a header.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed at the start of a non-interactive command.
type Header struct {
	Title   string  // e.g., "EXPORT RECORDS"
	Command string  // e.g., "sheet export"
	Params  []Param // printed in order
	Width   int
}

// NewHeader creates a new header sized to the terminal
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)

	content := top
	if len(h.Params) > 0 {
		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			lines = append(lines, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		divider := RenderHorizontalDivider(max(width-6, 10), "─")
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
