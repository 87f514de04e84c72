package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Header branding
const (
	UserName  = "John Doe"
	UserEmail = "john.doe@example.com"
)

// Breadcrumbs shown at the left of the header, outermost first.
var Breadcrumbs = []string{"Workspace", "Folder 2", "Spreadsheet 3"}

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#15803D") // Green 700 - buttons, active tab
	AccentColor  = lipgloss.Color("#EA580C") // Orange - estimated value column
	ErrorColor   = lipgloss.Color("#DC2626") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#3F3F46") // Zinc
	HighlightColor = lipgloss.Color("#60A5FA") // Blue - focused search, action links

	// Priority badge colors
	BadgeHighColor   = lipgloss.Color("#B91C1C")
	BadgeMediumColor = lipgloss.Color("#CA8A04")
	BadgeLowColor    = lipgloss.Color("#15803D")
)

// Common styles
var (
	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	BreadcrumbCurrentStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	UserStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	UserEmailStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ToolbarLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	SearchStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	FocusedSearchStyle = lipgloss.NewStyle().
				Foreground(HighlightColor)

	// Grid styles
	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	ValueHeaderStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	RowIDStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	CellStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ValueCellStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	ActiveCellStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("236")).
			Underline(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Underline(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			PaddingLeft(2)

	DividerStyle = lipgloss.NewStyle().
			Foreground(BorderColor)

	// Footer styles
	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Underline(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// BadgeStyle returns the pill style for a priority value.
// Anything that is not High or Medium renders as Low.
func BadgeStyle(priority string) lipgloss.Style {
	bg := BadgeLowColor
	switch priority {
	case "High":
		bg = BadgeHighColor
	case "Medium":
		bg = BadgeMediumColor
	}
	return lipgloss.NewStyle().
		Foreground(TextColor).
		Background(bg).
		Bold(true)
}
