package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType // Success, failure, or warning
	Title           string     // e.g., "Export complete"
	Details         []Param    // Key-value details, printed in order
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
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

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
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
		return boxStyle(ErrorColor, width).Render(r.failureContent(width))
	case ResultWarning:
		title := WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
		return boxStyle(WarningColor, width).Render(r.detailContent(title))
	default:
		title := SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
		return boxStyle(SuccessColor, width).Render(r.detailContent(title))
	}
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

func (r *Result) detailContent(title string) string {
	lines := []string{"", title, ""}
	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(d.Value))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (r *Result) failureContent(width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return strings.Join(lines, "\n")
}

// renderTroubleshootingBox renders the nested troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:")}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("• "+tip))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-12).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}
