package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Header occupies the first headerLines lines of the screen:
// breadcrumbs and user, toolbar, divider.
const (
	headerLines   = 3
	toolbarY      = 1
	searchWidth   = 28
	toolbarLabel  = "Tool bar ›"
	searchPrompt  = "Search: "
	toolbarGap    = 2
	breadcrumbSep = " / "
)

// zone is a clickable horizontal span [x0, x1) on one screen line.
type zone struct {
	x0, x1 int
	target string
}

func (z zone) contains(x int) bool {
	return x >= z.x0 && x < z.x1
}

// Toolbar click targets
const (
	targetSearch = "search"
)

// toolbarButtons are the right-hand toolbar buttons in display order.
var toolbarButtons = []struct {
	label  string
	intent Intent
}{
	{" Import ", IntentImport},
	{" Export ", IntentExport},
	{" Share ", IntentShare},
	{" + New Action ", IntentNewAction},
}

// toolbarZones lays out the toolbar line. View and hit-testing share it.
func toolbarZones() []zone {
	x := runewidth.StringWidth(toolbarLabel) + toolbarGap
	zones := []zone{{x0: x, x1: x + runewidth.StringWidth(searchPrompt) + searchWidth, target: targetSearch}}
	x = zones[0].x1 + toolbarGap

	for _, b := range toolbarButtons {
		w := runewidth.StringWidth(b.label)
		zones = append(zones, zone{x0: x, x1: x + w, target: b.intent.String()})
		x += w + toolbarGap
	}
	return zones
}

// headerView renders the three header lines.
func (m AppModel) headerView() string {
	var crumbs []string
	for i, c := range Breadcrumbs {
		if i == len(Breadcrumbs)-1 {
			crumbs = append(crumbs, BreadcrumbCurrentStyle.Render(c))
		} else {
			crumbs = append(crumbs, BreadcrumbStyle.Render(c))
		}
	}
	left := strings.Join(crumbs, BreadcrumbStyle.Render(breadcrumbSep)) + BreadcrumbStyle.Render("  ...")
	right := UserStyle.Render(UserName) + " " + UserEmailStyle.Render(UserEmail)

	var top string
	if m.Width > 0 {
		gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		top = left + strings.Repeat(" ", gap) + right
	} else {
		top = left + "  " + right
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, m.toolbarView(), m.dividerView())
}

func (m AppModel) toolbarView() string {
	zones := toolbarZones()

	var b strings.Builder
	b.WriteString(ToolbarLabelStyle.Render(toolbarLabel))
	b.WriteString(strings.Repeat(" ", toolbarGap))

	searchStyle := SearchStyle
	if m.searching {
		searchStyle = FocusedSearchStyle
	}
	b.WriteString(searchStyle.Render(searchPrompt))
	b.WriteString(fitANSI(m.searchInput.View(), searchWidth))

	for i, btn := range toolbarButtons {
		b.WriteString(strings.Repeat(" ", zones[i+1].x0-zones[i].x1))
		style := ButtonStyle
		if btn.intent == IntentNewAction {
			style = PrimaryButtonStyle
		}
		b.WriteString(style.Render(btn.label))
	}
	return b.String()
}

func (m AppModel) dividerView() string {
	width := m.Width
	if width <= 0 {
		width = m.gridWidth()
	}
	return DividerStyle.Render(strings.Repeat("─", width))
}

// fitANSI pads or cuts an already styled string to exactly width cells.
func fitANSI(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// fitPlain truncates or pads unstyled text to exactly width cells.
func fitPlain(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
