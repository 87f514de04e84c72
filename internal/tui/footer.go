package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// addTabLabel is the button after the last tab.
const addTabLabel = " + "

// tabZones lays out the footer tab bar, tabs first and the add button last.
// View and hit-testing share it.
func (m AppModel) tabZones() []zone {
	zones := make([]zone, 0, len(m.tabs)+1)
	x := 0
	for _, tab := range m.tabs {
		w := runewidth.StringWidth(tabLabel(tab))
		zones = append(zones, zone{x0: x, x1: x + w, target: tab})
		x += w + 1
	}
	w := runewidth.StringWidth(addTabLabel)
	return append(zones, zone{x0: x, x1: x + w, target: IntentAddTab.String()})
}

func tabLabel(tab string) string {
	return " " + tab + " "
}

// footerView renders the status line, tab bar and key help.
func (m AppModel) footerView() string {
	status := ""
	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		status = style.Render(m.status)
	}

	tabs := make([]string, 0, len(m.tabs))
	for _, tab := range m.tabs {
		style := TabStyle
		if tab == m.activeTab {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(tabLabel(tab)))
	}
	tabs = append(tabs, TabStyle.Render(addTabLabel))

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		strings.Join(tabs, " "),
		HelpStyle.Render(m.help.View(m.keys)),
	)
}

// tabBarY is the screen line of the tab bar, or -1 before the first resize.
func (m AppModel) tabBarY() int {
	if m.Height <= 0 {
		return -1
	}
	return m.Height - lipgloss.Height(m.footerView()) + 1
}

// nextTab returns the tab delta steps away from the active one, wrapping.
func (m AppModel) nextTab(delta int) string {
	if len(m.tabs) == 0 {
		return m.activeTab
	}
	idx := 0
	for i, t := range m.tabs {
		if t == m.activeTab {
			idx = i
			break
		}
	}
	n := len(m.tabs)
	return m.tabs[((idx+delta)%n+n)%n]
}
