package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiku57/spreadsheet-app/internal/sheet"
	"github.com/Tiku57/spreadsheet-app/internal/transfer"
)

// Intent is a user request raised by the header or footer chrome.
type Intent int

const (
	IntentImport Intent = iota
	IntentExport
	IntentShare
	IntentNewAction
	IntentAddTab
)

// String returns the intent name used in logs and click targets.
func (i Intent) String() string {
	switch i {
	case IntentImport:
		return "import"
	case IntentExport:
		return "export"
	case IntentShare:
		return "share"
	case IntentNewAction:
		return "new_action"
	case IntentAddTab:
		return "add_tab"
	default:
		return "unknown"
	}
}

// intentMsg carries an Intent from the chrome up to the app.
type intentMsg struct {
	intent Intent
}

// tabChangedMsg carries a footer tab selection up to the app.
type tabChangedMsg struct {
	tab string
}

// importDoneMsg reports the result of an asynchronous import.
type importDoneMsg struct {
	path    string
	records []sheet.Record
	err     error
}

// exportDoneMsg reports the result of an asynchronous export.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

func emitIntent(i Intent) tea.Cmd {
	return func() tea.Msg {
		return intentMsg{intent: i}
	}
}

func emitTab(tab string) tea.Cmd {
	return func() tea.Msg {
		return tabChangedMsg{tab: tab}
	}
}

// importCmd reads records from path off the update loop.
func importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		records, err := transfer.Import(path)
		return importDoneMsg{path: path, records: records, err: err}
	}
}

// exportCmd writes a snapshot of the records to path off the update loop.
func exportCmd(path string, records []sheet.Record) tea.Cmd {
	return func() tea.Msg {
		err := transfer.Export(path, records)
		return exportDoneMsg{path: path, count: len(records), err: err}
	}
}
