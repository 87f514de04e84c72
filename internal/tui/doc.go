// Package tui implements the interactive spreadsheet grid.
//
// The screen is a single Bubble Tea model, AppModel, laid out top to bottom:
//
//   - Header: breadcrumbs and user, then the toolbar with the search box and
//     the Import, Export, Share and New Action buttons
//   - Grid: column headers over the materialized rows; the # column stays
//     frozen while the others scroll horizontally
//   - Footer: status line, tab bar and key help
//
// AppModel owns the sheet.Store and the editor.Controller. Every key, mouse
// and focus message runs through Update on the program goroutine, so the
// store and controller need no locking. Header and footer never act on their
// own: buttons and tabs emit intentMsg and tabChangedMsg commands which
// Update then handles. Import and export run as commands and report back
// with importDoneMsg and exportDoneMsg.
//
// # Editing
//
// A single textinput.Model serves as the cell editor. Whenever the active
// cell identity changes it is loaded with the stored value and focused once;
// each keystroke that changes its value is written to the store through
// Controller.Input, promoting placeholder rows as needed. Arrow keys, enter
// and esc go to Controller.Key instead of the input.
//
// In Idle, enter resumes the last active cell (or the first editable cell of
// the first row), "/" focuses the search box and "[" / "]" cycle tabs.
//
// # Mouse
//
// With mouse reporting enabled, clicks are hit-tested against the same
// layout functions View uses (toolbarZones, tabZones, columnSpans).
//
// # Usage Example
//
//	store, _ := sheet.NewStore(records)
//	app := tui.NewAppModel(store, tui.Options{TargetRows: 40, Tabs: config.Tabs})
//	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
