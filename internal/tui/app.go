package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Tiku57/spreadsheet-app/internal/editor"
	"github.com/Tiku57/spreadsheet-app/internal/logging"
	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

// Options configures a new AppModel
type Options struct {
	TargetRows int      // rows shown while data is shorter; 0 shows only data
	Tabs       []string // footer tabs in display order
	DefaultTab string
	ImportPath string
	ExportPath string
}

// AppModel is the top-level coordinator: it owns the record store, the edit
// controller, the search term and the active tab, and routes every message.
type AppModel struct {
	store   *sheet.Store
	ctrl    *editor.Controller
	columns []sheet.Column

	// Single edit input, refocused whenever the active cell identity changes
	cellInput textinput.Model
	focused   *editor.Cell
	lastCell  *editor.Cell

	searchInput textinput.Model
	searching   bool
	filter      string

	tabs      []string
	activeTab string

	targetRows int
	importPath string
	exportPath string

	// Scroll window
	rowOffset int
	colOffset int

	status    string
	statusErr bool

	// UI state
	Width  int
	Height int

	help help.Model
	keys gridKeyMap

	copyToClipboard func(string) error
}

// NewAppModel creates the grid screen over store
func NewAppModel(store *sheet.Store, opts Options) AppModel {
	cellInput := textinput.New()
	cellInput.Prompt = ""

	searchInput := textinput.New()
	searchInput.Prompt = ""
	searchInput.Placeholder = "Search within sheet"
	searchInput.Width = searchWidth - 1

	activeTab := opts.DefaultTab
	if activeTab == "" && len(opts.Tabs) > 0 {
		activeTab = opts.Tabs[0]
	}

	return AppModel{
		store:           store,
		ctrl:            editor.NewController(store, sheet.Columns),
		columns:         sheet.Columns,
		cellInput:       cellInput,
		searchInput:     searchInput,
		tabs:            opts.Tabs,
		activeTab:       activeTab,
		targetRows:      opts.TargetRows,
		importPath:      opts.ImportPath,
		exportPath:      opts.ExportPath,
		colOffset:       1,
		help:            help.New(),
		keys:            newGridKeyMap(),
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle(Breadcrumbs[len(Breadcrumbs)-1])
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.followActive(m.rows())
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus: same as the edit input losing focus
		if m.ctrl.Editing() {
			m.ctrl.Blur()
			logging.LogStateChange("editing", "idle", "blur")
		}
		cmd := m.syncFocus()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case intentMsg:
		return m.handleIntent(msg.intent)

	case tabChangedMsg:
		m.activeTab = msg.tab
		logging.LogIntent("tab_change", zap.String("tab", msg.tab))
		return m, nil

	case importDoneMsg:
		return m.handleImportDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Export failed: %v", msg.err))
			logging.Error("Export failed", zap.String("path", msg.path), zap.Error(msg.err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Exported %d records to %s", msg.count, msg.path))
		logging.Info("Records exported", zap.String("path", msg.path), zap.Int("count", msg.count))
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	switch {
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case m.ctrl.Editing():
		m.cellInput, cmd = m.cellInput.Update(msg)
	}
	return m, cmd
}

// handleKey routes a key press by mode: search box, editing, or idle
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Import):
		return m, emitIntent(IntentImport)
	case key.Matches(msg, m.keys.Export):
		return m, emitIntent(IntentExport)
	case key.Matches(msg, m.keys.Share):
		return m, emitIntent(IntentShare)
	case key.Matches(msg, m.keys.NewAction):
		return m, emitIntent(IntentNewAction)
	case key.Matches(msg, m.keys.Copy):
		return m.copyActiveCell()
	}

	if m.searching {
		return m.updateSearch(msg)
	}
	if m.ctrl.Editing() {
		return m.updateEditing(msg)
	}
	return m.updateIdle(msg)
}

// updateSearch feeds the search box and re-filters on every change
func (m AppModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Enter) {
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.filter {
		m.filter = v
		m.rowOffset = 0
		logging.Debug("Search changed", zap.String("term", v))
	}
	return m, cmd
}

// updateEditing handles keys while a cell is active
func (m AppModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k := m.keys.navigationKey(msg); k != editor.KeyOther {
		rows := m.rows()
		m.ctrl.Key(k, rows)
		if !m.ctrl.Editing() {
			logging.LogStateChange("editing", "idle", k.String())
		}
		cmd := m.syncFocus()
		m.followActive(rows)
		return m, cmd
	}

	before := m.cellInput.Value()
	var cmd tea.Cmd
	m.cellInput, cmd = m.cellInput.Update(msg)
	if value := m.cellInput.Value(); value != before {
		cell, _ := m.ctrl.Active()
		promoted, err := m.ctrl.Input(value)
		if err != nil {
			m.setError(err.Error())
			return m, cmd
		}
		logging.LogCellEdit(cell.RowID, cell.Column, promoted)
		if promoted {
			m.setStatus(fmt.Sprintf("Row %d added", cell.RowID))
		}
	}
	return m, cmd
}

// updateIdle handles keys while no cell is active
func (m AppModel) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		return m.enterGrid()
	case key.Matches(msg, m.keys.Search):
		cmd := m.focusSearch()
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		return m, emitTab(m.nextTab(-1))
	case key.Matches(msg, m.keys.NextTab):
		return m, emitTab(m.nextTab(1))
	case key.Matches(msg, m.keys.PageUp):
		rows := m.rows()
		m.scroll(-m.bodyHeight(len(rows)), len(rows))
	case key.Matches(msg, m.keys.PageDown):
		rows := m.rows()
		m.scroll(m.bodyHeight(len(rows)), len(rows))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// enterGrid clicks the last active cell, or the first editable cell of the
// first row, so the grid can be edited without a mouse.
func (m AppModel) enterGrid() (tea.Model, tea.Cmd) {
	rows := m.rows()
	if len(rows) == 0 {
		return m, nil
	}

	target := editor.Cell{RowID: rows[0].ID}
	for _, c := range m.columns {
		if c.Editable() {
			target.Column = c.ID
			break
		}
	}
	if m.lastCell != nil && sheet.IndexOf(rows, m.lastCell.RowID) >= 0 {
		target = *m.lastCell
	}

	m.ctrl.Click(target.RowID, target.Column)
	logging.LogStateChange("idle", "editing", "enter")
	cmd := m.syncFocus()
	m.followActive(rows)
	return m, cmd
}

// handleMouse hit-tests a left click against toolbar, tabs and grid
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-3, len(rows))
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(3, len(rows))
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	if msg.Y == toolbarY {
		for _, z := range toolbarZones() {
			if !z.contains(msg.X) {
				continue
			}
			if z.target == targetSearch {
				cmd := m.focusSearch()
				return m, cmd
			}
			for _, b := range toolbarButtons {
				if b.intent.String() == z.target {
					return m, emitIntent(b.intent)
				}
			}
		}
	}

	if msg.Y == m.tabBarY() {
		zones := m.tabZones()
		for i, z := range zones {
			if !z.contains(msg.X) {
				continue
			}
			if i == len(zones)-1 {
				return m, emitIntent(IntentAddTab)
			}
			return m, emitTab(z.target)
		}
	}

	m.searching = false
	m.searchInput.Blur()

	rowIdx, colIdx, relX, ok := m.cellAt(msg.X, msg.Y, rows)
	if !ok {
		if m.ctrl.Editing() {
			m.ctrl.Blur()
			logging.LogStateChange("editing", "idle", "click")
		}
		cmd := m.syncFocus()
		return m, cmd
	}

	row, col := rows[rowIdx], m.columns[colIdx]
	if col.Format == sheet.FormatActions && m.store.HasActions(row.ID) {
		if action := actionAt(relX); action != "" {
			logging.LogIntent(action, zap.Int("row_id", row.ID))
			m.setStatus(fmt.Sprintf("%s row %d", actionTitle(action), row.ID))
		}
	}

	wasEditing := m.ctrl.Editing()
	m.ctrl.Click(row.ID, col.ID)
	if m.ctrl.Editing() != wasEditing {
		if wasEditing {
			logging.LogStateChange("editing", "idle", "click")
		} else {
			logging.LogStateChange("idle", "editing", "click")
		}
	}
	cmd := m.syncFocus()
	m.followActive(rows)
	return m, cmd
}

func actionTitle(action string) string {
	if action == actionEdit {
		return "Edit"
	}
	return "View"
}

// handleIntent acts on a chrome intent
func (m AppModel) handleIntent(intent Intent) (tea.Model, tea.Cmd) {
	logging.LogIntent(intent.String())

	switch intent {
	case IntentImport:
		m.setStatus("Importing " + m.importPath + "...")
		return m, importCmd(m.importPath)
	case IntentExport:
		m.setStatus("Exporting " + m.exportPath + "...")
		return m, exportCmd(m.exportPath, m.store.Records())
	case IntentShare:
		m.setStatus("Share clicked")
	case IntentNewAction:
		m.setStatus("New Action clicked")
	case IntentAddTab:
		m.setStatus("Add tab clicked")
	}
	return m, nil
}

// handleImportDone replaces the store with imported records
func (m AppModel) handleImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("Import failed: %v", msg.err))
		logging.Error("Import failed", zap.String("path", msg.path), zap.Error(msg.err))
		return m, nil
	}
	if err := m.store.Replace(msg.records); err != nil {
		m.setError(fmt.Sprintf("Import failed: %v", err))
		return m, nil
	}

	m.ctrl.Blur()
	m.lastCell = nil
	m.rowOffset = 0
	m.setStatus(fmt.Sprintf("Imported %d records from %s", len(msg.records), msg.path))
	logging.Info("Records imported", zap.String("path", msg.path), zap.Int("count", len(msg.records)))
	cmd := m.syncFocus()
	return m, cmd
}

// copyActiveCell puts the active cell's stored value on the clipboard
func (m AppModel) copyActiveCell() (tea.Model, tea.Cmd) {
	cell, ok := m.ctrl.Active()
	if !ok {
		return m, nil
	}
	if err := m.copyToClipboard(m.ctrl.Value()); err != nil {
		m.setError(fmt.Sprintf("Copy failed: %v", err))
		return m, nil
	}
	m.setStatus("Copied " + cell.String())
	return m, nil
}

// focusSearch moves keyboard focus to the search box, leaving the grid Idle
func (m *AppModel) focusSearch() tea.Cmd {
	if m.ctrl.Editing() {
		m.ctrl.Blur()
		logging.LogStateChange("editing", "idle", "search")
	}
	m.syncFocus()
	m.searching = true
	return m.searchInput.Focus()
}

// syncFocus focuses the cell input once per change of active cell identity,
// loading the cell's stored value. Going Idle blurs it.
func (m *AppModel) syncFocus() tea.Cmd {
	cell, ok := m.ctrl.Active()
	if !ok {
		if m.focused != nil {
			m.cellInput.Blur()
			m.focused = nil
		}
		return nil
	}

	active := cell
	m.lastCell = &active
	if m.focused != nil && *m.focused == cell {
		return nil
	}

	if idx := sheet.ColumnIndex(m.columns, cell.Column); idx >= 0 {
		m.cellInput.Width = max(m.columns[idx].Width-1, 1)
	}
	m.focused = &active
	m.cellInput.SetValue(m.ctrl.Value())
	m.cellInput.CursorEnd()
	return m.cellInput.Focus()
}

func (m *AppModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *AppModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

// View renders header, grid and footer
func (m AppModel) View() string {
	footer := m.footerView()
	grid := m.gridView(m.rows())
	if m.Height > 0 {
		grid = lipgloss.NewStyle().
			Height(m.Height - headerLines - lipgloss.Height(footer)).
			Render(grid)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), grid, footer)
}
