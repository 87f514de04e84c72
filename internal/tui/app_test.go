package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiku57/spreadsheet-app/internal/editor"
	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

var testTabs = []string{"All Orders", "Pending", "Reviewed", "Arrived"}

func newTestModel(t *testing.T, opts Options) (AppModel, *sheet.Store) {
	t.Helper()
	records, err := sheet.Seed()
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	store, err := sheet.NewStore(records)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if opts.Tabs == nil {
		opts.Tabs = testTabs
	}
	return NewAppModel(store, opts), store
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update() returned %T, want AppModel", next)
	}
	return am, cmd
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// cellPoint returns screen coordinates inside the given row index and column id
// for a model without a window size.
func cellPoint(t *testing.T, m AppModel, rowIdx int, columnID string) (int, int) {
	t.Helper()
	for _, s := range m.columnSpans() {
		if m.columns[s.index].ID == columnID {
			return s.x0 + 1, bodyTop + rowIdx
		}
	}
	t.Fatalf("column %q not visible", columnID)
	return 0, 0
}

func activeCell(t *testing.T, m AppModel) editor.Cell {
	t.Helper()
	cell, ok := m.ctrl.Active()
	if !ok {
		t.Fatal("grid is Idle, want Editing")
	}
	return cell
}

func TestView_PadsToTargetRows(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})

	lines := strings.Split(m.gridView(m.rows()), "\n")
	if got := len(lines) - gridHeaderLines; got != 40 {
		t.Errorf("grid renders %d rows, want 40", got)
	}

	view := m.View()
	for _, want := range []string{"Spreadsheet 3", "John Doe", "Job Request", "All Orders", "$6,200,000"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(view, emptyMessage) {
		t.Error("View() shows the empty message with rows present")
	}
}

func TestView_EmptyMessage(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 0})
	m.filter = "no such value"

	if !strings.Contains(m.View(), emptyMessage) {
		t.Errorf("View() missing %q", emptyMessage)
	}
}

func TestView_ActionsOnlyForLoadedRows(t *testing.T) {
	m, store := newTestModel(t, Options{TargetRows: 40})
	actions := m.columns[sheet.ColumnIndex(m.columns, sheet.ColumnActions)]

	if got := m.renderCell(sheet.Record{ID: 5}, actions); !strings.Contains(got, "view") {
		t.Errorf("row 5 actions = %q, want view/edit controls", got)
	}

	if _, err := store.SetField(9, sheet.FieldJobRequest, "promoted"); err != nil {
		t.Fatal(err)
	}
	if got := m.renderCell(sheet.Record{ID: 9}, actions); strings.TrimSpace(got) != "" {
		t.Errorf("row 9 actions = %q, want blank", got)
	}
}

func TestClickTypePromote(t *testing.T) {
	m, store := newTestModel(t, Options{TargetRows: 40})

	// Row index 9 is the placeholder with id 10
	x, y := cellPoint(t, m, 9, "jobRequest")
	m, _ = update(t, m, leftClick(x, y))

	if got := activeCell(t, m); got != (editor.Cell{RowID: 10, Column: "jobRequest"}) {
		t.Fatalf("Active() = %v, want 10/jobRequest", got)
	}

	m = typeText(t, m, "Hi")

	rec, ok := store.Get(10)
	if !ok {
		t.Fatal("placeholder row 10 was not promoted")
	}
	if rec.JobRequest != "Hi" || rec.Priority != "" {
		t.Errorf("record 10 = %+v, want only JobRequest set", rec)
	}
	if store.Len() != 6 {
		t.Errorf("store has %d records, want 6", store.Len())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ctrl.Editing() {
		t.Error("esc should return to Idle")
	}
}

func TestClickNonEditableColumn(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})

	x, y := cellPoint(t, m, 0, "priority")
	m, _ = update(t, m, leftClick(x, y))
	activeCell(t, m)

	x, y = cellPoint(t, m, 0, sheet.ColumnRowID)
	m, _ = update(t, m, leftClick(x, y))
	if m.ctrl.Editing() {
		t.Error("clicking the # column should leave the grid Idle")
	}
}

func TestFocusOncePerCell(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})

	x, y := cellPoint(t, m, 1, "priority")
	m, _ = update(t, m, leftClick(x, y))
	if got := m.cellInput.Value(); got != "High" {
		t.Fatalf("input value = %q, want stored value High", got)
	}

	m = typeText(t, m, "!")

	// Clicking the same cell again keeps the input as is
	m, _ = update(t, m, leftClick(x, y))
	if got := m.cellInput.Value(); got != "High!" {
		t.Errorf("input value after re-click = %q, want High!", got)
	}

	// Moving loads the next cell's value
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := activeCell(t, m); got != (editor.Cell{RowID: 3, Column: "priority"}) {
		t.Fatalf("Active() = %v, want 3/priority", got)
	}
	if got := m.cellInput.Value(); got != "Medium" {
		t.Errorf("input value = %q, want Medium", got)
	}
}

func TestKeyboardNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyType
		want *editor.Cell
	}{
		{"enter activates first cell", nil, &editor.Cell{RowID: 1, Column: "jobRequest"}},
		{"right", []tea.KeyType{tea.KeyRight}, &editor.Cell{RowID: 1, Column: "submitted"}},
		{"enter moves down", []tea.KeyType{tea.KeyEnter}, &editor.Cell{RowID: 2, Column: "jobRequest"}},
		{"up clamps", []tea.KeyType{tea.KeyUp}, &editor.Cell{RowID: 1, Column: "jobRequest"}},
		{"left onto # goes idle", []tea.KeyType{tea.KeyLeft}, nil},
		{"right skips actions", []tea.KeyType{tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyRight}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{TargetRows: 40})
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			for _, k := range tt.keys {
				m, _ = update(t, m, tea.KeyMsg{Type: k})
			}

			cell, ok := m.ctrl.Active()
			if tt.want == nil {
				if ok {
					t.Errorf("Active() = %v, want Idle", cell)
				}
				return
			}
			if !ok || cell != *tt.want {
				t.Errorf("Active() = (%v, %v), want %v", cell, ok, *tt.want)
			}
		})
	}
}

func TestEnterResumesLastCell(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})

	x, y := cellPoint(t, m, 3, "dueDate")
	m, _ = update(t, m, leftClick(x, y))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := activeCell(t, m); got != (editor.Cell{RowID: 4, Column: "dueDate"}) {
		t.Errorf("Active() = %v, want 4/dueDate", got)
	}
}

func TestBlurMsg(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	activeCell(t, m)

	m, _ = update(t, m, tea.BlurMsg{})
	if m.ctrl.Editing() {
		t.Error("BlurMsg should return to Idle")
	}
	if m.cellInput.Focused() {
		t.Error("cell input still focused after blur")
	}
}

func TestSearchFilters(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if m.searching {
		t.Fatal("'/' while editing should be typed into the cell")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.searching {
		t.Fatal("'/' while Idle should focus search")
	}

	m = typeText(t, m, "BLOCKED")
	rows := m.rows()
	if len(rows) != 40 || rows[0].ID != 5 || rows[1].ID != 2 {
		t.Errorf("rows after search = %d rows starting %d, %d; want 40 starting 5, 2", len(rows), rows[0].ID, rows[1].ID)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Error("enter should leave the search box")
	}
	if m.filter != "BLOCKED" {
		t.Errorf("filter = %q, want BLOCKED", m.filter)
	}
}

func TestTabs(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40, DefaultTab: "Arrived"})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if cmd == nil {
		t.Fatal("']' returned no command")
	}
	msg, ok := cmd().(tabChangedMsg)
	if !ok || msg.tab != "All Orders" {
		t.Fatalf("']' emitted %#v, want wrap to All Orders", msg)
	}
	m, _ = update(t, m, msg)
	if m.activeTab != "All Orders" {
		t.Errorf("activeTab = %q, want All Orders", m.activeTab)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})
	z := m.tabZones()[2]
	_, cmd = update(t, m, leftClick(z.x0+1, m.tabBarY()))
	if cmd == nil {
		t.Fatal("tab click returned no command")
	}
	if msg, ok := cmd().(tabChangedMsg); !ok || msg.tab != "Reviewed" {
		t.Errorf("tab click emitted %#v, want Reviewed", msg)
	}
}

func TestAddTabClick(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})

	zones := m.tabZones()
	if len(zones) != len(m.tabs)+1 {
		t.Fatalf("tabZones() = %d zones, want %d", len(zones), len(m.tabs)+1)
	}
	add := zones[len(zones)-1]
	if !strings.Contains(m.footerView(), addTabLabel) {
		t.Error("tab bar should render the add button")
	}

	_, cmd := update(t, m, leftClick(add.x0+1, m.tabBarY()))
	if cmd == nil {
		t.Fatal("add tab click returned no command")
	}
	msg, ok := cmd().(intentMsg)
	if !ok || msg.intent != IntentAddTab {
		t.Fatalf("add tab click emitted %#v, want IntentAddTab", msg)
	}

	before := m.activeTab
	m, _ = update(t, m, msg)
	if m.status != "Add tab clicked" {
		t.Errorf("status = %q, want Add tab clicked", m.status)
	}
	if m.activeTab != before || len(m.tabs) != len(testTabs) {
		t.Errorf("add tab changed tabs: active %q, %d tabs", m.activeTab, len(m.tabs))
	}
}

func TestToolbarExportImport(t *testing.T) {
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "out.yaml")
	m, store := newTestModel(t, Options{TargetRows: 40, ExportPath: exportPath, ImportPath: exportPath})

	var exportZone zone
	for _, z := range toolbarZones() {
		if z.target == IntentExport.String() {
			exportZone = z
		}
	}
	_, cmd := update(t, m, leftClick(exportZone.x0+1, toolbarY))
	if cmd == nil {
		t.Fatal("export click returned no command")
	}
	intent, ok := cmd().(intentMsg)
	if !ok || intent.intent != IntentExport {
		t.Fatalf("export click emitted %#v", intent)
	}

	m, cmd = update(t, m, intent)
	done, ok := cmd().(exportDoneMsg)
	if !ok || done.err != nil || done.count != 5 {
		t.Fatalf("export finished with %#v", done)
	}
	m, _ = update(t, m, done)
	if !strings.Contains(m.status, "Exported 5 records") {
		t.Errorf("status = %q", m.status)
	}

	// Shrink the file to two records and import it back
	data := "records:\n  - id: 1\n    jobRequest: a\n  - id: 2\n    jobRequest: b\n"
	if err := os.WriteFile(exportPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	m, cmd = update(t, m, intentMsg{intent: IntentImport})
	m, _ = update(t, m, cmd())

	if store.Len() != 2 || store.Loaded() != 2 {
		t.Errorf("store after import: Len=%d Loaded=%d, want 2/2", store.Len(), store.Loaded())
	}
	if !strings.Contains(m.status, "Imported 2 records") {
		t.Errorf("status = %q", m.status)
	}
}

func TestImportFailureKeepsStore(t *testing.T) {
	m, store := newTestModel(t, Options{TargetRows: 40, ImportPath: filepath.Join(t.TempDir(), "missing.csv")})

	m, cmd := update(t, m, intentMsg{intent: IntentImport})
	m, _ = update(t, m, cmd())

	if store.Len() != 5 {
		t.Errorf("store has %d records, want 5", store.Len())
	}
	if !m.statusErr || !strings.Contains(m.status, "Import failed") {
		t.Errorf("status = %q (err %v)", m.status, m.statusErr)
	}
}

func TestActionsClick(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})

	x, y := cellPoint(t, m, 2, sheet.ColumnActions)
	m, _ = update(t, m, leftClick(x, y))

	if m.ctrl.Editing() {
		t.Error("clicking actions should leave the grid Idle")
	}
	if m.status != "View row 3" {
		t.Errorf("status = %q, want View row 3", m.status)
	}
}

func TestCopyActiveCell(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "Launch social media campaign for product XYZ" {
		t.Errorf("copied %q", copied)
	}

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !m.statusErr {
		t.Error("copy failure should set an error status")
	}
}

func TestFollowActiveScrolls(t *testing.T) {
	m, _ := newTestModel(t, Options{TargetRows: 40})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 30; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.rowOffset == 0 {
		t.Error("rowOffset did not follow the active row")
	}

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := activeCell(t, m); got.Column != "estValue" {
		t.Fatalf("Active() = %v, want estValue column", got)
	}
	if !m.columnVisible(sheet.ColumnIndex(m.columns, "estValue")) {
		t.Error("active column scrolled out of view")
	}
}
