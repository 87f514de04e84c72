package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

// The grid starts below the header with a column header line and a divider.
const (
	gridHeaderLines = 2
	bodyTop         = headerLines + gridHeaderLines
	columnSep       = "│"
	emptyMessage    = "No data found matching your criteria."
	actionView      = "view"
	actionEdit      = "edit"
)

// colSpan is the screen placement of one visible column.
type colSpan struct {
	index  int // into m.columns
	x0, x1 int
}

// rows materializes the view from the store.
func (m AppModel) rows() []sheet.Record {
	return sheet.Materialize(m.store.Records(), m.filter, m.targetRows)
}

// bodyHeight is the number of grid rows that fit on screen.
func (m AppModel) bodyHeight(rowCount int) int {
	if m.Height <= 0 {
		return rowCount
	}
	h := m.Height - bodyTop - lipgloss.Height(m.footerView())
	if h < 1 {
		return 1
	}
	return h
}

// columnSpans returns the visible columns left to right. The first column
// stays frozen while the rest scroll from colOffset.
func (m AppModel) columnSpans() []colSpan {
	if len(m.columns) == 0 {
		return nil
	}

	spans := []colSpan{{index: 0, x0: 0, x1: m.columns[0].Width}}
	x := m.columns[0].Width + 1
	for i := max(m.colOffset, 1); i < len(m.columns); i++ {
		w := m.columns[i].Width
		if m.Width > 0 && x+w > m.Width && len(spans) > 1 {
			break
		}
		spans = append(spans, colSpan{index: i, x0: x, x1: x + w})
		x += w + 1
	}
	return spans
}

// gridWidth is the width of the grid with every column shown.
func (m AppModel) gridWidth() int {
	w := 0
	for _, c := range m.columns {
		w += c.Width + 1
	}
	return w
}

// gridView renders the column header, divider and visible body rows.
func (m AppModel) gridView(rows []sheet.Record) string {
	spans := m.columnSpans()
	sep := DividerStyle.Render(columnSep)

	headers := make([]string, 0, len(spans))
	for _, s := range spans {
		col := m.columns[s.index]
		style := ColumnHeaderStyle
		if col.Format == sheet.FormatCurrency {
			style = ValueHeaderStyle
		}
		headers = append(headers, style.Render(fitPlain(col.Label, col.Width)))
	}

	width := m.Width
	if width <= 0 {
		width = m.gridWidth()
	}
	lines := []string{
		strings.Join(headers, sep),
		DividerStyle.Render(strings.Repeat("─", width)),
	}

	if len(rows) == 0 {
		lines = append(lines, EmptyStyle.Render(emptyMessage))
		return strings.Join(lines, "\n")
	}

	off := m.offset(rows)
	end := min(off+m.bodyHeight(len(rows)), len(rows))
	for _, row := range rows[off:end] {
		cells := make([]string, 0, len(spans))
		for _, s := range spans {
			cells = append(cells, m.renderCell(row, m.columns[s.index]))
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return strings.Join(lines, "\n")
}

// renderCell renders one cell at exactly its column width. The active
// editable cell shows the edit input, every other cell its formatted value.
func (m AppModel) renderCell(row sheet.Record, col sheet.Column) string {
	if col.Editable() && m.ctrl.IsActive(row.ID, col.ID) {
		return ActiveCellStyle.Render(fitANSI(m.cellInput.View(), col.Width))
	}

	switch col.Format {
	case sheet.FormatRowID:
		return RowIDStyle.Render(fitPlain(strconv.Itoa(row.ID), col.Width))
	case sheet.FormatBadge:
		value := sheet.FormatValue(col, row)
		if value == "" {
			return fitPlain("", col.Width)
		}
		pill := runewidth.Truncate(" "+value+" ", col.Width, "…")
		return BadgeStyle(value).Render(pill) + strings.Repeat(" ", col.Width-runewidth.StringWidth(pill))
	case sheet.FormatCurrency:
		return ValueCellStyle.Render(fitPlain(sheet.FormatValue(col, row), col.Width))
	case sheet.FormatActions:
		if !m.store.HasActions(row.ID) {
			return fitPlain("", col.Width)
		}
		return fitANSI(ActionStyle.Render(actionView)+" "+ActionStyle.Render(actionEdit), col.Width)
	default:
		return CellStyle.Render(fitPlain(sheet.FormatValue(col, row), col.Width))
	}
}

// cellAt maps screen coordinates to a row index and column index of the
// current view. relX is the offset inside the cell.
func (m AppModel) cellAt(x, y int, rows []sheet.Record) (rowIdx, colIdx, relX int, ok bool) {
	rowIdx = m.offset(rows) + y - bodyTop
	if y < bodyTop || rowIdx >= len(rows) || y-bodyTop >= m.bodyHeight(len(rows)) {
		return 0, 0, 0, false
	}
	for _, s := range m.columnSpans() {
		if x >= s.x0 && x < s.x1 {
			return rowIdx, s.index, x - s.x0, true
		}
	}
	return 0, 0, 0, false
}

// actionAt returns which action control sits at offset relX of an actions cell.
func actionAt(relX int) string {
	switch {
	case relX >= 0 && relX < len(actionView):
		return actionView
	case relX > len(actionView) && relX <= len(actionView)+len(actionEdit):
		return actionEdit
	default:
		return ""
	}
}

// followActive scrolls so the active cell is on screen.
func (m *AppModel) followActive(rows []sheet.Record) {
	cell, ok := m.ctrl.Active()
	if !ok {
		return
	}

	if r := sheet.IndexOf(rows, cell.RowID); r >= 0 {
		h := m.bodyHeight(len(rows))
		if r < m.rowOffset {
			m.rowOffset = r
		} else if r >= m.rowOffset+h {
			m.rowOffset = r - h + 1
		}
	}

	c := sheet.ColumnIndex(m.columns, cell.Column)
	if c <= 0 {
		return
	}
	if c < m.colOffset {
		m.colOffset = c
		return
	}
	for m.colOffset < c && !m.columnVisible(c) {
		m.colOffset++
	}
}

func (m AppModel) columnVisible(index int) bool {
	for _, s := range m.columnSpans() {
		if s.index == index {
			return true
		}
	}
	return false
}

// scroll moves the row window by delta, clamped to the view.
func (m *AppModel) scroll(delta int, rowCount int) {
	m.rowOffset = clampOffset(m.rowOffset+delta, rowCount, m.bodyHeight(rowCount))
}

// offset is the first visible row, clamped to the current view.
func (m AppModel) offset(rows []sheet.Record) int {
	return clampOffset(m.rowOffset, len(rows), m.bodyHeight(len(rows)))
}

func clampOffset(offset, rowCount, height int) int {
	if offset > rowCount-height {
		offset = rowCount - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
