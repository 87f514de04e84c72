package editor

import (
	"fmt"

	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

// Key is a navigation key understood by the Controller.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}

// Cell identifies a grid cell by row id and column id.
type Cell struct {
	RowID  int
	Column string
}

// String implements fmt.Stringer
func (c Cell) String() string {
	return fmt.Sprintf("%d/%s", c.RowID, c.Column)
}

// Controller tracks the active cell and routes edits into the store.
type Controller struct {
	store   *sheet.Store
	columns []sheet.Column
	active  *Cell
}

// NewController creates an Idle controller over store and columns.
func NewController(store *sheet.Store, columns []sheet.Column) *Controller {
	return &Controller{
		store:   store,
		columns: columns,
	}
}

// Active returns the active cell. ok is false when Idle.
func (c *Controller) Active() (cell Cell, ok bool) {
	if c.active == nil {
		return Cell{}, false
	}
	return *c.active, true
}

// Editing reports whether a cell is active.
func (c *Controller) Editing() bool {
	return c.active != nil
}

// IsActive reports whether the given cell is the active one.
func (c *Controller) IsActive(rowID int, columnID string) bool {
	return c.active != nil && c.active.RowID == rowID && c.active.Column == columnID
}

// Columns returns the column layout the controller navigates.
func (c *Controller) Columns() []sheet.Column {
	return c.columns
}

// Click activates the cell when its column is editable, else goes Idle.
func (c *Controller) Click(rowID int, columnID string) {
	idx := sheet.ColumnIndex(c.columns, columnID)
	if idx < 0 || !c.columns[idx].Editable() {
		c.active = nil
		return
	}
	c.active = &Cell{RowID: rowID, Column: columnID}
}

// Blur returns to Idle.
func (c *Controller) Blur() {
	c.active = nil
}

// Input writes value into the active cell's field. It reports whether the
// write promoted a placeholder row. Input while Idle does nothing.
func (c *Controller) Input(value string) (bool, error) {
	if c.active == nil {
		return false, nil
	}
	idx := sheet.ColumnIndex(c.columns, c.active.Column)
	if idx < 0 || !c.columns[idx].Editable() {
		c.active = nil
		return false, nil
	}
	return c.store.SetField(c.active.RowID, c.columns[idx].Key, value)
}

// Value returns the stored value of the active cell, "" for a placeholder.
func (c *Controller) Value() string {
	if c.active == nil {
		return ""
	}
	idx := sheet.ColumnIndex(c.columns, c.active.Column)
	if idx < 0 {
		return ""
	}
	rec, ok := c.store.Get(c.active.RowID)
	if !ok {
		return ""
	}
	return rec.Get(c.columns[idx].Key)
}

// Key applies a navigation key against rows, the currently materialized view.
func (c *Controller) Key(k Key, rows []sheet.Record) {
	if c.active == nil {
		return
	}

	rowIdx := sheet.IndexOf(rows, c.active.RowID)
	colIdx := sheet.ColumnIndex(c.columns, c.active.Column)
	if rowIdx < 0 || colIdx < 0 {
		c.active = nil
		return
	}

	newRow, newCol := rowIdx, colIdx
	step := 0
	switch k {
	case KeyUp:
		newRow = clamp(rowIdx-1, 0, len(rows)-1)
	case KeyDown, KeyEnter:
		newRow = clamp(rowIdx+1, 0, len(rows)-1)
	case KeyLeft:
		newCol = clamp(colIdx-1, 0, len(c.columns)-1)
		step = -1
	case KeyRight:
		newCol = clamp(colIdx+1, 0, len(c.columns)-1)
		step = 1
	case KeyEscape:
		c.active = nil
		return
	default:
		return
	}

	if !c.columns[newCol].Editable() {
		newCol = c.scan(newCol, step)
	}
	if newCol < 0 {
		c.active = nil
		return
	}
	c.active = &Cell{RowID: rows[newRow].ID, Column: c.columns[newCol].ID}
}

// scan looks for the nearest editable column past from in direction step.
// It returns -1 when none exists or step is zero.
func (c *Controller) scan(from, step int) int {
	if step == 0 {
		return -1
	}
	for i := from + step; i >= 0 && i < len(c.columns); i += step {
		if c.columns[i].Editable() {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
