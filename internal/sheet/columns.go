package sheet

// Formatter tags how a column's read value is displayed.
type Formatter int

const (
	FormatPlain Formatter = iota
	FormatRowID
	FormatBadge
	FormatCurrency
	FormatActions
)

// String returns the formatter name.
func (f Formatter) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatRowID:
		return "row-id"
	case FormatBadge:
		return "badge"
	case FormatCurrency:
		return "currency"
	case FormatActions:
		return "actions"
	default:
		return "unknown"
	}
}

// Column IDs for the two non-data columns.
const (
	ColumnRowID   = "id"
	ColumnActions = "actions"
)

// Column describes one grid column.
type Column struct {
	ID     string // unique column id; equals string(Key) for data columns
	Key    Field  // data field, empty for non-data columns
	Label  string
	Width  int // terminal cells
	Format Formatter
}

// Editable reports whether cells of this column can enter edit mode.
func (c Column) Editable() bool {
	return c.Key != "" && c.ID != ColumnActions
}

// Columns is the grid layout, left to right.
var Columns = []Column{
	{ID: ColumnRowID, Label: "#", Width: 5, Format: FormatRowID},
	{ID: string(FieldJobRequest), Key: FieldJobRequest, Label: "Job Request", Width: 30, Format: FormatPlain},
	{ID: string(FieldSubmitted), Key: FieldSubmitted, Label: "Submitted", Width: 12, Format: FormatPlain},
	{ID: string(FieldSubmitterStatus), Key: FieldSubmitterStatus, Label: "Submitter Status", Width: 18, Format: FormatPlain},
	{ID: string(FieldAssignedURL), Key: FieldAssignedURL, Label: "Assigned URL", Width: 24, Format: FormatPlain},
	{ID: string(FieldPriority), Key: FieldPriority, Label: "Priority", Width: 10, Format: FormatBadge},
	{ID: string(FieldDueDate), Key: FieldDueDate, Label: "Due Date", Width: 12, Format: FormatPlain},
	{ID: string(FieldEstValue), Key: FieldEstValue, Label: "Est. Value", Width: 14, Format: FormatCurrency},
	{ID: ColumnActions, Label: "Actions", Width: 11, Format: FormatActions},
}

// ColumnIndex returns the index of the column with the given id in cols, or -1.
func ColumnIndex(cols []Column, id string) int {
	for i, c := range cols {
		if c.ID == id {
			return i
		}
	}
	return -1
}
