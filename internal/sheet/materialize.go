package sheet

import "strings"

// TargetRows is the default number of rows the grid shows.
const TargetRows = 40

// Filter keeps the records where any field contains text, case-insensitively.
// An empty text returns records unchanged.
func Filter(records []Record, text string) []Record {
	if text == "" {
		return records
	}
	term := strings.ToLower(text)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Matches(term) {
			out = append(out, r)
		}
	}
	return out
}

// Materialize derives the rows actually rendered: the filtered records in store
// order, then placeholder rows with ids filteredCount+1 .. target until the
// count reaches target. A filtered count at or above target is never truncated.
func Materialize(records []Record, filterText string, target int) []Record {
	filtered := Filter(records, filterText)

	n := len(filtered)
	size := n
	if target > size {
		size = target
	}
	rows := make([]Record, n, size)
	copy(rows, filtered)
	for id := n + 1; id <= target; id++ {
		rows = append(rows, Record{ID: id})
	}
	return rows
}

// IndexOf returns the position of the first row with the given id, or -1.
func IndexOf(rows []Record, id int) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
