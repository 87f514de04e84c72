// Package sheet holds the data side of the spreadsheet grid.
//
// It owns three things:
//   - Record and Field: one logical row of the grid and the names of its data fields
//   - Store: the ordered record list, the single source of truth for the grid
//   - Materialize: the filter-then-pad derivation that produces the rows on screen
//
// Columns and their formatters live here too, as a static table of descriptors
// that the terminal renderer interprets by dispatching on the Formatter tag.
//
// # Placeholder Rows
//
// The grid always shows at least TargetRows rows. When the filtered record
// count is below that, Materialize appends placeholder rows: records with only
// an id set. Editing a placeholder promotes it into a real record:
//
//	store := sheet.NewStore(records)
//	promoted, err := store.SetField(12, sheet.FieldPriority, "High")
//	// promoted == true when no record with id 12 existed before
//
// # Thread Safety
//
// Nothing in this package locks. The grid runs on the Bubble Tea event loop,
// which delivers every message to a single goroutine, so the Store has exactly
// one writer and its readers run in the same turn.
package sheet
