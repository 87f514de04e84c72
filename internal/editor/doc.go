// Package editor implements the selection and edit state machine of the grid.
//
// The Controller is in one of two states:
//   - Idle: no active cell
//   - Editing(rowID, column): one cell shows an input and receives keystrokes
//
// Transitions:
//
//	Click on an editable cell        -> Editing(that cell)
//	Click on a read-only cell        -> Idle
//	Blur                             -> Idle
//	Escape                           -> Idle
//	Enter                            -> Editing(row below, same column), clamped
//	Up / Down                        -> Editing(row above/below), clamped
//	Left / Right                     -> Editing(next column), clamped; read-only
//	                                    columns are skipped in the same direction,
//	                                    Idle when nothing editable remains
//	anything else                    -> unchanged
//
// Text input while Editing writes straight into the sheet.Store; there is no
// separate commit step. A cell, row or column that cannot be found degrades to
// Idle instead of returning an error.
package editor
