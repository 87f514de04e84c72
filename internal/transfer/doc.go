// Package transfer imports and exports grid records as YAML or CSV files.
//
// The file format follows the extension: .yaml and .yml use the same document
// shape as the built-in seed (a top-level "records" list), .csv uses a header
// row of "id" followed by the data field names. Columns a CSV header does not
// recognize are ignored; a missing id column is a parse error.
//
// Failures come back as *Error carrying an ErrorType, so callers can pick
// troubleshooting hints with Troubleshooting(err).
package transfer
