// Package ui renders styled output for the non-interactive sheet commands.
//
// The interactive grid lives in package tui. Commands such as export,
// validate and config init run once and exit, so they print with Lipgloss
// directly instead of starting a Bubble Tea program.
//
// The package provides three component types:
//
//   - Header: command banner showing the operation name and parameters
//   - Result: success, failure or warning box with ordered details
//   - ConfirmOverwrite: warning box plus a y/N prompt read from an io.Reader
//
// Printer ties them to an io.Writer so commands can be tested against a
// bytes.Buffer.
package ui
