package transfer

import (
	"errors"
	"fmt"

	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

// ErrorType represents the category of a transfer failure
type ErrorType int

const (
	// ErrTypeIO indicates the file could not be read or written
	ErrTypeIO ErrorType = iota
	// ErrTypeFormat indicates an unsupported file extension
	ErrTypeFormat
	// ErrTypeParse indicates malformed YAML or CSV content
	ErrTypeParse
	// ErrTypeValidation indicates well-formed content with bad records
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeFormat:
		return "Format Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by Import and Export.
type Error struct {
	Type    ErrorType
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s (caused by: %v)", e.Type, e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Type, e.Message, e.Path)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, path, message string, err error) *Error {
	return &Error{Type: t, Path: path, Message: message, Err: err}
}

// classifyRecordsError maps a record validation failure onto the taxonomy.
func classifyRecordsError(path string, err error) *Error {
	if errors.Is(err, sheet.ErrDuplicateID) || errors.Is(err, sheet.ErrInvalidID) {
		return newError(ErrTypeValidation, path, "invalid records in", err)
	}
	return newError(ErrTypeParse, path, "cannot parse", err)
}

// IsType checks whether err is a transfer Error of type t
func IsType(err error, t ErrorType) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Type == t
	}
	return false
}

// Troubleshooting returns hints for an error, suitable for a failure box
func Troubleshooting(err error) []string {
	var te *Error
	if !errors.As(err, &te) {
		return nil
	}

	switch te.Type {
	case ErrTypeIO:
		return []string{
			"Check that the file exists and is readable",
			"Check that the target directory is writable",
		}
	case ErrTypeFormat:
		return []string{
			"Use a .yaml, .yml or .csv file extension",
		}
	case ErrTypeParse:
		return []string{
			"YAML files need a top-level 'records:' list",
			"CSV files need a header row starting with 'id'",
		}
	case ErrTypeValidation:
		return []string{
			"Every record needs a positive id",
			"Record ids must be unique",
		}
	default:
		return nil
	}
}
