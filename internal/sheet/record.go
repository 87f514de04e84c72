package sheet

import (
	"strconv"
	"strings"
)

// Field names a data field of a Record. The values match the keys used in
// seed, import and export files.
type Field string

const (
	FieldJobRequest      Field = "jobRequest"
	FieldSubmitted       Field = "submitted"
	FieldSubmitterStatus Field = "submitterStatus"
	FieldAssignedURL     Field = "assignedURL"
	FieldPriority        Field = "priority"
	FieldDueDate         Field = "dueDate"
	FieldEstValue        Field = "estValue"
)

// DataFields lists every data field in display order.
var DataFields = []Field{
	FieldJobRequest,
	FieldSubmitted,
	FieldSubmitterStatus,
	FieldAssignedURL,
	FieldPriority,
	FieldDueDate,
	FieldEstValue,
}

// Valid reports whether f names a data field.
func (f Field) Valid() bool {
	for _, df := range DataFields {
		if df == f {
			return true
		}
	}
	return false
}

// Record is one logical row of the grid.
type Record struct {
	ID              int    `yaml:"id"`
	JobRequest      string `yaml:"jobRequest"`
	Submitted       string `yaml:"submitted"`
	SubmitterStatus string `yaml:"submitterStatus"`
	AssignedURL     string `yaml:"assignedURL"`
	Priority        string `yaml:"priority"`
	DueDate         string `yaml:"dueDate"`
	EstValue        string `yaml:"estValue"` // numeric text or empty
}

// Get returns the value of field f, or "" for an unknown field.
func (r Record) Get(f Field) string {
	switch f {
	case FieldJobRequest:
		return r.JobRequest
	case FieldSubmitted:
		return r.Submitted
	case FieldSubmitterStatus:
		return r.SubmitterStatus
	case FieldAssignedURL:
		return r.AssignedURL
	case FieldPriority:
		return r.Priority
	case FieldDueDate:
		return r.DueDate
	case FieldEstValue:
		return r.EstValue
	default:
		return ""
	}
}

// Set assigns value to field f. It returns false for an unknown field.
func (r *Record) Set(f Field, value string) bool {
	switch f {
	case FieldJobRequest:
		r.JobRequest = value
	case FieldSubmitted:
		r.Submitted = value
	case FieldSubmitterStatus:
		r.SubmitterStatus = value
	case FieldAssignedURL:
		r.AssignedURL = value
	case FieldPriority:
		r.Priority = value
	case FieldDueDate:
		r.DueDate = value
	case FieldEstValue:
		r.EstValue = value
	default:
		return false
	}
	return true
}

// Blank reports whether every data field is empty.
func (r Record) Blank() bool {
	for _, f := range DataFields {
		if r.Get(f) != "" {
			return false
		}
	}
	return true
}

// Matches reports whether any field, the id included, contains term as a
// case-insensitive substring. term must already be lower-cased.
func (r Record) Matches(term string) bool {
	if strings.Contains(strconv.Itoa(r.ID), term) {
		return true
	}
	for _, f := range DataFields {
		if strings.Contains(strings.ToLower(r.Get(f)), term) {
			return true
		}
	}
	return false
}
