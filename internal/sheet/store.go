package sheet

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidID is returned for a record id that is not positive.
	ErrInvalidID = errors.New("record id must be positive")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrUnknownField is returned by SetField for a name that is not a data field.
	ErrUnknownField = errors.New("unknown field")
)

// Store is the ordered record list behind the grid.
type Store struct {
	records []Record
	loaded  int // record count at load time; gates the actions column
}

// NewStore creates a store holding a copy of records in their given order.
func NewStore(records []Record) (*Store, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}
	s := &Store{}
	s.load(records)
	return s, nil
}

// ValidateRecords checks that every id is positive and unique.
func ValidateRecords(records []Record) error {
	seen := make(map[int]struct{}, len(records))
	for i, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("record %d: %w (got %d)", i+1, ErrInvalidID, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("record %d: %w %d", i+1, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func (s *Store) load(records []Record) {
	s.records = make([]Record, len(records))
	copy(s.records, records)
	s.loaded = len(records)
}

// Replace swaps the whole record list, as an import does. The loaded count is
// reset to the new length.
func (s *Store) Replace(records []Record) error {
	if err := ValidateRecords(records); err != nil {
		return err
	}
	s.load(records)
	return nil
}

// Records returns a snapshot of the records in store order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Loaded returns the record count at load time.
func (s *Store) Loaded() int {
	return s.loaded
}

// HasActions reports whether the row with this id shows action controls.
// The rule compares against the load-time count, so a promoted row with a high
// placeholder id gets no actions even though it now holds data.
func (s *Store) HasActions(id int) bool {
	return id > 0 && id <= s.loaded
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// SetField writes value into field f of the record with the given id.
//
// When no such record exists the row is a placeholder and gets promoted: a new
// record with that id is inserted, every other field empty, and the store is
// re-sorted ascending by id. The returned bool reports a promotion.
func (s *Store) SetField(id int, f Field, value string) (bool, error) {
	if !f.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if id <= 0 {
		return false, fmt.Errorf("%w (got %d)", ErrInvalidID, id)
	}

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Set(f, value)
			return false, nil
		}
	}

	promoted := Record{ID: id}
	promoted.Set(f, value)
	s.records = append(s.records, promoted)
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].ID < s.records[j].ID
	})
	return true, nil
}
