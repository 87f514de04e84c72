package transfer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Tiku57/spreadsheet-app/internal/sheet"
)

// Format is a record file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatCSV
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatCSV {
		return "csv"
	}
	return "yaml"
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return 0, newError(ErrTypeFormat, path, "unsupported file extension for", nil)
	}
}

// Import reads and validates the records stored at path.
func Import(path string) ([]sheet.Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrTypeIO, path, "cannot read", err)
	}

	records, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, classifyRecordsError(path, err)
	}
	return records, nil
}

// Export writes records to path, replacing any existing file atomically.
func Export(path string, records []sheet.Record) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, records); err != nil {
		return newError(ErrTypeIO, path, "cannot encode", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return newError(ErrTypeIO, path, "cannot create directory for", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return newError(ErrTypeIO, path, "cannot write", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return newError(ErrTypeIO, path, "cannot write", err)
	}
	return nil
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, format Format, records []sheet.Record) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, records)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sheet.Document{Records: records}); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Decode reads records in the given format and validates their ids.
func Decode(r io.Reader, format Format) ([]sheet.Record, error) {
	switch format {
	case FormatCSV:
		records, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		if err := sheet.ValidateRecords(records); err != nil {
			return nil, err
		}
		return records, nil
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return sheet.ParseYAML(data)
	}
}

func csvHeader() []string {
	header := []string{"id"}
	for _, f := range sheet.DataFields {
		header = append(header, string(f))
	}
	return header
}

func encodeCSV(w io.Writer, records []sheet.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader()); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{strconv.Itoa(r.ID)}
		for _, f := range sheet.DataFields {
			row = append(row, r.Get(f))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeCSV(r io.Reader) ([]sheet.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	idCol := -1
	fields := make([]sheet.Field, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "id" {
			idCol = i
			continue
		}
		if f := sheet.Field(name); f.Valid() {
			fields[i] = f
		}
	}
	if idCol < 0 {
		return nil, errors.New("csv header has no id column")
	}

	var records []sheet.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		if idCol >= len(row) {
			return nil, fmt.Errorf("csv line %d: missing id", line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[idCol]))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: bad id %q", line, row[idCol])
		}

		rec := sheet.Record{ID: id}
		for i, value := range row {
			if i < len(fields) && fields[i] != "" {
				rec.Set(fields[i], value)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
