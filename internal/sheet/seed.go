package sheet

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Document is the on-disk shape of a record file.
type Document struct {
	Records []Record `yaml:"records"`
}

// Seed returns the built-in records.
func Seed() ([]Record, error) {
	return ParseYAML(seedYAML)
}

// ParseYAML decodes a record document and validates its ids.
func ParseYAML(data []byte) ([]Record, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	if err := ValidateRecords(doc.Records); err != nil {
		return nil, err
	}
	return doc.Records, nil
}
