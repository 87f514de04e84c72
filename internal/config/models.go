package config

import "fmt"

// CurrentVersion is the only config file version this build reads.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Grid     *GridPrefs     `yaml:"grid,omitempty"`
	Data     *DataPrefs     `yaml:"data,omitempty"`
	Transfer *TransferPrefs `yaml:"transfer,omitempty"`
	Logging  *LoggingPrefs  `yaml:"logging,omitempty"`
}

// GridPrefs holds grid layout and input preferences.
type GridPrefs struct {
	TargetRows int    `yaml:"target_rows"` // Rows shown before real data overflows; 0 uses the default
	DefaultTab string `yaml:"default_tab"` // Footer tab selected at startup
	Mouse      *bool  `yaml:"mouse"`       // Enable mouse clicks on cells and tabs; unset is on
}

// MouseEnabled reports whether mouse input is on.
func (g *GridPrefs) MouseEnabled() bool {
	return g.Mouse == nil || *g.Mouse
}

// DataPrefs points at the initial records.
type DataPrefs struct {
	SeedPath string `yaml:"seed_path,omitempty"` // YAML or CSV; empty uses built-in records
}

// TransferPrefs holds import and export file locations.
type TransferPrefs struct {
	ImportPath string `yaml:"import_path"`
	ExportPath string `yaml:"export_path"`
}

// LoggingPrefs configures the zap logger.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error; empty is silent
	File  string `yaml:"file,omitempty"`
}

// Tabs are the footer tab names in display order.
var Tabs = []string{"All Orders", "Pending", "Reviewed", "Arrived"}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	c := &Config{Version: CurrentVersion}
	c.fillDefaults()
	return c
}

// Defaults for fields left unset in the config file.
const (
	DefaultTargetRows   = 40
	DefaultTransferPath = "sheet-export.yaml"
)

// fillDefaults initializes missing sections and any unset field of a
// section the file only partly specifies.
func (c *Config) fillDefaults() {
	if c.Grid == nil {
		c.Grid = &GridPrefs{}
	}
	if c.Grid.TargetRows == 0 {
		c.Grid.TargetRows = DefaultTargetRows
	}
	if c.Grid.DefaultTab == "" {
		c.Grid.DefaultTab = Tabs[0]
	}
	if c.Grid.Mouse == nil {
		on := true
		c.Grid.Mouse = &on
	}

	if c.Data == nil {
		c.Data = &DataPrefs{}
	}

	if c.Transfer == nil {
		c.Transfer = &TransferPrefs{}
	}
	if c.Transfer.ImportPath == "" {
		c.Transfer.ImportPath = DefaultTransferPath
	}
	if c.Transfer.ExportPath == "" {
		c.Transfer.ExportPath = DefaultTransferPath
	}

	if c.Logging == nil {
		c.Logging = &LoggingPrefs{}
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Grid.TargetRows < 0 {
		return fmt.Errorf("grid.target_rows must not be negative (got %d)", c.Grid.TargetRows)
	}
	if !ValidTab(c.Grid.DefaultTab) {
		return fmt.Errorf("grid.default_tab %q is not one of %v", c.Grid.DefaultTab, Tabs)
	}
	return nil
}

// ValidTab reports whether name is a footer tab.
func ValidTab(name string) bool {
	for _, t := range Tabs {
		if t == name {
			return true
		}
	}
	return false
}
