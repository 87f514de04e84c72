// Sheet is a terminal spreadsheet grid for job requests.
//
// It shows the records in an editable table padded to a fixed number of
// rows, with search, keyboard and mouse cell navigation, and YAML or CSV
// import and export.
//
// Usage:
//
//	sheet [command] [flags]
//
// Running without arguments opens the grid.
// See 'sheet --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Tiku57/spreadsheet-app/internal/config"
	"github.com/Tiku57/spreadsheet-app/internal/logging"
	"github.com/Tiku57/spreadsheet-app/internal/sheet"
	"github.com/Tiku57/spreadsheet-app/internal/transfer"
	"github.com/Tiku57/spreadsheet-app/internal/tui"
	"github.com/Tiku57/spreadsheet-app/internal/version"
)

// errReported marks errors a command already printed as a result box.
var errReported = errors.New("error already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
	dataPath   string

	cfg *config.Config
)

// Grid flags
var (
	targetRows int
	defaultTab string
	noMouse    bool
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Terminal spreadsheet grid",
	Long: `An editable spreadsheet grid for job requests.

The grid always shows at least the configured number of rows; typing into
an empty row turns it into a record. Search filters rows across every
field. Import and export read and write YAML or CSV.

If no command is specified, the grid opens.`,
	Example: `  # Open the grid with the built-in records
  sheet

  # Open a CSV file and show 60 rows
  sheet --data jobs.csv --rows 60

  # Log editor activity to a file
  sheet --log-level debug --log-file sheet.log`,
	Version:           version.Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runGrid,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty is silent")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default "+logging.DefaultLogFile+")")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "YAML or CSV file with the initial records")

	rootCmd.Flags().IntVar(&targetRows, "rows", 0, "Rows shown while data is shorter (default from config, 40)")
	rootCmd.Flags().StringVar(&defaultTab, "tab", "", "Footer tab selected at startup")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse input")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the config file and starts logging, flags taking precedence.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level, file := cfg.Logging.Level, cfg.Logging.File
	if logLevel != "" {
		level = logLevel
	}
	if logFile != "" {
		file = logFile
	}
	if err := logging.Initialize(level, file); err != nil {
		return err
	}

	logging.Debug("Starting sheet " + version.Full())
	return nil
}

// loadRecords reads the --data file, the configured seed file, or the
// built-in records, in that order.
func loadRecords() ([]sheet.Record, error) {
	path := dataPath
	if path == "" {
		path = cfg.Data.SeedPath
	}
	if path == "" {
		return sheet.Seed()
	}
	return transfer.Import(path)
}

func runGrid(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	store, err := sheet.NewStore(records)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	rows := cfg.Grid.TargetRows
	if cmd.Flags().Changed("rows") {
		rows = targetRows
	}
	if rows < 0 {
		return fmt.Errorf("--rows must not be negative (got %d)", rows)
	}

	tab := cfg.Grid.DefaultTab
	if defaultTab != "" {
		if !config.ValidTab(defaultTab) {
			return fmt.Errorf("--tab %q is not one of %v", defaultTab, config.Tabs)
		}
		tab = defaultTab
	}

	model := tui.NewAppModel(store, tui.Options{
		TargetRows: rows,
		Tabs:       config.Tabs,
		DefaultTab: tab,
		ImportPath: cfg.Transfer.ImportPath,
		ExportPath: cfg.Transfer.ExportPath,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.Grid.MouseEnabled() && !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("grid error: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sheet %s\n", version.Full())
	},
}
