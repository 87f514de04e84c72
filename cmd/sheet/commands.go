package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiku57/spreadsheet-app/internal/config"
	"github.com/Tiku57/spreadsheet-app/internal/logging"
	"github.com/Tiku57/spreadsheet-app/internal/transfer"
	"github.com/Tiku57/spreadsheet-app/internal/ui"
)

// Command flags
var (
	outPath string
	force   bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// exportCmd writes the records to a file without opening the grid
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to a YAML or CSV file",
	Long: `Write the records the grid would open with to a file.

The format follows the file extension: .yaml, .yml or .csv. Converting a
CSV file to YAML is a matter of combining --data and --out.`,
	Example: `  # Export the built-in records
  sheet export --out jobs.yaml

  # Convert CSV to YAML, replacing any existing file
  sheet export --data jobs.csv --out jobs.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default from config transfer.export_path)")
	exportCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := outPath
	if path == "" {
		path = cfg.Transfer.ExportPath
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader(ui.NewHeader("Export records", "sheet export",
		ui.Param{Key: "Source", Value: recordSource()},
		ui.Param{Key: "Output", Value: path},
	))

	records, err := loadRecords()
	if err != nil {
		p.PrintError("Could not read records", err, transfer.Troubleshooting(err))
		return errReported
	}

	if _, err := os.Stat(path); err == nil && !force {
		if !p.ConfirmOverwrite("File exists", []string{path + " will be replaced"}, cmd.InOrStdin()) {
			return nil
		}
	}

	if err := transfer.Export(path, records); err != nil {
		p.PrintError("Export failed", err, transfer.Troubleshooting(err))
		return errReported
	}

	format, _ := transfer.DetectFormat(path)
	p.PrintSuccess("Export complete",
		ui.Param{Key: "File", Value: path},
		ui.Param{Key: "Format", Value: format.String()},
		ui.Param{Key: "Records", Value: strconv.Itoa(len(records))},
	)
	return nil
}

// recordSource describes where loadRecords reads from
func recordSource() string {
	switch {
	case dataPath != "":
		return dataPath
	case cfg.Data.SeedPath != "":
		return cfg.Data.SeedPath
	default:
		return "built-in records"
	}
}

// validateCmd checks a records file without opening the grid
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML or CSV records file",
	Long: `Parse a records file and check that every id is positive and unique.

Prints a summary on success and troubleshooting hints on failure.`,
	Example: `  sheet validate jobs.csv`,
	Args:    cobra.ExactArgs(1),
	RunE:    runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader(ui.NewHeader("Validate records", "sheet validate", ui.Param{Key: "File", Value: path}))

	records, err := transfer.Import(path)
	if err != nil {
		p.PrintError("Invalid records file", err, transfer.Troubleshooting(err))
		return errReported
	}

	highest, blank := 0, 0
	for _, r := range records {
		highest = max(highest, r.ID)
		if r.Blank() {
			blank++
		}
	}

	result := ui.NewSuccessResult("Records file is valid",
		ui.Param{Key: "Records", Value: strconv.Itoa(len(records))},
		ui.Param{Key: "Highest id", Value: strconv.Itoa(highest)},
	)
	if blank > 0 {
		result.AddDetail("Blank records", strconv.Itoa(blank))
	}
	if highest > len(records) {
		// Placeholder ids start right after the record count
		result.Type = ui.ResultWarning
		result.AddDetail("Note", fmt.Sprintf("ids have gaps; placeholder ids from %d overlap existing ids", len(records)+1))
	}
	p.PrintResult(result)
	return nil
}

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	// Skip loading the file these commands create or locate
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel, logFile)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		if _, err := os.Stat(path); err == nil && !force {
			p.PrintResult(ui.NewWarningResult("Config file already exists",
				ui.Param{Key: "File", Value: path},
				ui.Param{Key: "Hint", Value: "use --force to overwrite"},
			))
			return nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		c := config.NewConfig()
		if err := c.Save(path); err != nil {
			return err
		}
		p.PrintSuccess("Config file written",
			ui.Param{Key: "File", Value: path},
			ui.Param{Key: "Target rows", Value: strconv.Itoa(c.Grid.TargetRows)},
			ui.Param{Key: "Default tab", Value: c.Grid.DefaultTab},
		)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
