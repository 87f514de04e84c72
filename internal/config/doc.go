// Package config manages the user configuration file of the sheet binary.
//
// The file is YAML and lives in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/sheet/config.yaml or $HOME/.config/sheet/config.yaml
//   - macOS: $HOME/.config/sheet/config.yaml
//   - Windows: %LOCALAPPDATA%\sheet\config.yaml
//
// A missing file is not an error; Load returns the defaults. Command-line flags
// override whatever the file says.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	cfg.Grid.TargetRows = 60
//	if err := cfg.Save(""); err != nil {
//	    return err
//	}
//
// Save writes a temporary file and renames it over the old one, so a crash
// never leaves a half-written config behind.
package config
