package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default zentao data directory name (relative to home).
	DefaultDataDir = ".zentao"
	// ConfigFile is the user preferences filename.
	ConfigFile = "config.yaml"
	// DiagnosticsDir is the subdirectory for the raw responses of the last operation.
	DiagnosticsDir = "diagnostics"
)

// ConfigPath returns the default path of the user preferences file.
func ConfigPath(home string) string {
	return filepath.Join(home, DefaultDataDir, ConfigFile)
}

// DiagnosticsRootPath returns the default diagnostics directory.
func DiagnosticsRootPath(home string) string {
	return filepath.Join(home, DefaultDataDir, DiagnosticsDir)
}
