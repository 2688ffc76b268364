package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gnkin"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnkin by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnkin by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir keeps the default SQLite database and the logs.
// Returns ~/.local/share/gnkin by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnkin/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnkin/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the default location of the SQLite database file.
// Returns ~/.local/share/gnkin/gnkin.sqlite by default.
func SQLitePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}
