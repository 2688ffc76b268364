// Package iofs prepares the files gnkin keeps on disk: the directories
// under the user's home, the documented config.yaml and the directory of
// a SQLite database.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/gnkin/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

// homeDirs names the directories EnsureDirs creates.
var homeDirs = []struct {
	kind string
	path func(string) string
}{
	{"config", config.ConfigDir},
	{"cache", config.CacheDir},
	{"data", config.DataDir},
	{"log", config.LogDir},
}

// EnsureDirs creates the config, cache, data and log directories of
// gnkin. Existing directories are left alone.
func EnsureDirs(homeDir string) error {
	for _, v := range homeDirs {
		dir := v.path(homeDir)
		if err := mkdir(dir); err != nil {
			return HomeDirError(v.kind, dir, err)
		}
	}
	return nil
}

// EnsureDatabaseDir creates the directory of the SQLite database file,
// which may live outside of the gnkin data directory. Other drivers need
// nothing on disk.
func EnsureDatabaseDir(cfg *config.DatabaseConfig) error {
	if cfg.Driver != "sqlite" || cfg.SQLitePath == "" {
		return nil
	}
	dir := filepath.Dir(cfg.SQLitePath)
	if err := mkdir(dir); err != nil {
		return DatabaseDirError(cfg.SQLitePath, err)
	}
	return nil
}

func mkdir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureConfigFile writes the documented default config.yaml unless one
// is already there. The file can hold the database password, so only the
// owner may read it.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return WriteConfigError(path, errIsDir)
		}
		return nil
	}

	if err = os.WriteFile(path, []byte(ConfigYAML), 0600); err != nil {
		return WriteConfigError(path, err)
	}
	return nil
}
