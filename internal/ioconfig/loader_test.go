package ioconfig_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/ioconfig"
	"github.com/gnames/gnkin/internal/iofs"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func load(t *testing.T, path string) *config.Config {
	t.Helper()
	opts, err := ioconfig.Load(path)
	require.NoError(t, err)
	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg := load(t, writeConfig(t, iofs.ConfigYAML))
	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Auth, cfg.Auth)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  sqlite_path: /tmp/kin.sqlite
server:
  port: 9000
auth:
  password_cost: 10
  allow_registration: true
log:
  level: debug
jobs_number: 3
`)
	cfg := load(t, path)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/kin.sqlite", cfg.Database.SQLitePath)
	assert.Equal(t, "localhost", cfg.Database.Host, "missing keys keep defaults")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Auth.PasswordCost)
	assert.True(t, cfg.Auth.AllowRegistration)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.JobsNumber)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("GNKIN_SERVER_PORT", "9100")
	t.Setenv("GNKIN_DATABASE_DRIVER", "sqlite")
	t.Setenv("GNKIN_AUTH_ALLOW_REGISTRATION", "true")

	cfg := load(t, path)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Auth.AllowRegistration)
}

func TestLoadIgnoresUnprefixedEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("DATABASE_HOST", "unprefixed.example.org")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("JOBS_NUMBER", "77")

	cfg := load(t, path)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)

	t.Setenv("GNKIN_DATABASE_HOST", "db.example.org")
	cfg = load(t, path)
	assert.Equal(t, "db.example.org", cfg.Database.Host)
}

func TestLoadInvalidValuesIgnored(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: mysql
auth:
  password_cost: 99
`)
	cfg := load(t, path)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Auth.PasswordCost)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := ioconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ConfigReadError, gnErr.Code)
}

func TestEnvVars(t *testing.T) {
	vars := ioconfig.EnvVars()
	assert.Contains(t, vars, "GNKIN_DATABASE_SQLITE_PATH")
	assert.Contains(t, vars, "GNKIN_AUTH_PASSWORD_COST")
	assert.Contains(t, vars, "GNKIN_JOBS_NUMBER")
}

func TestDump(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePassword("secret"),
		config.OptHomeDir("/home/alice"),
	})

	var buf bytes.Buffer
	require.NoError(t, ioconfig.Dump(&buf, cfg))
	out := buf.String()
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "homedir")

	var back config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "sqlite", back.Database.Driver)
	assert.Equal(t, "********", back.Database.Password)
	assert.Equal(t, cfg.Server, back.Server)
}
