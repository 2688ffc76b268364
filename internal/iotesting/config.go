// Package iotesting provides shared test utilities for database tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gnames/gnkin/internal/iodb"
	"github.com/gnames/gnkin/internal/ioschema"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests, so they never touch a production database.
	TestDatabaseName = "gnkin_test"
)

// SQLiteConfig returns a configuration that points to a fresh SQLite file
// in a temporary directory. Password hashing uses the lowest bcrypt cost
// to keep tests fast.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabaseSQLitePath(filepath.Join(t.TempDir(), "gnkin.sqlite")),
		config.OptAuthPasswordCost(4),
		config.OptDatabaseBatchSize(2),
		config.OptJobsNumber(2),
	})
	return cfg
}

// PostgresConfig returns a configuration for PostgreSQL integration
// tests. Connection settings come from GNKIN_DATABASE_* environment
// variables or defaults; the database name is always TestDatabaseName.
func PostgresConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	opts := []config.Option{
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptAuthPasswordCost(4),
	}
	if s := os.Getenv("GNKIN_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNKIN_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("GNKIN_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNKIN_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)
	return cfg
}

// Connect opens the database of cfg and closes it when the test ends.
func Connect(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	op := iodb.NewOperator()
	if err := op.Connect(context.Background(), &cfg.Database); err != nil {
		t.Fatalf("Failed to connect to %s database: %v", cfg.Database.Driver, err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return op
}

// Open connects to the database of cfg and creates a fresh schema.
func Open(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	ctx := context.Background()
	op := Connect(t, cfg)
	if err := op.DropAllTables(ctx); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return op
}
