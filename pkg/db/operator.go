package db

import (
	"context"

	"github.com/gnames/gnkin/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes a *gorm.DB for
// the stores (users, trees, schema manager) to run their queries.
//
// Two engines are supported: PostgreSQL through a pgx connection pool and
// SQLite through a pure Go driver. Both are hidden behind GORM dialects so
// the stores do not need to know which one is in use.
type Operator interface {
	// Connect opens the database described by cfg and verifies the
	// connection.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes all database connections.
	Close() error

	// DB returns the GORM handle. It is nil before Connect.
	DB() *gorm.DB

	// Driver returns the name of the connected engine ("postgres" or
	// "sqlite").
	Driver() string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables of the database.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
