package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the database schema using GORM AutoMigrate and seeds
	// the template account that owns default home-page blocks.
	// Dropping existing tables is the caller's decision (see
	// db.Operator.DropAllTables).
	Create(ctx context.Context) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate. Data is preserved.
	Migrate(ctx context.Context) error
}
