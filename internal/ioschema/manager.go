// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnkin/pkg/db"
	"github.com/gnames/gnkin/pkg/lifecycle"
	"github.com/gnames/gnkin/pkg/schema"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema and seeds the template account
// with its default blocks.
func (m *manager) Create(ctx context.Context) error {
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := schema.Migrate(tx); err != nil {
			return CreateSchemaError(err)
		}
		if err := schema.Seed(tx); err != nil {
			return SeedError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Database schema created",
		"driver", m.operator.Driver(),
		"tables", len(schema.AllModels()),
	)
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gdb); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Database schema migrated", "driver", m.operator.Driver())
	return nil
}

func (m *manager) db(ctx context.Context) (*gorm.DB, error) {
	gdb := m.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}
