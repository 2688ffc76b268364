package iodb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iodb"
	"github.com/gnames/gnkin/internal/iotesting"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteConnect(t *testing.T) {
	cfg := iotesting.SQLiteConfig(t)
	// A missing parent directory is created.
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "nested", "kin.sqlite")

	op := iotesting.Connect(t, cfg)
	assert.Equal(t, "sqlite", op.Driver())
	require.NotNil(t, op.DB())

	_, err := os.Stat(cfg.Database.SQLitePath)
	assert.NoError(t, err)

	hasTables, err := op.HasTables(context.Background())
	require.NoError(t, err)
	assert.False(t, hasTables)
}

func TestUnknownDriver(t *testing.T) {
	op := iodb.NewOperator()
	err := op.Connect(context.Background(), &config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Equal(t, errcode.DBUnknownDriverError, err.(*gn.Error).Code)
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewOperator()
	assert.Nil(t, op.DB())

	_, err := op.TableExists(ctx, "users")
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)
	_, err = op.HasTables(ctx)
	assert.Error(t, err)
	assert.Error(t, op.DropAllTables(ctx))
	assert.NoError(t, op.Close())
}

func testTables(t *testing.T, cfg *config.Config) {
	ctx := context.Background()
	op := iotesting.Open(t, cfg)

	exists, err := op.TableExists(ctx, "users")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, hasTables)

	require.NoError(t, op.DropAllTables(ctx))

	hasTables, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, hasTables, "all tables should be dropped")
}

func TestSQLiteTables(t *testing.T) {
	testTables(t, iotesting.SQLiteConfig(t))
}

// Requires PostgreSQL, see iotesting.PostgresConfig.
func TestPostgresTables(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testTables(t, iotesting.PostgresConfig(t))
}

func TestPostgresConnectInvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := iotesting.PostgresConfig(t)
	cfg.Database.Host = "invalid-host-that-does-not-exist"

	err := iodb.NewOperator().Connect(context.Background(), &cfg.Database)
	require.Error(t, err)
	assert.Equal(t, errcode.DBConnectionError, err.(*gn.Error).Code)
}
