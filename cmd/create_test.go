package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnkin/internal/iotesting"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()
	assert.Equal(t, "create", cmd.Use)

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist")
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
	assert.Contains(t, forceFlag.Usage, "drop")
}

// TestGetCreateCmd_HelpText verifies help text content.
func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	helpText := buf.String()
	assert.Contains(t, helpText, "GORM AutoMigrate")
	assert.Contains(t, helpText, "--force")
}

// useSQLite points the package configuration to a temporary database.
func useSQLite(t *testing.T) {
	t.Helper()
	old := cfg
	cfg = iotesting.SQLiteConfig(t)
	t.Cleanup(func() { cfg = old })
}

func withInput(t *testing.T, s string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(s)
	t.Cleanup(func() { stdin = old })
}

func TestRunCreateAndMigrate(t *testing.T) {
	ctx := context.Background()
	useSQLite(t)

	require.NoError(t, runMigrate(ctx), "empty database is only reported")
	require.NoError(t, runCreate(ctx, false))

	op := iotesting.Connect(t, cfg)
	var count int64
	require.NoError(t, op.DB().Model(&schema.Block{}).Count(&count).Error)
	assert.Equal(t, int64(len(schema.DefaultBlocks())), count)

	t.Run("declined", func(t *testing.T) {
		withInput(t, "no\n")
		require.NoError(t, runCreate(ctx, false))
	})

	t.Run("forced", func(t *testing.T) {
		require.NoError(t, runCreate(ctx, true))
	})

	require.NoError(t, runMigrate(ctx))
}

func TestRunOptimize(t *testing.T) {
	ctx := context.Background()
	useSQLite(t)
	require.NoError(t, runCreate(ctx, true))
	require.NoError(t, runOptimize(ctx))
}

func TestConnectCreatesSQLiteDir(t *testing.T) {
	useSQLite(t)
	path := filepath.Join(t.TempDir(), "new", "place", "kin.sqlite")
	cfg.Update([]config.Option{config.OptDatabaseSQLitePath(path)})

	op, err := connect(context.Background())
	require.NoError(t, err)
	defer op.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}
