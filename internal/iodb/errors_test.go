package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "gnkin", "postgres",
		originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Equal(t, []any{"localhost", 5432, "gnkin", "postgres"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/gnkin")
}

func TestErrorCodes(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"SQLiteConnectionError", SQLiteConnectionError("/tmp/x", originalErr),
			errcode.DBConnectionError, 1},
		{"TableCheckError", TableCheckError(originalErr),
			errcode.DBTableCheckError, 0},
		{"TableExistsCheckError", TableExistsCheckError("users", originalErr),
			errcode.DBTableExistsCheckError, 1},
		{"QueryTablesError", QueryTablesError(originalErr),
			errcode.DBQueryTablesError, 0},
		{"DropTableError", DropTableError("users", originalErr),
			errcode.DBDropTableError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Len(t, gnErr.Vars, tt.vars)
			assert.ErrorIs(t, gnErr.Err, originalErr)
		})
	}

	gnErr := UnknownDriverError("mysql").(*gn.Error)
	assert.Equal(t, errcode.DBUnknownDriverError, gnErr.Code)
	assert.Equal(t, []any{"mysql"}, gnErr.Vars)
}
