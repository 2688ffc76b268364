package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		vars []any
		text string
	}{
		{
			name: "HomeDirError",
			err:  HomeDirError("log", "/home/a/.local/share/gnkin/logs", cause),
			code: errcode.HomeDirError,
			vars: []any{"log", "/home/a/.local/share/gnkin/logs"},
			text: "cannot create log directory",
		},
		{
			name: "DatabaseDirError",
			err:  DatabaseDirError("/srv/kin/family.sqlite", cause),
			code: errcode.DatabaseDirError,
			vars: []any{"/srv/kin/family.sqlite"},
			text: "cannot create database directory",
		},
		{
			name: "WriteConfigError",
			err:  WriteConfigError("/home/a/.config/gnkin/config.yaml", cause),
			code: errcode.ConfigWriteError,
			vars: []any{"/home/a/.config/gnkin/config.yaml"},
			text: "cannot write config",
		},
		{
			name: "ReadConfigError",
			err:  ReadConfigError("/home/a/.config/gnkin/config.yaml", cause),
			code: errcode.ConfigReadError,
			vars: []any{"/home/a/.config/gnkin/config.yaml"},
			text: "cannot read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "gnkin")
			assert.Equal(t, tt.vars, gnErr.Vars)

			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), tt.text)
			assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors",
				"caller is recorded")
		})
	}
}
