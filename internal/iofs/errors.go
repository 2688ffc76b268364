package iofs

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
)

var errIsDir = errors.New("path is a directory")

// HomeDirError is returned when one of gnkin's directories cannot be
// created; kind is "config", "cache", "data" or "log".
func HomeDirError(kind, dir string, err error) error {
	msg := "Cannot create gnkin %s directory <em>%s</em>"
	vars := []any{kind, dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HomeDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s directory %s: %w",
			fn.Name(), kind, dir, err),
	}
}

// DatabaseDirError is returned when the directory of the SQLite file
// cannot be created.
func DatabaseDirError(path string, err error) error {
	msg := "Cannot create directory for gnkin SQLite database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatabaseDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create database directory for %s: %w",
			fn.Name(), path, err),
	}
}

func WriteConfigError(path string, err error) error {
	msg := "Cannot write default gnkin config to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write config %s: %w",
			fn.Name(), path, err),
	}
}

// ReadConfigError is returned when config.yaml cannot be read or
// decoded.
func ReadConfigError(path string, err error) error {
	msg := "Cannot read gnkin config <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read config %s: %w", fn.Name(), path, err),
	}
}
