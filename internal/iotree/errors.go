package iotree

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
)

// NotConnectedError is returned when the store is used before the
// database connection is open.
func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn.Name()),
	}
}

// QueryError is returned when trees cannot be read.
func QueryError(err error) error {
	msg := "Cannot read family trees"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TreeQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: query trees: %w", fn.Name(), err),
	}
}

// CreateError is returned when a tree cannot be stored.
func CreateError(name string, err error) error {
	msg := "Cannot create family tree <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TreeCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: create tree %s: %w", fn.Name(), name, err),
	}
}

// SettingError is returned when a tree setting cannot be read or stored.
func SettingError(treeID int, name string, err error) error {
	msg := "Cannot access setting <em>%s</em> of tree %d"
	vars := []any{name, treeID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TreeSettingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: setting %s of tree %d: %w",
			fn.Name(), name, treeID, err),
	}
}
