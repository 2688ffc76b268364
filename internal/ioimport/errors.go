package ioimport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
)

// NotConnectedError is returned when the import starts before the
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

// HashError is returned when a password of the roster cannot be hashed.
func HashError(userName string, err error) error {
	msg := "Cannot hash password of <em>%s</em>"
	vars := []any{userName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportHashError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: hash %s: %w", fn.Name(), userName, err),
	}
}

// RosterError is returned when an entry of the roster is invalid. Nothing
// is imported in that case.
func RosterError(err error) error {
	msg := "Invalid users file: %s"
	vars := []any{err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportRosterError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: roster: %w", fn.Name(), err),
	}
}

// InsertError is returned when a batch of users cannot be stored.
func InsertError(batch int, err error) error {
	msg := "Cannot insert batch %d of users"
	vars := []any{batch}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: insert batch %d: %w", fn.Name(), batch, err),
	}
}

// QueryError is returned when existing users cannot be read.
func QueryError(err error) error {
	msg := "Cannot read existing users"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: query users: %w", fn.Name(), err),
	}
}
