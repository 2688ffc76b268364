package iooptimize

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
)

// NotConnectedError is returned when Optimize runs before the database
// connection is open.
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

// SessionsError is returned when expired sessions cannot be removed.
func SessionsError(err error) error {
	msg := "Cannot remove expired sessions"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OptimizeSessionsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: delete expired sessions: %w", fn.Name(), err),
	}
}

// OrphansError is returned when orphaned rows of a table cannot be
// removed.
func OrphansError(table string, err error) error {
	msg := "Cannot remove orphaned records from <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OptimizeOrphansError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: delete orphans of %s: %w", fn.Name(), table, err),
	}
}

// VacuumError is returned when VACUUM or ANALYZE fails.
func VacuumError(stmt string, err error) error {
	msg := "Cannot run <em>%s</em>"
	vars := []any{stmt}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OptimizeVacuumError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s: %w", fn.Name(), stmt, err),
	}
}
