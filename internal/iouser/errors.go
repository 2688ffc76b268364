package iouser

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

// CacheError is returned when the identity cache cannot be created.
func CacheError(err error) error {
	msg := "Cannot create user cache"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserCacheError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// QueryError is returned when reading users fails.
func QueryError(what string, err error) error {
	msg := "Cannot read <em>%s</em> from the database"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query %s: %w", fn.Name(), what, err),
	}
}

// PasswordHashError is returned when bcrypt cannot hash a password.
func PasswordHashError(userName string, err error) error {
	msg := "Cannot hash password of <em>%s</em>"
	vars := []any{userName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserPasswordHashError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: hash password: %w", fn.Name(), err),
	}
}

// CreateError is returned when a new user cannot be stored.
func CreateError(userName string, err error) error {
	msg := "Cannot create user <em>%s</em>"
	vars := []any{userName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: create %s: %w", fn.Name(), userName, err),
	}
}

// UpdateError is returned when a user field cannot be changed.
func UpdateError(id int, field string, err error) error {
	msg := "Cannot update <em>%s</em> of user %d"
	vars := []any{field, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserUpdateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: update %s of user %d: %w",
			fn.Name(), field, id, err),
	}
}

// DeleteError is returned when a user cannot be removed.
func DeleteError(id int, err error) error {
	msg := "Cannot delete user %d"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserDeleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: delete user %d: %w", fn.Name(), id, err),
	}
}

// PreferenceError is returned when preferences cannot be read or stored.
func PreferenceError(id int, name string, err error) error {
	msg := "Cannot access setting <em>%s</em> of user %d"
	vars := []any{name, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserPreferenceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: setting %s of user %d: %w",
			fn.Name(), name, id, err),
	}
}

// SessionError is returned when sessions cannot be read or written.
func SessionError(err error) error {
	msg := "Cannot access user sessions"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UserSessionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: sessions: %w", fn.Name(), err),
	}
}
