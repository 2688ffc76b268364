// Package errcode enumerates error codes of gnkin. The codes are attached
// to *gn.Error values created by the io* packages.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Home directory errors
	HomeDirError
	DatabaseDirError
	ConfigWriteError
	ConfigReadError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError
	DBUnknownDriverError

	// Schema errors
	SchemaCreateError
	SchemaMigrateError
	SchemaSeedError

	// User errors
	UserQueryError
	UserCreateError
	UserUpdateError
	UserDeleteError
	UserPasswordHashError
	UserPreferenceError
	UserSessionError
	UserCacheError

	// Tree errors
	TreeQueryError
	TreeCreateError
	TreeSettingError

	// Import errors
	ImportQueryError
	ImportHashError
	ImportInsertError
	ImportRosterError

	// Optimize errors
	OptimizeSessionsError
	OptimizeOrphansError
	OptimizeVacuumError

	// Web errors
	WebListenError
)
