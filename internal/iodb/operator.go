// Package iodb implements database operations on top of GORM.
// PostgreSQL connections go through a pgx pool, SQLite connections
// through the pure Go modernc driver.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// operator implements db.Operator interface.
type operator struct {
	driver string
	pool   *pgxpool.Pool
	sqlDB  *sql.DB
	gormDB *gorm.DB
}

// NewOperator creates a new database operator
// (without connecting).
func NewOperator() db.Operator {
	return &operator{}
}

// Connect opens the database selected by cfg.Driver.
func (o *operator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	switch cfg.Driver {
	case "postgres":
		return o.connectPostgres(ctx, cfg)
	case "sqlite":
		return o.connectSQLite(ctx, cfg)
	default:
		return UnknownDriverError(cfg.Driver)
	}
}

func (o *operator) connectPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	o.driver = "postgres"
	o.pool = pool
	o.sqlDB = sqlDB
	o.gormDB = gormDB
	return nil
}

func (o *operator) connectSQLite(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	path := cfg.SQLitePath
	if path == "" {
		return SQLiteConnectionError(path,
			fmt.Errorf("sqlite path is empty"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return SQLiteConnectionError(path, err)
	}

	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteConnectionError(path, err)
	}
	// A single connection serializes writers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return SQLiteConnectionError(path, err)
	}

	gormDB, err := gorm.Open(
		sqlite.New(sqlite.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		_ = sqlDB.Close()
		return SQLiteConnectionError(path, err)
	}

	o.driver = "sqlite"
	o.sqlDB = sqlDB
	o.gormDB = gormDB
	return nil
}

// gormConfig sends GORM's own logs (slow queries, errors) to slog.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.NewSlogLogger(slog.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	}
}

// Close releases all database connections.
func (o *operator) Close() error {
	var err error
	if o.sqlDB != nil {
		err = o.sqlDB.Close()
	}
	if o.pool != nil {
		o.pool.Close()
	}
	o.sqlDB, o.pool, o.gormDB = nil, nil, nil
	return err
}

// DB returns the GORM handle.
func (o *operator) DB() *gorm.DB {
	return o.gormDB
}

// Driver returns the connected engine.
func (o *operator) Driver() string {
	return o.driver
}

// TableExists checks if a table exists in the current
// database.
func (o *operator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.gormDB == nil {
		return false, NotConnectedError()
	}
	tables, err := o.tables(ctx)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	for _, t := range tables {
		if t == tableName {
			return true, nil
		}
	}
	return false, nil
}

// HasTables checks if the database has any tables.
func (o *operator) HasTables(
	ctx context.Context,
) (bool, error) {
	if o.gormDB == nil {
		return false, NotConnectedError()
	}
	tables, err := o.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops all tables of the database.
func (o *operator) DropAllTables(ctx context.Context) error {
	if o.gormDB == nil {
		return NotConnectedError()
	}

	tables, err := o.tables(ctx)
	if err != nil {
		return QueryTablesError(err)
	}

	gdb := o.gormDB.WithContext(ctx)
	for _, table := range tables {
		var err error
		if o.driver == "postgres" {
			err = gdb.Exec(fmt.Sprintf(
				"DROP TABLE IF EXISTS %q CASCADE", table)).Error
		} else {
			err = gdb.Migrator().DropTable(table)
		}
		if err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}

// tables lists user tables, skipping SQLite internals.
func (o *operator) tables(ctx context.Context) ([]string, error) {
	all, err := o.gormDB.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(all))
	for _, t := range all {
		if strings.HasPrefix(t, "sqlite_") {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}
