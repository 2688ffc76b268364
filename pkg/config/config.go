// Package config provides configuration management for gnkin.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     sqlite_path, batch_size
//   - Server: port, cors_origins
//   - Auth: password_cost, session_ttl_minutes, allow_registration
//   - Cache: user_ttl_seconds, max_users
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNKIN_ prefix with underscores for nesting:
//
//	GNKIN_DATABASE_DRIVER=sqlite
//	GNKIN_DATABASE_HOST=localhost
//	GNKIN_SERVER_PORT=8080
//	GNKIN_AUTH_PASSWORD_COST=12
//	GNKIN_LOG_LEVEL=info
//	GNKIN_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnkin configuration.
type Config struct {
	// Database contains connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Server contains settings of the JSON API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Auth contains password and session policies.
	Auth AuthConfig `mapstructure:"auth" yaml:"auth"`

	// Cache contains settings of the user identity cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for bulk operations
	// (for example hashing passwords during user import).
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Driver selects the database engine.
	// Valid values: "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// SQLitePath is the database file used when Driver is "sqlite".
	// When empty, a file in the gnkin data directory is used.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// BatchSize is the number of records inserted per statement during
	// bulk imports.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ServerConfig contains settings of the JSON API server.
type ServerConfig struct {
	// Port the HTTP server listens on.
	Port int `mapstructure:"port" yaml:"port"`

	// CORSOrigins is a comma-separated list of allowed origins.
	// "*" allows any origin.
	CORSOrigins string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// AuthConfig contains password hashing and session policies.
type AuthConfig struct {
	// PasswordCost is the bcrypt cost used for new hashes. Stored hashes
	// with a different cost are rehashed on the next successful login.
	PasswordCost int `mapstructure:"password_cost" yaml:"password_cost"`

	// SessionTTLMinutes is the idle time after which a session expires.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" yaml:"session_ttl_minutes"`

	// AllowRegistration enables self-registration of visitors.
	AllowRegistration bool `mapstructure:"allow_registration" yaml:"allow_registration"`
}

// CacheConfig contains settings of the user identity cache.
type CacheConfig struct {
	// UserTTLSeconds is how long a user row stays cached.
	UserTTLSeconds int `mapstructure:"user_ttl_seconds" yaml:"user_ttl_seconds"`

	// MaxUsers is the largest number of cached user rows.
	MaxUsers int `mapstructure:"max_users" yaml:"max_users"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:    "postgres",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnkin",
			SSLMode:   "disable",
			BatchSize: 1_000,
		},
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: "*",
		},
		Auth: AuthConfig{
			PasswordCost:      12,
			SessionTTLMinutes: 120,
		},
		Cache: CacheConfig{
			UserTTLSeconds: 60,
			MaxUsers:       10_000,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
