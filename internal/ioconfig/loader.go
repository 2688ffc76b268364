// Package ioconfig loads gnkin configuration from config.yaml and
// environment variables.
package ioconfig

import (
	"strings"

	"github.com/gnames/gnkin/internal/iofs"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GNKIN"

// envVars lists configuration keys that can be set from the environment.
// They match the fields included in config.ToOptions().
var envVars = []string{
	"database.driver",
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",
	"database.sqlite_path",
	"database.batch_size",

	"server.port",
	"server.cors_origins",

	"auth.password_cost",
	"auth.session_ttl_minutes",
	"auth.allow_registration",

	"cache.user_ttl_seconds",
	"cache.max_users",

	"log.level",
	"log.format",
	"log.destination",

	"jobs_number",
}

// EnvVars returns the names of supported environment variables.
func EnvVars() []string {
	res := make([]string, len(envVars))
	for i, k := range envVars {
		res[i] = envName(k)
	}
	return res
}

// envName returns the prefixed variable of a key, for example
// GNKIN_DATABASE_HOST for database.host.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load reads the config file at path, applies environment variables and
// returns the resulting options. Values that are missing or invalid keep
// their defaults.
func Load(path string) ([]config.Option, error) {
	v := viper.New()
	v.SetConfigFile(path)
	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(path, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(path, err)
	}

	return res.ToOptions(), nil
}

// initEnvVars binds environment variables explicitly, so it is clear
// which ones are allowed. Viper does not prefix explicit names, so
// envName adds GNKIN_ itself.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envVars {
		_ = v.BindEnv(k, envName(k))
	}
	v.AutomaticEnv()
}
