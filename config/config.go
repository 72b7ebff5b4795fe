// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	configPath     = pflag.String("config", ".", "Directory containing config.toml")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(*configPath)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl_enabled", "host_ssl_enabled")
	v.BindEnv("host.cors_origins", "host_cors_origins")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("redis.addr", "redis_addr")
	v.BindEnv("redis.password", "redis_password")
	v.BindEnv("redis.db", "redis_db")

	v.BindEnv("session.cookie_name", "session_cookie_name")
	v.BindEnv("session.max_age", "session_max_age")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender")
	v.BindEnv("mail.password", "mail_password")

	v.BindEnv("spotify.client_id", "spotify_client_id")
	v.BindEnv("spotify.client_secret", "spotify_client_secret")

	v.BindEnv("chords.path", "chords_path")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 4000)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl_enabled", false)
	v.SetDefault("host.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "remaster.db")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.cookie_name", "qid")
	// Sessions effectively live until an explicit logout
	v.SetDefault("session.max_age", 60*60*24*365*10)

	v.SetDefault("mail.port", 587)

	v.SetDefault("ratelimit.rps", 2)
	v.SetDefault("ratelimit.burst", 5)

	v.SetDefault("chords.path", "data/chords.json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetString("redis.addr") == "" {
		return errors.New("redis address can't be empty")
	}

	if v.GetInt("session.max_age") <= 0 {
		return errors.New("session max age must be bigger than 0")
	}

	if v.GetString("mail.sender") == "" {
		return errors.New("no mail sender address provided")
	}

	if v.GetInt("mail.port") <= 0 {
		return errors.New("invalid mail port provided")
	}

	if v.GetString("spotify.client_id") == "" {
		return errors.New("spotify client id can't be empty")
	}

	if v.GetString("spotify.client_secret") == "" {
		return errors.New("spotify client secret can't be empty")
	}

	return nil
}
