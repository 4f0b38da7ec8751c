package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HOST"                    env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// DisableReset hides GET /reset-db. Set it outside development; a false
	// YAML value cannot override a true default with cleanenv, hence the
	// negative name.
	DisableReset bool `yaml:"disable_reset" env:"DISABLE_RESET_DB"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path        string        `yaml:"path"         env:"DB_PATH"         env-default:"./data/ourspace.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"DB_BUSY_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds the two user names accepted by the login page.
type AuthConfig struct {
	Users []string `yaml:"users" env:"AUTH_USERS" env-separator:"," env-default:"Siri,Nani"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
