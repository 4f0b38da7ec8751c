package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Database.BusyTimeout < 0 {
		errs = append(errs, errors.New("database.busy_timeout must not be negative"))
	}

	if len(c.Auth.Users) != 2 {
		errs = append(errs, fmt.Errorf("auth.users: want exactly 2 names, got %d", len(c.Auth.Users)))
	} else {
		a, b := strings.TrimSpace(c.Auth.Users[0]), strings.TrimSpace(c.Auth.Users[1])
		if a == "" || b == "" || a == b {
			errs = append(errs, errors.New("auth.users: names must be non-empty and distinct"))
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format: %q is not json or text", c.Log.Format))
	}

	return errors.Join(errs...)
}
