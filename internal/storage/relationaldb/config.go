package relationaldb

import (
	"fmt"
	"time"
)

// Supported drivers. The names are those the drivers register with
// database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config contains journal configuration settings
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`

	// Connection pool settings
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`

	// DefaultTimeout bounds every statement
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// NewConfig creates a new Config with sensible defaults
func NewConfig() Config {
	return Config{
		Driver:          DriverSQLite,
		DSN:             "journal.db",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		DefaultTimeout:  10 * time.Second,
	}
}

// SQLiteMemoryConfig returns a configuration for a private in-memory
// database.
func SQLiteMemoryConfig() Config {
	c := NewConfig()
	c.Enabled = true
	c.DSN = ":memory:"
	return c
}

// Validate checks the configuration for common errors. A disabled journal
// is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch c.Driver {
	case DriverSQLite, "sqlite3":
		c.Driver = DriverSQLite
	case DriverPostgres, "postgresql":
		c.Driver = DriverPostgres
	default:
		return NewConfigurationError("validate", fmt.Sprintf("unsupported driver %q", c.Driver), ErrInvalidDriver)
	}
	if c.DSN == "" {
		return NewConfigurationError("validate", "dsn is required", ErrMissingDSN)
	}
	if c.MaxOpenConns < 0 {
		return ErrInvalidMaxOpenConns
	}
	if c.MaxIdleConns < 0 {
		return ErrInvalidMaxIdleConns
	}
	if c.MaxIdleConns > c.MaxOpenConns && c.MaxOpenConns > 0 {
		return ErrMaxIdleExceedsMaxOpen
	}
	if c.DefaultTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
