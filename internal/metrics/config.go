package metrics

import (
	"fmt"
	"net"
)

// Config represents the configuration of the metric package
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Path    string `mapstructure:"path"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Address: "127.0.0.1:9102",
		Path:    "/metrics",
	}
}

// Validate checks the listen address of an enabled exporter.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("metrics: invalid address %q: %w", c.Address, err)
	}
	if c.Path == "" || c.Path[0] != '/' {
		return fmt.Errorf("metrics: path must start with /")
	}
	return nil
}
