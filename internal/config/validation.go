package config

import (
	"fmt"
)

// ValidateConfig checks every section.
func ValidateConfig(c *Config) error {
	engine, err := c.EngineConfig()
	if err != nil {
		return err
	}
	if err := engine.Validate(); err != nil {
		return fmt.Errorf("protocol: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Journal.Validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if err := c.GRPC.Validate(); err != nil {
		return fmt.Errorf("grpc: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return nil
}
