// Package config loads the node configuration.
package config

import (
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/metrics"
	"github.com/LeJamon/goShieldDEX/internal/storage"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// Config represents the complete shieldd configuration
type Config struct {
	Protocol ProtocolConfig        `mapstructure:"protocol"`
	Storage  storage.Config        `mapstructure:"storage"`
	Journal  relationaldb.Config   `mapstructure:"journal"`
	GRPC     nodegrpc.ServerConfig `mapstructure:"grpc"`
	Metrics  metrics.Config        `mapstructure:"metrics"`
	Log      logging.Config        `mapstructure:"log"`

	// configPath is the file the configuration was read from, if any
	configPath string
}

// ProtocolConfig holds the rules the engine enforces.
type ProtocolConfig struct {
	AdminAddress       string `mapstructure:"admin_address"`
	FeeReceiverAddress string `mapstructure:"fee_receiver_address"`
	CustomFeeBound     uint64 `mapstructure:"custom_fee_bound"`
	CustomFeeMinimum   uint64 `mapstructure:"custom_fee_minimum"`
	IssuanceMode       string `mapstructure:"issuance_mode"`
	VerifySignatures   bool   `mapstructure:"verify_signatures"`
}

// ConfigPaths holds paths to configuration files
type ConfigPaths struct {
	Main string // Path to the main config file (optional)
}

// ConfigPath returns the file the configuration was read from.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// EngineConfig converts the protocol section into the engine's form.
func (c *Config) EngineConfig() (tx.EngineConfig, error) {
	admin, err := types.ParseAccountID(c.Protocol.AdminAddress)
	if err != nil {
		return tx.EngineConfig{}, fmt.Errorf("protocol.admin_address: %w", err)
	}
	receiver, err := types.ParseAccountID(c.Protocol.FeeReceiverAddress)
	if err != nil {
		return tx.EngineConfig{}, fmt.Errorf("protocol.fee_receiver_address: %w", err)
	}
	return tx.EngineConfig{
		Admin:                     admin,
		FeeReceiver:               receiver,
		CustomFeeBound:            c.Protocol.CustomFeeBound,
		CustomFeeMinimum:          c.Protocol.CustomFeeMinimum,
		Issuance:                  tx.IssuanceMode(c.Protocol.IssuanceMode),
		SkipSignatureVerification: !c.Protocol.VerifySignatures,
	}, nil
}
