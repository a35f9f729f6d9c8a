package config

import (
	"github.com/spf13/viper"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/metrics"
	"github.com/LeJamon/goShieldDEX/internal/storage"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// setDefaults registers every key with its default. Keys without a default
// are registered empty so environment variables can still set them.
func setDefaults(v *viper.Viper) {
	// Protocol
	v.SetDefault("protocol.admin_address", "")
	v.SetDefault("protocol.fee_receiver_address", "")
	v.SetDefault("protocol.custom_fee_bound", tx.DefaultCustomFeeBound)
	v.SetDefault("protocol.custom_fee_minimum", tx.DefaultCustomFeeMinimum)
	v.SetDefault("protocol.issuance_mode", string(tx.IssuanceGeometric))
	v.SetDefault("protocol.verify_signatures", true)

	// Storage
	st := storage.NewDefaultConfig()
	v.SetDefault("storage.backend", st.Backend)
	v.SetDefault("storage.path", st.Path)
	v.SetDefault("storage.cache_size", st.CacheSize)

	// Journal
	jr := relationaldb.NewConfig()
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.driver", jr.Driver)
	v.SetDefault("journal.dsn", jr.DSN)
	v.SetDefault("journal.max_open_conns", jr.MaxOpenConns)
	v.SetDefault("journal.max_idle_conns", jr.MaxIdleConns)
	v.SetDefault("journal.conn_max_lifetime", jr.ConnMaxLifetime)
	v.SetDefault("journal.default_timeout", jr.DefaultTimeout)

	// gRPC
	gr := nodegrpc.DefaultServerConfig()
	v.SetDefault("grpc.address", gr.Address)
	v.SetDefault("grpc.max_recv_msg_size", gr.MaxRecvMsgSize)
	v.SetDefault("grpc.max_send_msg_size", gr.MaxSendMsgSize)
	v.SetDefault("grpc.allow_fund", false)

	// Metrics
	mc := metrics.NewDefaultConfig()
	v.SetDefault("metrics.enabled", mc.Enabled)
	v.SetDefault("metrics.address", mc.Address)
	v.SetDefault("metrics.path", mc.Path)

	// Logging
	lc := logging.NewDefaultConfig()
	v.SetDefault("log.environment", lc.Environment)
	v.SetDefault("log.level", lc.Level)
}
