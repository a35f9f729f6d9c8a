package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goShieldDEX/internal/config"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/service"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/metrics"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the shieldd node",
	Long: `Start a shieldd node which provides:
- the transaction engine over the configured key/value store
- the gRPC endpoint for submitting transactions and reading state
- an optional SQL journal of committed transactions
- an optional prometheus metrics endpoint`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.ConfigPaths{Main: configFile})
	if err != nil {
		return err
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	log, err := logging.NewLoggerFromConfig(cfg.Log)
	if err != nil {
		return err
	}
	defer log.AtExit()

	if path := cfg.ConfigPath(); path != "" {
		log.Info("configuration loaded", zap.String("path", path))
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}

	svcCfg := service.Config{
		Engine:  engineCfg,
		Storage: cfg.Storage,
		Logger:  log,
	}

	var journal *relationaldb.Journal
	if cfg.Journal.Enabled {
		journal, err = relationaldb.Open(cfg.Journal, log)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer journal.Close()
		svcCfg.Sinks = append(svcCfg.Sinks, journal)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m, err = metrics.New()
		if err != nil {
			return err
		}
		svcCfg.Observer = m
	}

	svc, err := service.New(svcCfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	if m != nil {
		n, err := svc.PoolCount()
		if err != nil {
			return err
		}
		m.SetPools(n)
		svc.Events().Subscribe(&service.EventHooks{
			OnPoolCreated: func(types.Hash256) { m.PoolCreated() },
		})
	}
	svc.Events().Subscribe(&service.EventHooks{
		OnTransaction: func(r *tx.Receipt) {
			log.Debug("transaction committed",
				zap.Stringer("hash", r.Hash),
				zap.Stringer("type", r.Type),
				zap.Stringer("account", r.Account))
		},
	})

	opts := []nodegrpc.ServerOption{nodegrpc.WithLogger(log)}
	if journal != nil {
		opts = append(opts, nodegrpc.WithJournal(journal))
	}
	srv, err := nodegrpc.NewServer(&cfg.GRPC, svc, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gCtx.Done()
		srv.Stop()
		return nil
	})
	if m != nil {
		g.Go(func() error {
			return m.Serve(gCtx, cfg.Metrics, log)
		})
	}

	log.Info("shieldd started",
		zap.String("grpc", cfg.GRPC.Address),
		zap.Bool("journal", journal != nil),
		zap.Bool("metrics", m != nil))

	err = g.Wait()
	log.Info("shieldd stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
