package grpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// LedgerService defines the ledger operations needed by the handlers.
// It is implemented by *service.Service.
type LedgerService interface {
	Submit(ctx context.Context, t tx.Transaction) (tx.ApplyResult, error)
	GetPool(id types.Hash256) (*sle.Pool, error)
	GetPlatformConfig(id types.Hash256) (*sle.PlatformConfig, error)
	GetReferrer(referee types.AccountID) (*sle.Referrer, error)
	Balance(token types.TokenID, owner types.AccountID) (uint64, error)
	Supply(token types.TokenID) (uint64, error)
	QuoteSwap(pool types.Hash256, bid, ask types.TokenID, bidAmount uint64) (amm.SwapQuote, error)
	Fund(token types.TokenID, owner types.AccountID, v uint64) error
	AccountSequence(account types.AccountID) (uint32, error)
}

// JournalReader serves ListJournal.
type JournalReader interface {
	ListByAccount(ctx context.Context, account types.AccountID, limit int) ([]*relationaldb.Entry, error)
	ListByPool(ctx context.Context, pool types.Hash256, limit int) ([]*relationaldb.Entry, error)
}

// Server represents the gRPC server of the node.
type Server struct {
	mu sync.RWMutex

	// grpcServer is the underlying gRPC server
	grpcServer *grpc.Server

	// ledgerService provides access to ledger operations
	ledgerService LedgerService

	// journal serves history queries (optional)
	journal JournalReader

	// config holds the server configuration
	config *ServerConfig

	log *logging.Logger

	// listener is the network listener
	listener net.Listener

	// running indicates if the server is currently running
	running bool
}

var _ NodeServer = (*Server)(nil)

// ServerOption is a function that configures a Server.
type ServerOption func(*Server)

// WithJournal sets the journal ListJournal reads from.
func WithJournal(j JournalReader) ServerOption {
	return func(s *Server) {
		s.journal = j
	}
}

// WithLogger sets the server logger.
func WithLogger(log *logging.Logger) ServerOption {
	return func(s *Server) {
		s.log = log.Named("grpc")
	}
}

// NewServer creates a new gRPC server with the given configuration.
func NewServer(cfg *ServerConfig, ledgerSvc LedgerService, opts ...ServerOption) (*Server, error) {
	if cfg == nil {
		cfg = DefaultServerConfig()
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	server := &Server{
		ledgerService: ledgerSvc,
		config:        cfg,
		log:           logging.NewTestLogger(),
	}
	for _, opt := range opts {
		opt(server)
	}

	server.grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(cfg.MaxSendMsgSize),
		grpc.UnaryInterceptor(UnaryServerInterceptor(server.log)),
	)
	server.grpcServer.RegisterService(&NodeServiceDesc, server)

	return server, nil
}

// Start listens on the configured address and serves until the server is
// stopped.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve accepts connections on lis. It blocks until the server is stopped
// or an error occurs.
func (s *Server) Serve(lis net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server is already running")
	}
	s.listener = lis
	s.running = true
	s.mu.Unlock()

	s.log.Info("grpc server listening", zap.String("address", lis.Addr().String()))
	err := s.grpcServer.Serve(lis)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

// Stop gracefully stops the gRPC server.
// It stops accepting new connections and waits for existing connections to complete.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.grpcServer.GracefulStop()
	s.running = false
}

// StopNow immediately stops the gRPC server without waiting for connections.
func (s *Server) StopNow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.grpcServer.Stop()
	s.running = false
}

// IsRunning returns true if the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Address returns the address the server is listening on.
// Returns empty string if the server is not running.
func (s *Server) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// UnaryServerInterceptor logs every call with its status code and latency.
func UnaryServerInterceptor(log *logging.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("grpc call",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("took", time.Since(start)))
		return resp, err
	}
}
