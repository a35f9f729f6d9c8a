// Package metrics exports node instruments to prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/LeJamon/goShieldDEX/internal/logging"
)

const namespace = "shieldd"

// Metrics holds the node instruments. Each instance owns its registry, so
// several nodes can live in one process.
type Metrics struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	applyTime    *prometheus.HistogramVec
	pools        prometheus.Gauge
}

// New creates and registers the instruments.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Transactions processed by the engine, by type and result",
		}, []string{"type", "result"}),
		applyTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transaction_apply_seconds",
			Help:      "Time spent applying a transaction",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}, []string{"type"}),
		pools: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pools",
			Help:      "Number of pools in the ledger",
		}),
	}
	for _, c := range []prometheus.Collector{m.transactions, m.applyTime, m.pools} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveApply implements tx.Observer.
func (m *Metrics) ObserveApply(txType, result string, d time.Duration) {
	m.transactions.WithLabelValues(txType, result).Inc()
	m.applyTime.WithLabelValues(txType).Observe(d.Seconds())
}

// SetPools sets the pool gauge.
func (m *Metrics) SetPools(n int) {
	m.pools.Set(float64(n))
}

// PoolCreated increments the pool gauge.
func (m *Metrics) PoolCreated() {
	m.pools.Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the instruments on cfg.Address until ctx is done.
func (m *Metrics) Serve(ctx context.Context, cfg Config, log *logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, m.Handler())
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", zap.String("address", cfg.Address), zap.String("path", cfg.Path))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
