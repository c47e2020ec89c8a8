// Package observability exposes processing metrics over a Prometheus
// scrape endpoint.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds the graceful shutdown of the metrics listener.
const shutdownTimeout = 5 * time.Second

// Metrics counts the work done by a genotyping run. Each instance owns an
// independent registry to avoid collector conflicts across runs.
type Metrics struct {
	registry *prometheus.Registry

	MatePairsProcessed prometheus.Counter
	LociAnalyzed       prometheus.Counter
	GenotypesCalled    prometheus.Counter
	LowDepthLoci       prometheus.Counter
}

// NewMetrics creates a metrics set backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		MatePairsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "ehunter_mate_pairs_processed_total",
			Help: "Number of mate pairs consumed from the read stream.",
		}),
		LociAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "ehunter_loci_analyzed_total",
			Help: "Number of catalog loci analyzed.",
		}),
		GenotypesCalled: factory.NewCounter(prometheus.CounterOpts{
			Name: "ehunter_genotypes_called_total",
			Help: "Number of variants with a called genotype.",
		}),
		LowDepthLoci: factory.NewCounter(prometheus.CounterOpts{
			Name: "ehunter_low_depth_loci_total",
			Help: "Number of variants flagged for insufficient depth.",
		}),
	}
}

// Handler returns the /metrics scrape handler for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics listener on addr until ctx is canceled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe()
	}()

	logger.Info("metrics listener started", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}
