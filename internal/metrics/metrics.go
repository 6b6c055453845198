// Package metrics exposes game and session statistics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skyraid"

// Metrics holds the collectors. A nil *Metrics records nothing, so callers
// that run without metrics need no special casing.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	gamesOver      prometheus.Counter
	finalScore     prometheus.Histogram
	frameDuration  prometheus.Histogram
	frameBytes     prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry together
// with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently connected.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Game sessions started.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Games that ended with the player out of lives.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250, 500},
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent simulating and rendering one frame, excluding the sleep.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),
		frameBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_bytes",
			Help:      "Terminal output written per frame.",
			Buckets:   prometheus.ExponentialBuckets(256, 2, 10),
		}),
	}

	m.registry.MustRegister(
		m.sessionsActive,
		m.sessionsTotal,
		m.gamesOver,
		m.finalScore,
		m.frameDuration,
		m.frameBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// SessionStarted records a new session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

// SessionEnded records a session leaving.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// GameOver records a finished game and its score.
func (m *Metrics) GameOver(score int) {
	if m == nil {
		return
	}
	m.gamesOver.Inc()
	m.finalScore.Observe(float64(score))
}

// ObserveFrame records how long a frame took.
func (m *Metrics) ObserveFrame(d time.Duration) {
	if m == nil {
		return
	}
	m.frameDuration.Observe(d.Seconds())
}

// ObserveFrameBytes records how much output a frame produced.
func (m *Metrics) ObserveFrameBytes(n int) {
	if m == nil {
		return
	}
	m.frameBytes.Observe(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	}
}
