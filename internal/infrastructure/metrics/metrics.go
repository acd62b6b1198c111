package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "isoroom"

// Collector holds the scene metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	ticks         prometheus.Counter
	tickDuration  prometheus.Histogram
	toggles       *prometheus.CounterVec
	clampedDeltas *prometheus.CounterVec
	sounds        *prometheus.CounterVec
	players       prometheus.Gauge
}

// NewCollector creates and registers all metrics
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one update tick.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toggles_total",
			Help:      "Accepted toggle transitions by object and entered state.",
		}, []string{"object", "state"}),
		clampedDeltas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sanitized_deltas_total",
			Help:      "Tick deltas replaced before use, by reason.",
		}, []string{"reason"}),
		sounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sounds_total",
			Help:      "Sound cues played.",
		}, []string{"cue"}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players",
			Help:      "Players currently in the scene.",
		}),
	}
	c.registry.MustRegister(c.ticks, c.tickDuration, c.toggles, c.clampedDeltas, c.sounds, c.players)
	return c
}

// ObserveTick records one update tick and its duration
func (c *Collector) ObserveTick(d time.Duration) {
	c.ticks.Inc()
	c.tickDuration.Observe(d.Seconds())
}

// ObserveToggle records an accepted transition of the named object
func (c *Collector) ObserveToggle(object string, state int) {
	c.toggles.WithLabelValues(object, strconv.Itoa(state)).Inc()
}

// ObserveSanitizedDelta records a replaced tick delta
func (c *Collector) ObserveSanitizedDelta(reason string) {
	c.clampedDeltas.WithLabelValues(reason).Inc()
}

// ObserveSound records one played cue
func (c *Collector) ObserveSound(cue string) {
	c.sounds.WithLabelValues(cue).Inc()
}

// SetPlayers sets the player gauge
func (c *Collector) SetPlayers(n int) {
	c.players.Set(float64(n))
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
// The server runs in its own goroutine; Serve returns immediately.
func (c *Collector) Serve(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics endpoint listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
