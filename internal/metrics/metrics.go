// Package metrics exports engine events as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/sandrunner/internal/games/desert/engine"
)

const namespace = "sandrunner"

// Collector implements engine.Observer. One Collector may be shared by every
// running game; Prometheus metrics are safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	frames      prometheus.Counter
	frameDelta  prometheus.Histogram
	nearby      prometheus.Gauge
	coins       prometheus.Counter
	coinPoints  prometheus.Counter
	hits        prometheus.Counter
	damage      prometheus.Counter
	levels      prometheus.Counter
	levelScores prometheus.Histogram
	deaths      prometheus.Counter
	gamesOver   *prometheus.CounterVec
	finalScores prometheus.Histogram
	maxLevel    prometheus.Gauge

	mu      sync.Mutex
	reached int
}

var _ engine.Observer = (*Collector)(nil)

// New creates a Collector with its own registry, so several collectors can
// coexist in one process.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation frames advanced while running.",
		}),
		frameDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_delta_seconds",
			Help:      "Frame time step after capping.",
			Buckets:   []float64{0, 0.008, 0.017, 0.033, 0.05, 0.1},
		}),
		nearby: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nearby_objects",
			Help:      "Objects within the cull radius on the last frame.",
		}),
		coins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_collected_total",
			Help:      "Coins picked up.",
		}),
		coinPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coin_points_total",
			Help:      "Points earned from coins.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_hits_total",
			Help:      "Hits that damaged the player.",
		}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Health lost by the player.",
		}),
		levels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_completed_total",
			Help:      "Levels finished by reaching the flag.",
		}),
		levelScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "level_score",
			Help:      "Score banked per completed level, time bonus included.",
			Buckets:   prometheus.LinearBuckets(0, 100, 10),
		}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_deaths_total",
			Help:      "Lives lost.",
		}),
		gamesOver: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Finished runs by outcome.",
		}, []string{"outcome"}),
		finalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Final score of finished runs.",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 8),
		}),
		maxLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_level_reached",
			Help:      "Highest level number any run has finished on.",
		}),
	}

	c.registry.MustRegister(
		c.frames, c.frameDelta, c.nearby,
		c.coins, c.coinPoints, c.hits, c.damage,
		c.levels, c.levelScores, c.deaths,
		c.gamesOver, c.finalScores, c.maxLevel,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// FrameDone counts a simulated frame and records its delta and nearby entity count.
func (c *Collector) FrameDone(dt float64, nearby int) {
	c.frames.Inc()
	c.frameDelta.Observe(dt)
	c.nearby.Set(float64(nearby))
}

// CoinCollected counts a coin pickup and its points.
func (c *Collector) CoinCollected(value int) {
	c.coins.Inc()
	c.coinPoints.Add(float64(value))
}

// PlayerHit counts a hit. Zero-damage hits add nothing to the damage total.
func (c *Collector) PlayerHit(damage float64) {
	c.hits.Inc()
	if damage > 0 {
		c.damage.Add(damage)
	}
}

// LevelCompleted records a finished level and its banked score.
func (c *Collector) LevelCompleted(level, levelScore int) {
	c.levels.Inc()
	c.levelScores.Observe(float64(levelScore))
	c.observeLevel(level)
}

// PlayerDied counts a lost life.
func (c *Collector) PlayerDied(int) {
	c.deaths.Inc()
}

// GameOver records how a run ended, labelled won or lost.
func (c *Collector) GameOver(won bool, score, level int) {
	outcome := "lost"
	if won {
		outcome = "won"
	}
	c.gamesOver.WithLabelValues(outcome).Inc()
	c.finalScores.Observe(float64(score))
	c.observeLevel(level)
}

// observeLevel raises the max level gauge.
func (c *Collector) observeLevel(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level > c.reached {
		c.reached = level
		c.maxLevel.Set(float64(level))
	}
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr, "path", "/metrics")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
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
