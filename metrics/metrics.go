// Package metrics exports game events as Prometheus metrics
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/neko-tower/core"
	"github.com/lixenwraith/neko-tower/engine"
)

const namespace = "neko_tower"

// spawn starts background work so a panic restores the terminal first
var spawn = core.Go

// Collector turns game events into metrics. It implements engine.Listener
type Collector struct {
	chops     prometheus.Counter
	bonuses   prometheus.Counter
	gameOvers *prometheus.CounterVec
	finals    prometheus.Histogram
	score     prometheus.Gauge
	health    prometheus.Gauge
	state     *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them with reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		chops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chops_total",
			Help:      "Pieces chopped without ending the game.",
		}),
		bonuses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_pieces_total",
			Help:      "Bonus pieces that refilled health.",
		}),
		gameOvers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Finished sessions by failure reason.",
		}, []string{"reason"}),
		finals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   []float64{5, 10, 25, 50, 100, 200, 400, 800},
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score of the current session.",
		}),
		health: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "health",
			Help:      "Health after the last chop or restart.",
		}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state",
			Help:      "1 for the active game state, 0 otherwise.",
		}, []string{"state"}),
	}

	for _, col := range []prometheus.Collector{c.chops, c.bonuses, c.gameOvers, c.finals, c.score, c.health, c.state} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// OnGameEvent updates the metrics for one event
func (c *Collector) OnGameEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventRoundScored:
		c.chops.Inc()
		c.score.Set(float64(ev.Score))
	case engine.EventBonusConsumed:
		c.bonuses.Inc()
	case engine.EventHealthChanged:
		c.health.Set(ev.Health)
		c.score.Set(float64(ev.Score))
	case engine.EventGameOver:
		c.gameOvers.WithLabelValues(ev.Reason.String()).Inc()
		c.finals.Observe(float64(ev.Score))
	case engine.EventStateChanged:
		for _, s := range []engine.GameState{engine.StateTitle, engine.StateReady, engine.StatePlaying, engine.StateGameOver} {
			v := 0.0
			if s == ev.State {
				v = 1
			}
			c.state.WithLabelValues(s.String()).Set(v)
		}
	}
}

// Server serves /metrics for a gatherer
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer prepares an HTTP server on addr (e.g. ":2112")
func NewServer(addr string, g prometheus.Gatherer, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in a background goroutine
func (s *Server) Start() {
	spawn(func() {
		s.logger.Info("metrics endpoint listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics endpoint failed", zap.Error(err))
		}
	})
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
