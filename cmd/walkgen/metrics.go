package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvwalk/corpus"
)

// metrics tracks one walkgen run.
type metrics struct {
	nodeTables prometheus.Gauge
	edgeTables prometheus.Gauge
	epoch      prometheus.Gauge
	walks      prometheus.Counter
	walkLen    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		nodeTables: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvwalk_node_tables_built",
			Help: "Node alias tables built so far.",
		}),
		edgeTables: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvwalk_edge_tables_built",
			Help: "Edge alias tables built so far.",
		}),
		epoch: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvwalk_epoch",
			Help: "Current walk epoch (1-based).",
		}),
		walks: f.NewCounter(prometheus.CounterOpts{
			Name: "lvwalk_walks_emitted_total",
			Help: "Walks written to the corpus sink.",
		}),
		walkLen: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvwalk_walk_length",
			Help:    "Number of vertices per emitted walk.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// meteredSink counts walks on their way into a corpus sink. It is not safe
// for concurrent use.
type meteredSink struct {
	corpus.Sink
	m *metrics
	n int // walks accepted by Sink
}

func (s *meteredSink) WriteWalk(walk []string) error {
	if err := s.Sink.WriteWalk(walk); err != nil {
		return err
	}
	s.n++
	s.m.walks.Inc()
	s.m.walkLen.Observe(float64(len(walk)))
	return nil
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) (func(context.Context) error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())

	return srv.Shutdown, nil
}
