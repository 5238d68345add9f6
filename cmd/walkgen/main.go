// Command walkgen loads a graph, generates a node2vec (or DeepWalk) random-walk
// corpus and writes it to a file, stdout or a Redis list.
//
//	walkgen -graph karate.edges -p 0.25 -q 4 -epochs 10 -walk-len 80 -out walks.txt
//	walkgen -synthetic grid:100x100 -redis-addr localhost:6379 -metrics-addr :9100
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/lvwalk/corpus"
	"github.com/katalvlaran/lvwalk/node2vec"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Environ())
	stop()
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses the configuration and performs one corpus generation.
func run(ctx context.Context, stdout, stderr io.Writer, args, environ []string) error {
	cfg, exit, err := Parse(args, stderr, environ)
	if err != nil || exit {
		return err
	}
	log := newLogger(stderr, cfg.LogFormat, cfg.LogLevel)
	reg := prometheus.NewRegistry()
	m := newMetrics(reg)

	if cfg.MetricsAddr != "" {
		shutdown, err := serveMetrics(cfg.MetricsAddr, reg, log)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	_, err = generate(ctx, cfg, stdout, log, m)
	return err
}

// summary describes a finished run.
type summary struct {
	Vertices int
	Walks    int
	Mode     node2vec.Mode
	Elapsed  time.Duration
}

// generate loads the graph, builds the walker and streams the corpus into the
// configured sink.
func generate(ctx context.Context, cfg *Config, stdout io.Writer, log *slog.Logger, m *metrics) (summary, error) {
	started := time.Now()
	var sum summary

	g, err := loadGraph(cfg)
	if err != nil {
		return sum, fmt.Errorf("loading graph: %w", err)
	}
	log.Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"directed", g.Directed(), "weighted", g.Weighted())

	w, err := node2vec.NewWalker(g, walkerOptions(ctx, cfg, log, m)...)
	if err != nil {
		return sum, fmt.Errorf("building walker: %w", err)
	}
	sum.Vertices, sum.Mode = len(w.Vertices()), w.Mode()

	sink, finish, err := openSink(ctx, cfg, stdout)
	if err != nil {
		return sum, err
	}
	metered := &meteredSink{Sink: sink, m: m}

	if cfg.Sequential {
		_, err = corpus.WriteContext(ctx, w.Walks(cfg.Epochs, cfg.WalkLen), metered)
	} else {
		err = w.SimulateParallel(ctx, cfg.Epochs, cfg.WalkLen, metered.WriteWalk)
		if err == nil {
			err = metered.Flush()
		}
	}
	sum.Walks = metered.n
	if ferr := finish(err == nil); err == nil {
		err = ferr
	}
	if err != nil {
		return sum, fmt.Errorf("writing corpus: %w", err)
	}

	sum.Elapsed = time.Since(started)
	log.Info("corpus written", "walks", sum.Walks, "vertices", sum.Vertices,
		"mode", sum.Mode.String(), "elapsed", sum.Elapsed)
	return sum, nil
}

// walkerOptions translates cfg into node2vec options with hooks feeding the
// log and the metrics.
func walkerOptions(ctx context.Context, cfg *Config, log *slog.Logger, m *metrics) []node2vec.Option {
	opts := []node2vec.Option{
		node2vec.WithContext(ctx),
		node2vec.WithP(cfg.P),
		node2vec.WithQ(cfg.Q),
		node2vec.WithWeighted(cfg.Weighted),
		node2vec.WithNumSampleNeighbors(cfg.SampleNeighbors),
		node2vec.WithSeed(cfg.Seed),
		node2vec.WithLogger(log),
		node2vec.WithOnNodeTable(func(done, total int) {
			m.nodeTables.Set(float64(done))
			log.Info("node tables", "done", done, "total", total)
		}),
		node2vec.WithOnEdgeTable(func(done, total int) {
			m.edgeTables.Set(float64(done))
			log.Info("edge tables", "done", done, "total", total)
		}),
		node2vec.WithOnEpoch(func(epoch, total int) {
			m.epoch.Set(float64(epoch))
		}),
	}
	if cfg.Workers > 0 {
		opts = append(opts, node2vec.WithWorkers(cfg.Workers))
	}
	if cfg.BatchSize > 0 {
		opts = append(opts, node2vec.WithBatchSize(cfg.BatchSize))
	}
	return opts
}

// openSink picks Redis when an address is configured, a text corpus otherwise.
// finish releases the sink; finish(false) also removes a partially written
// -out file.
func openSink(ctx context.Context, cfg *Config, stdout io.Writer) (corpus.Sink, func(ok bool) error, error) {
	if cfg.RedisAddr != "" {
		cl := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := cl.Ping(ctx).Err(); err != nil {
			_ = cl.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		return corpus.NewRedisSink(ctx, cl, cfg.RedisKey), func(bool) error { return cl.Close() }, nil
	}

	if cfg.Out == "" || cfg.Out == "-" {
		tw := corpus.NewTextWriter(struct{ io.Writer }{stdout})
		return tw, func(bool) error { return tw.Close() }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, err
	}
	tw := corpus.NewTextWriter(f)
	return tw, func(ok bool) error {
		err := tw.Close()
		if !ok || err != nil {
			if rerr := os.Remove(cfg.Out); rerr != nil {
				return errors.Join(err, rerr)
			}
		}
		return err
	}, nil
}

// newLogger builds the run logger; format and level are already validated.
func newLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
