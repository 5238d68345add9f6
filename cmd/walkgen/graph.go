package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/graphio"
)

var errSynthetic = errors.New("invalid synthetic graph")

// synthetic weights are drawn from [minSyntheticWeight, maxSyntheticWeight)
// when -weighted is set.
const (
	minSyntheticWeight = 0.5
	maxSyntheticWeight = 2.0
)

var sized = map[string]func(n int) builder.Constructor{
	"cycle":    builder.Cycle,
	"path":     builder.Path,
	"star":     builder.Star,
	"wheel":    builder.Wheel,
	"complete": builder.Complete,
}

// loadGraph reads cfg.GraphPath or generates cfg.Synthetic.
func loadGraph(cfg *Config) (*core.Graph, error) {
	if cfg.Synthetic != "" {
		return syntheticGraph(cfg.Synthetic, cfg.Directed, cfg.Weighted, cfg.Seed)
	}
	format, err := graphio.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return graphio.ReadFile(cfg.GraphPath, format,
		graphio.WithDirected(cfg.Directed), graphio.WithWeighted(cfg.Weighted))
}

// syntheticGraph builds one of the builder topologies from "kind:args":
//
//	cycle:N  path:N  star:N  wheel:N  complete:N
//	grid:RxC  bipartite:AxB  random:N:P
func syntheticGraph(desc string, directed, weighted bool, seed int64) (*core.Graph, error) {
	kind, args, _ := strings.Cut(strings.ToLower(desc), ":")

	var (
		con builder.Constructor
		err error
	)
	switch kind {
	case "cycle", "path", "star", "wheel", "complete":
		var n int
		if n, err = strconv.Atoi(args); err == nil {
			con = sized[kind](n)
		}
	case "grid", "bipartite":
		var a, b int
		if a, b, err = pair(args, "x"); err != nil {
			break
		}
		if kind == "grid" {
			con = builder.Grid(a, b)
		} else {
			con = builder.CompleteBipartite(a, b)
		}
	case "random":
		ns, ps, _ := strings.Cut(args, ":")
		var (
			n int
			p float64
		)
		if n, err = strconv.Atoi(ns); err != nil {
			break
		}
		if p, err = strconv.ParseFloat(ps, 64); err != nil {
			break
		}
		con = builder.RandomSparse(n, p)
	default:
		err = fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errSynthetic, desc, err)
	}

	if seed == 0 {
		seed = 1
	}
	gopts := []core.GraphOption{core.WithDirected(directed)}
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if weighted {
		gopts = append(gopts, core.WithWeighted())
		bopts = append(bopts, builder.WithUniformWeight(minSyntheticWeight, maxSyntheticWeight))
	}
	return builder.BuildGraph(gopts, bopts, con)
}

func pair(s, sep string) (int, int, error) {
	as, bs, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("want A%sB, got %q", sep, s)
	}
	a, err := strconv.Atoi(as)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(bs)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
