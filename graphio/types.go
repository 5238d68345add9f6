package graphio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilReader is returned when a reader argument is nil.
	ErrNilReader = errors.New("graphio: nil reader")

	// ErrSyntax reports a malformed input line.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// DefaultComment is the comment prefix used unless WithComment overrides it.
const DefaultComment = "#"

// Format names an input format.
type Format int

const (
	// FormatAdjList is "node nbr1 nbr2 ..." per line.
	FormatAdjList Format = iota
	// FormatEdgeList is "u v [w]" per line.
	FormatEdgeList
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatAdjList:
		return "adjlist"
	case FormatEdgeList:
		return "edgelist"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "adjlist" or "edgelist" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "adjlist", "adj":
		return FormatAdjList, nil
	case "edgelist", "edges":
		return FormatEdgeList, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options control how input is turned into a graph.
type Options struct {
	// Directed builds a directed graph; lines then describe out-edges only.
	Directed bool

	// Weighted builds a weighted graph. Edge-list lines must then carry a
	// positive third field. Adjacency lists have no weights, so every edge
	// gets weight 1.0.
	Weighted bool

	// Comment starts a comment running to the end of the line.
	Comment string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an undirected, unweighted configuration with "#" comments.
func DefaultOptions() Options {
	return Options{Comment: DefaultComment}
}

// WithDirected sets directedness.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeighted sets whether edge weights are read.
func WithWeighted(weighted bool) Option {
	return func(o *Options) { o.Weighted = weighted }
}

// WithComment overrides the comment prefix. An empty prefix disables comments.
func WithComment(prefix string) Option {
	return func(o *Options) { o.Comment = prefix }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
