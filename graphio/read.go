package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvwalk/core"
)

const maxLine = 16 << 20

// ReadFile opens path and reads it in the given format.
func ReadFile(path string, format Format, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case FormatAdjList:
		return ReadAdjList(f, opts...)
	case FormatEdgeList:
		return ReadEdgeList(f, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ReadAdjList reads "node nbr1 nbr2 ..." lines.
func ReadAdjList(r io.Reader, opts ...Option) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := resolve(opts)
	g := newGraph(o)
	w := 0.0
	if o.Weighted {
		w = core.UnitWeight
	}

	err := scan(r, o.Comment, func(line int, fields []string) error {
		src := fields[0]
		if err := g.AddVertex(src); err != nil {
			return err
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, dst := range fields[1:] {
			if !seen.Add(dst) || g.HasEdge(src, dst) {
				continue
			}
			if err := g.AddEdge(src, dst, w); err != nil {
				return fmt.Errorf("%w: line %d: %q→%q: %w", ErrSyntax, line, src, dst, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// ReadEdgeList reads "u v [w]" lines. Extra fields are ignored when the
// graph is unweighted.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := resolve(opts)
	g := newGraph(o)

	err := scan(r, o.Comment, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%w: line %d: want \"u v [w]\", got %d field(s)", ErrSyntax, line, len(fields))
		}
		u, v := fields[0], fields[1]
		w := 0.0
		if o.Weighted {
			if len(fields) < 3 {
				return fmt.Errorf("%w: line %d: missing weight", ErrSyntax, line)
			}
			x, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || x <= 0 || math.IsInf(x, 0) {
				return fmt.Errorf("%w: line %d: weight %q must be a positive finite number", ErrSyntax, line, fields[2])
			}
			w = x
		}
		if g.HasEdge(u, v) {
			if err := g.RemoveEdge(u, v); err != nil {
				return err
			}
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%w: line %d: %q→%q: %w", ErrSyntax, line, u, v, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

func newGraph(o Options) *core.Graph {
	opts := []core.GraphOption{core.WithDirected(o.Directed), core.WithLoops()}
	if o.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	return core.NewGraph(opts...)
}

// scan calls fn with the 1-based line number and the fields of every
// non-empty, non-comment line.
func scan(r io.Reader, comment string, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if comment != "" {
			if i := strings.Index(text, comment); i >= 0 {
				text = text[:i]
			}
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: line %d exceeds %d bytes", ErrSyntax, line+1, maxLine)
		}
		return err
	}
	return nil
}
