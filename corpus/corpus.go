package corpus

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Separator joins vertex IDs on a corpus line.
const Separator = " "

var (
	// ErrNilSink is returned by Write when the sink is nil.
	ErrNilSink = errors.New("corpus: nil sink")

	// ErrClosed is returned when writing to a closed sink.
	ErrClosed = errors.New("corpus: sink closed")
)

// Sink consumes walks.
type Sink interface {
	// WriteWalk stores one walk. The slice is not retained.
	WriteWalk(walk []string) error
	// Flush pushes buffered walks to the destination.
	Flush() error
}

// Line renders a walk as one corpus line without the trailing newline.
func Line(walk []string) string { return strings.Join(walk, Separator) }

// Write stores every walk of seq in sink and flushes it. It stops at the first
// sequence or sink error and returns the number of walks written before it.
func Write(seq iter.Seq2[[]string, error], sink Sink) (int, error) {
	return WriteContext(context.Background(), seq, sink)
}

// WriteContext is Write bounded by ctx: it checks ctx before every walk and
// returns ctx.Err() without flushing once ctx is done.
func WriteContext(ctx context.Context, seq iter.Seq2[[]string, error], sink Sink) (int, error) {
	if sink == nil {
		return 0, ErrNilSink
	}
	n := 0
	for walk, err := range seq {
		if err != nil {
			return n, err
		}
		if err = ctx.Err(); err != nil {
			return n, err
		}
		if err = sink.WriteWalk(walk); err != nil {
			return n, fmt.Errorf("corpus: walk %d: %w", n, err)
		}
		n++
	}
	if err := sink.Flush(); err != nil {
		return n, err
	}
	return n, nil
}
