package corpus

import (
	"bufio"
	"io"
)

// TextWriter writes one walk per line through a bufio.Writer.
// It is not safe for concurrent use.
type TextWriter struct {
	dst    io.Writer
	bw     *bufio.Writer
	walks  int
	closed bool
}

// NewTextWriter wraps w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{dst: w, bw: bufio.NewWriterSize(w, 64*1024)}
}

// WriteWalk appends Line(walk) and a newline.
func (t *TextWriter) WriteWalk(walk []string) error {
	if t.closed {
		return ErrClosed
	}
	for i, id := range walk {
		if i > 0 {
			if _, err := t.bw.WriteString(Separator); err != nil {
				return err
			}
		}
		if _, err := t.bw.WriteString(id); err != nil {
			return err
		}
	}
	if err := t.bw.WriteByte('\n'); err != nil {
		return err
	}
	t.walks++
	return nil
}

// Walks returns the number of walks written so far.
func (t *TextWriter) Walks() int { return t.walks }

// Flush writes buffered lines to the underlying writer.
func (t *TextWriter) Flush() error { return t.bw.Flush() }

// Close flushes and, if the underlying writer is an io.Closer, closes it.
// Close is idempotent.
func (t *TextWriter) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	err := t.bw.Flush()
	if c, ok := t.dst.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
