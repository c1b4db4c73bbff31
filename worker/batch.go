package worker

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Batcher accumulates response records in a fixed size buffer and writes them out when it would overflow.
// Flush must be called once no more records are coming.
type Batcher struct {
	w   io.Writer
	buf []byte
	// first write error, all subsequent calls fail with it
	err error
}

func NewBatcher(w io.Writer, size int) *Batcher {
	return &Batcher{w: w, buf: make([]byte, 0, size)}
}

// Add queues the record `<line> <result>\n`, with the result formatted with 3 decimals.
// A record that doesn't fit in an empty buffer is written right away.
func (b *Batcher) Add(line []byte, result float64) error {
	if b.err != nil {
		return b.err
	}
	var num [32]byte
	formatted := strconv.AppendFloat(num[:0], result, 'f', 3, 64)
	size := len(line) + 1 + len(formatted) + 1

	if len(b.buf)+size > cap(b.buf) {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	if size > cap(b.buf) {
		record := appendRecord(make([]byte, 0, size), line, formatted)
		return b.write(record)
	}
	b.buf = appendRecord(b.buf, line, formatted)
	return nil
}

// Buffered returns the number of bytes waiting to be flushed.
func (b *Batcher) Buffered() int {
	return len(b.buf)
}

// Flush writes all the buffered records.
func (b *Batcher) Flush() error {
	if b.err != nil {
		return b.err
	}
	err := b.write(b.buf)
	b.buf = b.buf[:0]
	return err
}

// write sends all of p, resuming after partial writes.
func (b *Batcher) write(p []byte) error {
	for len(p) > 0 {
		n, err := b.w.Write(p)
		p = p[n:]
		switch {
		case err != nil && isTransient(err):
			continue
		case err != nil:
			b.err = errors.Wrap(err, "writing")
			return b.err
		case n == 0:
			b.err = errors.Wrap(io.ErrShortWrite, "writing")
			return b.err
		}
	}
	return nil
}

func appendRecord(dst, line, formatted []byte) []byte {
	dst = append(dst, line...)
	dst = append(dst, ' ')
	dst = append(dst, formatted...)
	return append(dst, '\n')
}
