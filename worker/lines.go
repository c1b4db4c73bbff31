package worker

import (
	"io"

	"github.com/pkg/errors"
)

// ErrLineTooLong is returned when a line doesn't fit in the read buffer.
var ErrLineTooLong = errors.New("line too long")

// LineReader splits the bytes read from an io.Reader into lines, reassembling lines split across reads.
// It uses a single fixed size buffer, and never grows it.
type LineReader struct {
	r   io.Reader
	buf []byte
	// length of the unterminated fragment kept at the start of buf
	n int
}

func NewLineReader(r io.Reader, size int) *LineReader {
	return &LineReader{r: r, buf: make([]byte, size)}
}

// Each calls fn with every line read, without its line terminator, until the reader is exhausted.
// A final fragment not terminated by a newline is passed to fn as a complete line.
//
// The slice passed to fn is only valid until fn returns.
// Each returns nil at the end of the stream, the first error returned by fn, a read error,
// or ErrLineTooLong if the buffer fills up without a newline in sight.
func (lr *LineReader) Each(fn func(line []byte) error) error {
	for {
		if lr.n == len(lr.buf) {
			return ErrLineTooLong
		}
		n, err := lr.r.Read(lr.buf[lr.n:])
		if err != nil && err != io.EOF && !isTransient(err) {
			return errors.Wrap(err, "reading")
		}

		end := lr.n + n
		start := 0
		for i := 0; i < end; i++ {
			if lr.buf[i] == '\n' {
				if err := fn(trimCR(lr.buf[start:i])); err != nil {
					return err
				}
				start = i + 1
			}
		}
		// keep the fragment for the next read
		lr.n = copy(lr.buf, lr.buf[start:end])

		if err == io.EOF {
			if lr.n > 0 {
				line := lr.buf[:lr.n]
				lr.n = 0
				return fn(trimCR(line))
			}
			return nil
		}
		// transient errors just read again
	}
}

func trimCR(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}
