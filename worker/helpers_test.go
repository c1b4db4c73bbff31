package worker

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// chunkReader returns one chunk per Read, then err (io.EOF if nil).
type chunkReader struct {
	chunks []string
	err    error
}

func (cr *chunkReader) Read(p []byte) (int, error) {
	if len(cr.chunks) == 0 {
		if cr.err == nil {
			return 0, io.EOF
		}
		return 0, cr.err
	}
	n := copy(p, cr.chunks[0])
	cr.chunks[0] = cr.chunks[0][n:]
	if cr.chunks[0] == "" {
		cr.chunks = cr.chunks[1:]
	}
	return n, nil
}

// shortWriter accepts at most max bytes per call.
type shortWriter struct {
	bytes.Buffer
	max, calls int
}

func (sw *shortWriter) Write(p []byte) (int, error) {
	sw.calls++
	if len(p) > sw.max {
		p = p[:sw.max]
	}
	return sw.Buffer.Write(p)
}

// failingWriter fails after accepting limit bytes.
type failingWriter struct {
	bytes.Buffer
	limit int
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.Len()+len(p) > fw.limit {
		n, _ := fw.Buffer.Write(p[:fw.limit-fw.Len()])
		return n, errBoom
	}
	return fw.Buffer.Write(p)
}

type fakeConn struct {
	io.Reader
	io.Writer
	closed bool
}

func (fc *fakeConn) Close() error {
	fc.closed = true
	return nil
}

func collect(lr *LineReader) ([]string, error) {
	lines := make([]string, 0)
	err := lr.Each(func(line []byte) error {
		lines = append(lines, string(line))
		return nil
	})
	return lines, err
}
