package worker

import (
	"io"
	"net"
	"time"

	"github.com/elastic/hey-calc/expr"
	"github.com/elastic/hey-calc/numbers"
	"github.com/elastic/hey-calc/out"
)

// Config sizes the buffers owned by each connection.
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	// zero disables it
	IdleTimeout time.Duration
}

type deadliner interface {
	SetReadDeadline(time.Time) error
}

type addresser interface {
	RemoteAddr() net.Addr
}

// Work evaluates every line read from rwc and writes back the results, until the peer closes its write side
// or an I/O error occurs. rwc is always closed when Work returns.
//
// Lines evaluated before an error still count towards the returned total.
func Work(rwc io.ReadWriteCloser, cfg Config, logger *out.Logger) Result {
	defer rwc.Close()
	result := Result{Remote: remote(rwc), Start: time.Now()}
	logger.Debugf("%s connected", result.Remote)

	lines := NewLineReader(idleReader{rwc, cfg.IdleTimeout}, cfg.ReadBufferSize)
	batch := NewBatcher(rwc, cfg.WriteBufferSize)

	err := lines.Each(func(line []byte) error {
		e := expr.Parse(string(line))
		v := expr.Evaluate(e)
		result.Lines++
		if e.Malformed {
			result.Malformed++
		}
		result.Total = numbers.Sum(result.Total, v)
		return batch.Add(line, v)
	})
	if ferr := batch.Flush(); err == nil {
		err = ferr
	}
	result.Err = err
	result.End = time.Now()
	if err != nil {
		logger.Errorf("%s", result)
	} else {
		logger.Debugf("%s", result)
	}
	return result
}

// idleReader arms a read deadline before each read, when the underlying reader supports it.
type idleReader struct {
	r       io.Reader
	timeout time.Duration
}

func (ir idleReader) Read(p []byte) (int, error) {
	if d, ok := ir.r.(deadliner); ok && ir.timeout > 0 {
		d.SetReadDeadline(time.Now().Add(ir.timeout))
	}
	return ir.r.Read(p)
}

func remote(rwc io.ReadWriteCloser) string {
	if a, ok := rwc.(addresser); ok && a.RemoteAddr() != nil {
		return a.RemoteAddr().String()
	}
	return "unknown"
}
