package worker

import (
	"fmt"
	"time"
)

// Result is what a worker hands back once its connection is closed.
type Result struct {
	Remote    string
	Lines     uint64
	Malformed uint64
	// Sum of the results of every line, malformed lines count as 0
	Total float64
	Start time.Time
	End   time.Time
	// I/O error that ended the connection, nil if the peer closed it
	Err error
}

func (r Result) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Result) String() string {
	s := fmt.Sprintf("%s: %d lines (%d malformed) in %s, total %.3f",
		r.Remote, r.Lines, r.Malformed, r.Elapsed().Round(time.Microsecond), r.Total)
	if r.Err != nil {
		s += ", " + r.Err.Error()
	}
	return s
}
