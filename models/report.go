package models

import (
	"fmt"
	"time"

	"github.com/elastic/hey-calc/numbers"
	"github.com/elastic/hey-calc/strcoll"
)

// Report summarizes a server run, it is produced once all connections are drained.
type Report struct {
	Addr  string
	Start time.Time
	End   time.Time

	// Connections admitted and fully served
	Served int
	// Connections closed right away because MaxWorkers were busy
	Refused int
	// Served connections that ended with an I/O error (their lines still count)
	ConnectionErrors int

	Lines     uint64
	Malformed uint64
	// Sum of the results of every line of every served connection
	Total float64
}

func (r Report) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

// MalformedPerct returns the percentage of malformed lines, or nil if no line was received.
func (r Report) MalformedPerct() *float64 {
	return numbers.Perct(r.Malformed, r.Lines-r.Malformed)
}

// Summary returns the one line record printed at shutdown.
func (r Report) Summary() string {
	return fmt.Sprintf("total %d clients total result %.3f", r.Served, r.Total)
}

func (r Report) String() string {
	metrics := strcoll.NewTuples()
	metrics.Add("address", r.Addr)
	metrics.Add("elapsed", r.Elapsed().Round(time.Millisecond))
	metrics.Add("clients served", r.Served)
	metrics.Add("clients refused", r.Refused)
	if r.ConnectionErrors > 0 {
		metrics.Add(" - with errors", r.ConnectionErrors)
	}
	metrics.Add("lines evaluated", r.Lines)
	metrics.Add(" - malformed %", r.MalformedPerct())
	metrics.Add("total result", r.Total)
	return metrics.Format(20)
}
