/*
Package `server` runs hey-calc in server mode. The server listens on a TCP port and evaluates, for every connection,
the expressions sent one per line (see the `worker` package).

Each connection is served in its own goroutine, up to a maximum number of connections at the same time.
Connections beyond that maximum are closed right away, they are never queued.

The server stops accepting connections after a configurable run timeout, or when its context is cancelled.
It then waits for every ongoing connection to be closed by its peer (or to time out, if an idle timeout is set),
and returns a report with the sum of all the results computed for all the connections.

All the bookkeeping happens in a single supervisor goroutine; workers hand their results back through a channel,
so there is no shared state to lock.

hey-calc doesn't try to protect itself from malicious users.
*/
package server
