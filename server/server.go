package server

import (
	"context"
	"net"
	"time"

	"github.com/heptio/workgroup"
	"github.com/pkg/errors"

	"github.com/elastic/hey-calc/conv"
	"github.com/elastic/hey-calc/models"
	"github.com/elastic/hey-calc/numbers"
	"github.com/elastic/hey-calc/out"
	"github.com/elastic/hey-calc/worker"
)

// Server dispatches connections accepted on a listener to workers.
type Server struct {
	input    models.Input
	listener net.Listener
	logger   *out.Logger
}

// Listen binds the address given in the input.
func Listen(ctx context.Context, input models.Input) (net.Listener, error) {
	lc := net.ListenConfig{Control: control}
	l, err := lc.Listen(ctx, "tcp", input.Addr)
	return l, errors.Wrapf(err, "listening on %s", input.Addr)
}

// New returns a server for the given listener, which will be closed when Serve returns.
func New(listener net.Listener, input models.Input, logger *out.Logger) *Server {
	return &Server{
		input:    input,
		listener: listener,
		logger:   logger,
	}
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until the run timeout expires, ctx is cancelled or the listener fails;
// then it waits for ongoing connections and returns a report with their aggregated results.
//
// The returned error is not nil only if the listener failed, the report is meaningful anyway.
func (s *Server) Serve(ctx context.Context) (models.Report, error) {
	s.logger.Infof("listening on %s, up to %d clients, run timeout %s, buffers %s/%s",
		s.Addr(), s.input.MaxWorkers, s.input.RunTimeout,
		conv.ByteCountDecimal(int64(s.input.ReadBufferSize)), conv.ByteCountDecimal(int64(s.input.WriteBufferSize)))

	report := models.Report{Addr: s.Addr().String(), Start: time.Now()}
	conns := make(chan net.Conn)

	var g workgroup.Group
	g.Add(s.accept(conns))
	g.Add(s.supervise(conns, &report))
	if s.input.RunTimeout > 0 {
		g.Add(timeout(s.input.RunTimeout))
	}
	g.Add(cancelled(ctx))

	err := g.Run()
	report.End = time.Now()
	return report, err
}

// accept feeds accepted connections to the supervisor.
// The listener is closed when the group stops, unblocking Accept.
func (s *Server) accept(conns chan<- net.Conn) func(<-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		go func() {
			<-stop
			s.listener.Close()
		}()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-stop:
					return nil
				default:
				}
				if ne, ok := err.(net.Error); ok && ne.Temporary() {
					s.logger.Errorf("accept: %v", err)
					time.Sleep(5 * time.Millisecond)
					continue
				}
				return errors.Wrap(err, "accepting connections")
			}
			select {
			case conns <- conn:
			case <-stop:
				conn.Close()
				return nil
			}
		}
	}
}

// supervise admits connections, reclaims finished workers, and drains them all once the group stops.
// It is the only goroutine touching the server state.
func (s *Server) supervise(conns <-chan net.Conn, report *models.Report) func(<-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		done := make(chan worker.Result, s.input.MaxWorkers)
		st := state{report: report, done: done}
		cfg := worker.Config{
			ReadBufferSize:  s.input.ReadBufferSize,
			WriteBufferSize: s.input.WriteBufferSize,
			IdleTimeout:     s.input.IdleTimeout,
		}
		for {
			select {
			case conn := <-conns:
				st.poll()
				if stopped(stop) || st.inFlight >= s.input.MaxWorkers {
					s.logger.Debugf("refusing %s, %d clients in flight", conn.RemoteAddr(), st.inFlight)
					conn.Close()
					report.Refused++
					continue
				}
				st.inFlight++
				report.Served++
				go func(conn net.Conn) {
					done <- worker.Work(conn, cfg, s.logger)
				}(conn)

			case result := <-done:
				st.reclaim(result)

			case <-stop:
				if st.inFlight > 0 {
					s.logger.Infof("not accepting connections anymore, waiting for %d clients", st.inFlight)
				}
				for st.inFlight > 0 {
					st.reclaim(<-done)
				}
				s.logger.Infof("%d clients served, total result %.3f", report.Served, report.Total)
				return nil
			}
		}
	}
}

// state is owned by the supervisor goroutine.
type state struct {
	report   *models.Report
	inFlight int
	// workers send their result here, it has room for all of them so that they never block
	done chan worker.Result
}

func (st *state) reclaim(r worker.Result) {
	st.inFlight--
	st.report.Lines += r.Lines
	st.report.Malformed += r.Malformed
	st.report.Total = numbers.Sum(st.report.Total, r.Total)
	if r.Err != nil {
		st.report.ConnectionErrors++
	}
}

// poll reclaims the workers that are already finished, without waiting for the others.
func (st *state) poll() {
	for {
		select {
		case r := <-st.done:
			st.reclaim(r)
		default:
			return
		}
	}
}

func stopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

func timeout(d time.Duration) func(<-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		select {
		case <-stop:
			return nil
		case <-time.After(d):
			return nil // time expired
		}
	}
}

func cancelled(ctx context.Context) func(<-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		select {
		case <-stop:
		case <-ctx.Done():
		}
		return nil
	}
}
