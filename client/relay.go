package client

import (
	"context"
	"io"
	"net"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/elastic/hey-calc/out"
)

// Relay connects to a hey-calc server, sends everything read from in, and then copies
// the server responses to w until the server closes the connection.
// Responses are only available after in is exhausted, since the server answers in batches.
func Relay(ctx context.Context, addr string, in io.Reader, w io.Writer, logger *out.Logger) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "connecting to %s", addr)
	}
	defer conn.Close()

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-finished:
		}
	}()

	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		logger.Infof("connected to %s, type one expression per line and end with Ctrl-D", addr)
	}

	sent, err := io.Copy(conn, in)
	if err != nil {
		return errors.Wrap(err, "sending")
	}
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			return errors.Wrap(err, "closing write side")
		}
	}

	received, err := io.Copy(w, conn)
	if err != nil {
		return errors.Wrap(err, "receiving")
	}
	logger.Debugf("%d bytes sent, %d bytes received", sent, received)
	return nil
}
