package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"

	"github.com/elastic/hey-calc/client"
	"github.com/elastic/hey-calc/models"
	"github.com/elastic/hey-calc/out"
	"github.com/elastic/hey-calc/server"
	"github.com/elastic/hey-calc/strcoll"
)

const usage = `Usage:
  hey-calc [flags] 0 [<port>]          server mode
  hey-calc [flags] 1 <host> <port>     client mode, relays stdin to the server and its responses to stdout

Flags:
`

type mode int

const (
	serverMode mode = iota
	relayMode
)

// parseInput parses the command line flags, returning the server parameters and the positional arguments.
// Parameters are taken from the defaults, then the config file if any, then the flags explicitly set.
func parseInput(args []string) (models.Input, []string, error) {
	var config string
	flagged := models.DefaultInput()

	fs := flag.NewFlagSet("hey-calc", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "YAML file with server parameters")
	fs.StringVar(&flagged.Addr, "addr", flagged.Addr, "address to listen on, a port argument takes precedence")
	fs.IntVar(&flagged.MaxWorkers, "workers", flagged.MaxWorkers, "maximum number of clients served at the same time")
	fs.DurationVar(&flagged.RunTimeout, "run", flagged.RunTimeout, "stop accepting clients after this duration, 0 runs until interrupted")
	fs.IntVar(&flagged.ReadBufferSize, "read-buffer", flagged.ReadBufferSize, "per client buffer for incoming lines, in bytes")
	fs.IntVar(&flagged.WriteBufferSize, "write-buffer", flagged.WriteBufferSize, "per client buffer for responses, in bytes")
	fs.DurationVar(&flagged.IdleTimeout, "idle-timeout", flagged.IdleTimeout, "close clients silent for this duration, 0 disables it")
	fs.BoolVar(&flagged.Verbose, "v", flagged.Verbose, "debug logging")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return flagged, nil, err
	}

	input := models.DefaultInput()
	if config != "" {
		var err error
		if input, err = models.LoadInput(config, input); err != nil {
			return input, nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			input.Addr = flagged.Addr
		case "workers":
			input.MaxWorkers = flagged.MaxWorkers
		case "run":
			input.RunTimeout = flagged.RunTimeout
		case "read-buffer":
			input.ReadBufferSize = flagged.ReadBufferSize
		case "write-buffer":
			input.WriteBufferSize = flagged.WriteBufferSize
		case "idle-timeout":
			input.IdleTimeout = flagged.IdleTimeout
		case "v":
			input.Verbose = flagged.Verbose
		}
	})
	return input, fs.Args(), nil
}

// parseMode resolves the positional arguments `0 [<port>]` or `1 <host> <port>`.
// The returned address is empty if the server should use the one in its parameters.
func parseMode(args []string) (mode, string, error) {
	switch strcoll.Get(0, args) {
	case "0", "serve", "server":
		port := strcoll.Get(1, args)
		if port == "" {
			return serverMode, "", nil
		}
		if err := checkPort(port); err != nil {
			return serverMode, "", err
		}
		return serverMode, net.JoinHostPort("", port), nil

	case "1", "relay", "client":
		host, port := strcoll.Get(1, args), strcoll.Get(2, args)
		if host == "" || port == "" {
			return relayMode, "", errors.New("client mode requires a host and a port")
		}
		if err := checkPort(port); err != nil {
			return relayMode, "", err
		}
		return relayMode, net.JoinHostPort(host, port), nil
	}
	return serverMode, "", errors.Errorf("unknown mode %q", strcoll.Get(0, args))
}

func checkPort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return errors.Errorf("invalid port %q", port)
	}
	return nil
}

func serve(ctx context.Context, input models.Input, logger *out.Logger) error {
	if err := input.Validate(); err != nil {
		return err
	}
	l, err := server.Listen(ctx, input)
	if err != nil {
		return err
	}
	report, err := server.New(l, input, logger).Serve(ctx)
	logger.Infof("done\n%s", report)
	fmt.Println(report.Summary())
	return err
}

func main() {
	input, args, err := parseInput(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	m, addr, err := parseMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n%s", err, usage)
		os.Exit(2)
	}

	logger := out.NewStderrLogger(input.Verbose)

	// stop on signal
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		logger.Errorf("caught %s, stopping", sig)
		cancel()
	}()

	switch m {
	case relayMode:
		err = client.Relay(ctx, addr, os.Stdin, os.Stdout, logger)
	default:
		if addr != "" {
			input.Addr = addr
		}
		err = serve(ctx, input, logger)
	}
	cancel()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
