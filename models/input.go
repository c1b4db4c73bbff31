package models

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidInput = errors.New("invalid input")

// Input holds all the parameters given to a hey-calc server run.
// Zero values of IdleTimeout and RunTimeout are meaningful and disable them.
type Input struct {
	// Address the server listens on, eg. ":8234"
	Addr string `json:"addr" yaml:"addr"`
	// Maximum number of connections served at the same time, connections beyond it are refused
	MaxWorkers int `json:"max_workers" yaml:"max_workers"`
	// Time after which the server stops accepting connections, waits for the ongoing ones and exits
	RunTimeout time.Duration `json:"run_timeout" yaml:"run_timeout"`
	// Size in bytes of the per-connection region that incoming lines are assembled in,
	// a line longer than this ends its connection
	ReadBufferSize int `json:"read_buffer_size" yaml:"read_buffer_size"`
	// Size in bytes of the per-connection region that responses are batched in
	WriteBufferSize int `json:"write_buffer_size" yaml:"write_buffer_size"`
	// Time a connection may stay silent before it is closed
	IdleTimeout time.Duration `json:"idle_timeout" yaml:"idle_timeout"`
	// Enables debug logging
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultInput returns the parameters used when none are given.
func DefaultInput() Input {
	return Input{
		Addr:            ":8234",
		MaxWorkers:      2,
		RunTimeout:      5 * time.Second,
		ReadBufferSize:  14000,
		WriteBufferSize: 1000,
	}
}

// LoadInput reads a YAML file over the given input, fields missing in the file keep their value.
func LoadInput(path string, input Input) (Input, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return input, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(bs, &input); err != nil {
		return input, errors.Wrapf(err, "parsing config %s", path)
	}
	return input, nil
}

// Validate returns an error wrapping ErrInvalidInput if the input can't be used to run a server.
func (in Input) Validate() error {
	switch {
	case in.Addr == "":
		return errors.Wrap(ErrInvalidInput, "address not specified")
	case in.MaxWorkers <= 0:
		return errors.Wrapf(ErrInvalidInput, "max workers must be positive, got %d", in.MaxWorkers)
	case in.RunTimeout < 0:
		return errors.Wrapf(ErrInvalidInput, "run timeout can't be negative, got %s", in.RunTimeout)
	case in.IdleTimeout < 0:
		return errors.Wrapf(ErrInvalidInput, "idle timeout can't be negative, got %s", in.IdleTimeout)
	case in.ReadBufferSize <= 0 || in.WriteBufferSize <= 0:
		return errors.Wrapf(ErrInvalidInput, "buffer sizes must be positive, got %d/%d",
			in.ReadBufferSize, in.WriteBufferSize)
	case in.WriteBufferSize > in.ReadBufferSize:
		return errors.Wrapf(ErrInvalidInput, "write buffer (%d) can't be larger than read buffer (%d)",
			in.WriteBufferSize, in.ReadBufferSize)
	}
	return nil
}
