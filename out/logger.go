package out

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
)

// Logger prefixes messages with their level.
// Debug messages are dropped unless the logger is verbose.
type Logger struct {
	*log.Logger
	Verbose bool
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Verbose {
		l.Output(2, fmt.Sprintf("[debug] "+format, args...))
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf("[info] "+format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf("[error] "+format, args...))
}

func NewLogger(logger *log.Logger, verbose bool) *Logger {
	return &Logger{
		Logger:  logger,
		Verbose: verbose,
	}
}

// NewStderrLogger returns a logger writing to stderr with the usual hey-calc flags.
func NewStderrLogger(verbose bool) *Logger {
	return NewWriterLogger(os.Stderr, verbose)
}

func NewWriterLogger(w io.Writer, verbose bool) *Logger {
	return NewLogger(log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile), verbose)
}

// Discard returns a logger that writes nowhere.
func Discard() *Logger {
	return NewWriterLogger(ioutil.Discard, false)
}
