//go:build !windows
// +build !windows

package worker

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// interruptedReader fails once with EINTR before each chunk.
type interruptedReader struct {
	chunkReader
	interrupted bool
}

func (ir *interruptedReader) Read(p []byte) (int, error) {
	if !ir.interrupted && len(ir.chunks) > 0 {
		ir.interrupted = true
		return 0, &os.SyscallError{Syscall: "read", Err: unix.EINTR}
	}
	ir.interrupted = false
	return ir.chunkReader.Read(p)
}

// interruptedWriter fails once with EINTR before every write.
type interruptedWriter struct {
	bytes.Buffer
	interrupted bool
}

func (iw *interruptedWriter) Write(p []byte) (int, error) {
	if !iw.interrupted {
		iw.interrupted = true
		return 0, unix.EINTR
	}
	iw.interrupted = false
	return iw.Buffer.Write(p)
}

func TestInterruptedReadIsRetried(t *testing.T) {
	lines, err := collect(NewLineReader(&interruptedReader{chunkReader: chunkReader{chunks: []string{"1 +", " 2\n"}}}, 16))
	assert.NoError(t, err)
	assert.Equal(t, []string{"1 + 2"}, lines)
}

func TestInterruptedWriteIsRetried(t *testing.T) {
	var w interruptedWriter
	b := NewBatcher(&w, 64)
	assert.NoError(t, b.Add([]byte("2 + 3"), 5))
	assert.NoError(t, b.Flush())
	assert.Equal(t, "2 + 3 5.000\n", w.String())
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(unix.EINTR))
	assert.True(t, isTransient(&os.SyscallError{Syscall: "read", Err: unix.EAGAIN}))
	assert.False(t, isTransient(errBoom))
	assert.False(t, isTransient(unix.ECONNRESET))
}
