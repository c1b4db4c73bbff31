package out

import (
	"bytes"
	"sync"
)

// BufferWriter is an in-memory writer safe for concurrent use, eg. by a logger shared across goroutines.
type BufferWriter struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

func (bw *BufferWriter) Write(p []byte) (nn int, err error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.b.Write(p)
}

func (bw *BufferWriter) String() string {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.b.String()
}
