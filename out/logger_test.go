package out

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	bw := NewBufferWriter()
	logger := NewWriterLogger(bw, false)
	logger.Debugf("hidden %d", 1)
	logger.Infof("listening on %s", ":8234")
	logger.Errorf("boom")

	lines := strings.Split(strings.TrimSpace(bw.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "logger_test.go")
	assert.Contains(t, lines[0], "[info] listening on :8234")
	assert.Contains(t, lines[1], "[error] boom")

	logger.Verbose = true
	logger.Debugf("shown %d", 2)
	assert.Contains(t, bw.String(), "[debug] shown 2")
}
