package util

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	defer InitLoggerTo(io.Discard, "info", false)

	var buf bytes.Buffer
	err := InitLoggerTo(&buf, "info", false)
	assert.NoError(t, err)
	assert.True(t, LogInfo)
	assert.False(t, LogDebug)

	Debugf("hidden %d", 1)
	assert.Equal(t, 0, buf.Len())

	Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	err = InitLoggerTo(&buf, "debug", false)
	assert.NoError(t, err)
	assert.True(t, LogDebug)

	Debugf("merged %d", 3)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "merged 3")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestLoggerFields(t *testing.T) {
	defer InitLoggerTo(io.Discard, "info", false)

	var buf bytes.Buffer
	assert.NoError(t, InitLoggerTo(&buf, "warn", true))
	assert.False(t, LogInfo)

	Log().WithField("size", 12).Warn("big")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "big")
	assert.Contains(t, out, "=12")
	assert.Contains(t, out, "\033[33m")
}

func TestLoggerBadLevel(t *testing.T) {
	err := InitLoggerTo(io.Discard, "loud", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
