package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("search finished", "expanded", 7)

	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), "expanded=7")
	assert.Contains(t, buf.String(), "elapsed=")
}

func TestLoggerFromContext(t *testing.T) {
	l := log.New(&bytes.Buffer{})
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}

func TestSetLogLevel(t *testing.T) {
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), "shown")
}
