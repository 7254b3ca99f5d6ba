package memolog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"github.com/rzane/memox/memoize"
	"github.com/rzane/memox/memolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapObserverLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := memolog.New(zap.New(core))

	started := time.Now()
	span := timespan.BetweenTimes(started, started.Add(5*time.Millisecond))
	boom := errors.New("boom")

	obs.On(memoize.Hit{Op: "ID"})
	obs.On(memoize.Computed{Op: "ID", Span: span})
	obs.On(memoize.Failed{Op: "ID", Span: span, Err: boom})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "memoized value served", entries[0].Message)
	assert.Equal(t, "ID", entries[0].ContextMap()["op"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "memoized value computed", entries[1].Message)
	assert.Equal(t, "ID", entries[1].ContextMap()["op"])
	assert.Equal(t, 5*time.Millisecond, entries[1].ContextMap()["took"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "memoized computation failed", entries[2].Message)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}
