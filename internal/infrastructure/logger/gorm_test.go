package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), logs
}

func TestGormLoggerTraceQuery(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM treatments", 3
	}, nil)

	entries := logs.FilterMessage("SQL Query").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "SELECT * FROM treatments", fields["sql"])
	assert.Equal(t, int64(3), fields["rows"])
}

func TestGormLoggerTraceError(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO categories", 0
	}, assert.AnError)

	entries := logs.FilterMessage("SQL Error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM combos WHERE id = $1", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLoggerRecordNotFoundLoggedWhenConfigured(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error, WithIgnoreRecordNotFoundError(false))

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM combos WHERE id = $1", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Equal(t, 1, logs.FilterMessage("SQL Error").Len())
}

func TestGormLoggerSlowQuery(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Millisecond))

	gl.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM item_orders", 100
	}, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "SLOW SQL")
}

func TestGormLoggerSilent(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, assert.AnError)
	gl.Info(context.Background(), "ignored")
	gl.Warn(context.Background(), "ignored")
	gl.Error(context.Background(), "ignored")

	assert.Zero(t, logs.Len())
}

func TestGormLoggerTraceCarriesRequestID(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-77")
	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	entries := logs.FilterMessage("SQL Query").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-77", entries[0].ContextMap()["request_id"])
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	verbose := gl.LogMode(gormlogger.Info)
	verbose.Info(context.Background(), "now visible")

	assert.Equal(t, 1, logs.Len())
	// the original logger keeps its level
	gl.Info(context.Background(), "still silent")
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapGormLogLevel(tt.in), tt.in)
	}
}
