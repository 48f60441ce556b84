package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ForwardsKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.With("kind", "products").Warn(ctx, "load failed", "error", "boom")
	log.Debug(ctx, "superseded", "seq", 2)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "load failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "products", fields["kind"])
	assert.Equal(t, "boom", fields["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.EqualValues(t, 2, entries[1].ContextMap()["seq"])
}

func TestNewFileLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synckeeper.log")

	log := NewFileLogger(path, "info")
	log.Debug(context.Background(), "not written")
	log.Info(context.Background(), "session restored", "user", "emilys")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, `"msg":"session restored"`), out)
	assert.True(t, strings.Contains(out, `"user":"emilys"`), out)
	assert.False(t, strings.Contains(out, "not written"), out)
}
