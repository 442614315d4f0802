package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.Info("chat", "query answered", map[string]interface{}{"confidence": "high"})
	l.Error("store", "insert failed", map[string]interface{}{"error": errors.New("boom")})
	l.Debug("scope", "resolved", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "chat", first["module"])
	assert.Equal(t, map[string]interface{}{"confidence": "high"}, first["details"])

	assert.Contains(t, entries[1].ContextMap(), "error_ref")
	assert.Equal(t, map[string]interface{}{}, entries[2].ContextMap()["details"])
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewZapLogger("", false, "loud")
	assert.False(t, l.logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() { l.Warn("x", "y", nil) })
}
