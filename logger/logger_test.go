package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic before Initialize.
	Logger.Debugw("noop", FieldFile, "x")
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(zapcore.WarnLevel))
	require.NotNil(t, Logger)
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(5))
}
