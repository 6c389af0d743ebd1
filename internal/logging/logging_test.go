package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.expected))
			if tt.expected > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.expected-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := New("chatty")

	assert.Nil(t, logger)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInstall_ReplacesGlobals(t *testing.T) {
	logger, restore, err := Install("debug")
	require.NoError(t, err)
	defer restore()

	assert.Same(t, logger, zap.L())
	assert.True(t, zap.S().Desugar().Core().Enabled(zapcore.DebugLevel))
}
