package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("successful creation", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("missing parent directory is created", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "nested", "log", "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "health-endpoint.log")
	rotatedLogFilePath := filepath.Join(tempDir, "health-endpoint.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	contentOld, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(contentNew))
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name            string
		logLevel        string
		expectedLevel   zapcore.Level
		disabledBelowIt bool
	}{
		{"debug level", "debug", zap.DebugLevel, false},
		{"info level", "info", zap.InfoLevel, true},
		{"warn level", "warn", zap.WarnLevel, true},
		{"error level", "error", zap.ErrorLevel, true},
		{"invalid level", "invalid", zap.InfoLevel, true},
		{"empty level", "", zap.InfoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, nil)
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
			if tc.disabledBelowIt {
				assert.False(t, logger.Core().Enabled(tc.expectedLevel-1))
			}
		})
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	logFilePath := filepath.Join(t.TempDir(), "app.log")
	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	logger := NewLogger("info", ws)
	logger.Info("disk usage sampled", zap.Int("volumes", 2))
	require.NoError(t, ws.Sync())

	content, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"disk usage sampled"`)
	assert.Contains(t, string(content), `"level":"INFO"`)
	assert.Contains(t, string(content), `"volumes":2`)
}
