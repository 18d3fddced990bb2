package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/saes-client/internal/config"
	"github.com/oshokin/saes-client/internal/logger"
	http_transport "github.com/oshokin/saes-client/internal/transport/http"
)

// TestNewHTTPClient tests that the shared client is reused only when it matches the configuration.
//
//nolint:paralleltest // Environment variables are process-wide.
func TestNewHTTPClient(t *testing.T) {
	t.Setenv(http_transport.BaseURLEnvVar, "")

	cfg := &config.Config{LogLevel: "info"}
	require.NoError(t, config.ValidateConfig(cfg))

	if http_transport.Shared().BaseURL() == http_transport.DefaultBaseURL {
		assert.Same(t, http_transport.Shared(), NewHTTPClient(cfg))
	}

	custom := &config.Config{APIBaseURL: "http://custom.test:9000", LogLevel: "info"}
	require.NoError(t, config.ValidateConfig(custom))

	client := NewHTTPClient(custom)
	assert.NotSame(t, http_transport.Shared(), client)
	assert.Equal(t, "http://custom.test:9000", client.BaseURL())
	assert.Equal(t, http_transport.DefaultTimeout, client.Timeout())
}

// TestSetupLogging tests the SetupLogging function.
//
//nolint:paralleltest // Replaces the global logger.
func TestSetupLogging(t *testing.T) {
	previousLogger := logger.Logger()
	previousLevel := logger.Level()

	t.Cleanup(func() {
		logger.SetLogger(previousLogger)
		logger.SetLevel(previousLevel)
	})

	require.NoError(t, SetupLogging(&config.Config{ParsedLogLevel: zapcore.WarnLevel}))
	assert.Equal(t, zapcore.WarnLevel, logger.Level())
	assert.Same(t, previousLogger, logger.Logger())

	logFile := filepath.Join(t.TempDir(), "nested", "logs", "saes.log")

	require.NoError(t, SetupLogging(&config.Config{ParsedLogLevel: zapcore.InfoLevel, LogFile: logFile}))
	assert.NotSame(t, previousLogger, logger.Logger())
	assert.DirExists(t, filepath.Dir(logFile))
}
