package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	saes_client "github.com/oshokin/saes-client/internal/client/saes"
	"github.com/oshokin/saes-client/internal/config"
	"github.com/oshokin/saes-client/internal/constants"
	"github.com/oshokin/saes-client/internal/logger"
	saes_service "github.com/oshokin/saes-client/internal/service/saes"
	http_transport "github.com/oshokin/saes-client/internal/transport/http"
)

// SetupLogging applies the configured log level and, when a log file is configured,
// replaces the global logger with one that also writes to that file.
func SetupLogging(cfg *config.Config) error {
	logger.SetLevel(cfg.ParsedLogLevel)

	if cfg.LogFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logger.SetLogger(logger.NewWithFile(nil, cfg.LogFile))

	return nil
}

// NewHTTPClient returns the HTTP client described by cfg.
// The process-wide shared client is reused when cfg asks for exactly what it provides.
func NewHTTPClient(cfg *config.Config) *http_transport.Client {
	settings := cfg.HTTPSettings()
	shared := http_transport.SettingsFromEnv()

	if settings.BaseURL == shared.BaseURL && settings.MaxLogLength == shared.MaxLogLength {
		return http_transport.Shared()
	}

	return http_transport.New(settings)
}

// NewRunnerFromConfig builds a Runner that talks to the backend described by cfg
// and prints results to stdout.
func NewRunnerFromConfig(cfg *config.Config) *Runner {
	client := saes_client.NewClient(NewHTTPClient(cfg))

	// The spinner is shown only up to info level.
	var progress io.Writer
	if logger.Level() <= zap.InfoLevel {
		progress = os.Stderr
	}

	return NewRunner(saes_service.NewService(client), os.Stdout, progress)
}

// ExecuteEncryptCommand runs the encrypt command.
func ExecuteEncryptCommand(ctx context.Context, cfg *config.Config, modeText, key, plaintext string) {
	mode, err := saes_service.ParseMode(modeText)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse mode: %v", err)
	}

	logger.Debugf(ctx, "Using S-AES backend at %s", cfg.APIBaseURL)

	runner := NewRunnerFromConfig(cfg)
	err = runner.Encrypt(ctx, mode, plaintext, key)

	runner.PrintSummary(ctx)

	if err != nil {
		logger.Fatalf(ctx, "Encryption failed: %v", err)
	}
}

// ExecuteDecryptCommand runs the decrypt command.
func ExecuteDecryptCommand(ctx context.Context, cfg *config.Config, modeText, key, iv, ciphertext string) {
	mode, err := saes_service.ParseMode(modeText)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse mode: %v", err)
	}

	logger.Debugf(ctx, "Using S-AES backend at %s", cfg.APIBaseURL)

	runner := NewRunnerFromConfig(cfg)
	err = runner.Decrypt(ctx, mode, ciphertext, key, iv)

	runner.PrintSummary(ctx)

	if err != nil {
		logger.Fatalf(ctx, "Decryption failed: %v", err)
	}
}

// ExecuteAttackCommand runs the attack command.
func ExecuteAttackCommand(ctx context.Context, cfg *config.Config, pairs []string) {
	logger.Debugf(ctx, "Using S-AES backend at %s", cfg.APIBaseURL)

	runner := NewRunnerFromConfig(cfg)
	err := runner.Attack(ctx, pairs)

	runner.PrintSummary(ctx)

	if err != nil {
		logger.Fatalf(ctx, "Attack failed: %v", err)
	}
}
