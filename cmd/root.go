package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/saes-client/internal/app"
	"github.com/oshokin/saes-client/internal/config"
	"github.com/oshokin/saes-client/internal/logger"
	http_transport "github.com/oshokin/saes-client/internal/transport/http"
	"github.com/oshokin/saes-client/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "saes-client",
		Short: "Encrypt, decrypt and attack S-AES through the S-AES backend.",
		Long: `saes-client is a CLI for the S-AES teaching backend.
It supports:
- Binary mode: one 16-bit block
- Base64 mode: ASCII text with base64 ciphertext
- CBC mode: ASCII text with a server-generated IV
- Meet-in-the-middle key recovery for double S-AES

The backend is reached at ` + http_transport.DefaultBaseURL + ` unless ` + http_transport.BaseURLEnvVar + `
or api_base_url in the configuration file says otherwise.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	cobra.CheckErr(err)
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s' if present)",
			config.DefaultConfigFilename))
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	if err = app.SetupLogging(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to set up logging: %v", err)
	}
}
