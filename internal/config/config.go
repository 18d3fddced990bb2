package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/saes-client/internal/logger"
	http_transport "github.com/oshokin/saes-client/internal/transport/http"
	"github.com/oshokin/saes-client/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// APIBaseURL is the base URL of the S-AES backend.
	APIBaseURL string `mapstructure:"api_base_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// LogFile is an optional path of a rotating JSON log file. Empty disables file logging.
	LogFile string `mapstructure:"log_file"`
	// MaxLogLength bounds request and response dumps at debug level (e.g., "64KB", "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed dump limit in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".saes-client.yaml"

	// DefaultEnvFilename is the dotenv file loaded before the configuration is read.
	DefaultEnvFilename = ".env"

	// DefaultLogLevel is used when the configuration does not set log_level.
	DefaultLogLevel = "info"

	// DefaultMaxLogLength is used when the configuration does not set max_log_length.
	DefaultMaxLogLength = "1MiB"

	// LogLevelEnvVar overrides log_level.
	LogLevelEnvVar = "SAES_LOG_LEVEL"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxLogLength indicates that max_log_length is zero.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be positive")
)

// LoadConfig loads configuration settings.
//
// Values are resolved in this order: a non-empty environment variable, the YAML file,
// then the built-in default. Variables from DefaultEnvFilename are loaded first and never
// replace variables that are already set. An empty configFilename selects
// DefaultConfigFilename, which may be absent; an explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	if err := loadDotEnv(DefaultEnvFilename); err != nil {
		return nil, err
	}

	v := newViper()

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	if err := readConfigFile(v, configFilename, isExplicit); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength == "" {
		maxLogLength = DefaultMaxLogLength
	}

	parsedMaxLogLength, err := humanize.ParseBytes(maxLogLength)
	if err != nil {
		return fmt.Errorf("failed to parse max log length: %w", err)
	}

	if parsedMaxLogLength == 0 {
		return ErrInvalidMaxLogLength
	}

	cfg.ParsedMaxLogLength = parsedMaxLogLength

	// The base URL is not validated; an empty value falls back to the default.
	cfg.APIBaseURL = http_transport.ResolveBaseURL(cfg.APIBaseURL)
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)

	return nil
}

// HTTPSettings returns the HTTP client settings described by a validated configuration.
func (c *Config) HTTPSettings() http_transport.Settings {
	settings := http_transport.NewSettings(c.APIBaseURL)
	settings.MaxLogLength = c.ParsedMaxLogLength

	return settings
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("api_base_url", http_transport.DefaultBaseURL)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("max_log_length", DefaultMaxLogLength)

	// Empty variables are treated as unset, so they never hide the file or the default.
	_ = v.BindEnv("api_base_url", http_transport.BaseURLEnvVar)
	_ = v.BindEnv("log_level", LogLevelEnvVar)

	return v
}

func readConfigFile(v *viper.Viper, configFilename string, isExplicit bool) error {
	if !isExplicit {
		isExist, err := utils.IsFileExist(configFilename)
		if err != nil {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if !isExist {
			return nil
		}
	}

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config from file: %w", err)
	}

	return nil
}

func loadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load %s: %w", filename, err)
}
