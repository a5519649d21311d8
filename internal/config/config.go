package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/yadisk-grabber/internal/constants"
	"github.com/oshokin/yadisk-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// BaseAPIURL is the base URL of the Yandex Disk public resources API.
	BaseAPIURL string `mapstructure:"base_api_url"`
	// OutputPath is the directory path where downloaded files will be saved.
	OutputPath string `mapstructure:"output_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout bounds every HTTP call to the upstream API (e.g., "30s", "2m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// ServerAddress is the listen address for the web front end (serve command).
	ServerAddress string `mapstructure:"server_address"`
	// ShowProgressBar enables a byte-level progress bar for CLI downloads.
	ShowProgressBar bool `mapstructure:"show_progress_bar"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed HTTP request timeout.
	ParsedRequestTimeout time.Duration
}

const (
	// DefaultBaseAPIURL is the base URL for the Yandex Disk public resources API.
	DefaultBaseAPIURL = "https://cloud-api.yandex.net/v1/disk/public/resources/"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".yadisk-grabber.yaml"

	// DefaultOutputPath is the directory downloaded files are written to.
	DefaultOutputPath = "files"

	// DefaultServerAddress is the default listen address for the web front end.
	DefaultServerAddress = ":8080"

	// DefaultRequestTimeout is the default timeout applied to upstream HTTP calls.
	DefaultRequestTimeout = "60s"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultMaxLogLength is the default maximum size (in bytes) for HTTP debug dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// baseURLEnvironmentVariable overrides the upstream base URL,
	// read from the process environment or a local .env file.
	baseURLEnvironmentVariable = "YANDEX_DISK_PUBLIC_RESOURCES_BASE_URL"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseAPIURL indicates that the upstream base URL is missing.
	ErrEmptyBaseAPIURL = errors.New("base API URL cannot be empty")
	// ErrInvalidBaseAPIURL indicates that the upstream base URL is not an absolute URL.
	ErrInvalidBaseAPIURL = errors.New("base API URL must be an absolute URL")
	// ErrEmptyOutputPath indicates that the output directory is missing.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	// ErrEmptyServerAddress indicates that the web server listen address is missing.
	ErrEmptyServerAddress = errors.New("server address cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request timeout must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing default config file is not an error: defaults apply.
// Values from a local .env file or the environment override the upstream base URL,
// matching how deployments customize the API endpoint.
func LoadConfig(configFilename string) (*Config, error) {
	explicitFile := configFilename != ""
	if !explicitFile {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if explicitFile || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvironmentOverrides(&cfg)

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.BaseAPIURL = strings.TrimSpace(cfg.BaseAPIURL)
	if cfg.BaseAPIURL == "" {
		return ErrEmptyBaseAPIURL
	}

	parsedBaseURL, err := url.Parse(cfg.BaseAPIURL)
	if err != nil {
		return fmt.Errorf("failed to parse base API URL: %w", err)
	}

	if !parsedBaseURL.IsAbs() {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseAPIURL, cfg.BaseAPIURL)
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if strings.TrimSpace(cfg.ServerAddress) == "" {
		return ErrEmptyServerAddress
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	return nil
}

// WriteDefaultConfig writes a config file with default settings to the given path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	if _, err := os.Stat(configFilename); err == nil {
		return fmt.Errorf("config file '%s' already exists", configFilename)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	content, err := defaultConfigYAML()
	if err != nil {
		return err
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults registers default values so a partial (or missing) config file still works.
func setDefaults() {
	viper.SetDefault("base_api_url", DefaultBaseAPIURL)
	viper.SetDefault("output_path", DefaultOutputPath)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("server_address", DefaultServerAddress)
	viper.SetDefault("show_progress_bar", true)
}

// applyEnvironmentOverrides loads a local .env file (if any) and applies
// environment variable overrides on top of the file-based configuration.
func applyEnvironmentOverrides(cfg *Config) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	if baseURL := strings.TrimSpace(os.Getenv(baseURLEnvironmentVariable)); baseURL != "" {
		cfg.BaseAPIURL = baseURL
	}
}

// defaultConfigYAML renders the default configuration preserving field order.
func defaultConfigYAML() ([]byte, error) {
	// yaml.Node keeps the mapping order stable, unlike marshaling a plain map.
	defaults := [][2]string{
		{"base_api_url", DefaultBaseAPIURL},
		{"output_path", DefaultOutputPath},
		{"log_level", DefaultLogLevel},
		{"request_timeout", DefaultRequestTimeout},
		{"server_address", DefaultServerAddress},
		{"show_progress_bar", "true"},
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, pair := range defaults {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: pair[0]}
		valueNode := &yaml.Node{Kind: yaml.ScalarNode, Value: pair[1]}

		if pair[1] == "true" || pair[1] == "false" {
			valueNode.Tag = "!!bool"
		}

		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}

	content, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}

	return content, nil
}
