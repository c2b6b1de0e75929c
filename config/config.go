package config

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BranchIntl/amqpparams/internal/tlsutil"
	"github.com/BranchIntl/amqpparams/params"
	"gopkg.in/yaml.v3"
)

// Config is the main configuration structure
type Config struct {
	Broker  BrokerConfig  `json:"broker" yaml:"broker"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// BrokerConfig describes the broker connection, either as a URI or as
// structured fields. The two forms are mutually exclusive. Options are
// flattened next to uri in both YAML and JSON.
type BrokerConfig struct {
	URI     string          `yaml:"uri,omitempty"`
	Options params.Options  `yaml:",inline"`
	TLS     tlsutil.Options `yaml:"tls"`
}

// flatBrokerConfig is the JSON shape of BrokerConfig
type flatBrokerConfig struct {
	URI string `json:"uri,omitempty"`
	params.Options
	TLS tlsutil.Options `json:"tls"`
}

// MarshalJSON flattens the structured options like the YAML form
func (b BrokerConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatBrokerConfig{URI: b.URI, Options: b.Options, TLS: b.TLS})
}

// UnmarshalJSON reads the flattened form written by MarshalJSON
func (b *BrokerConfig) UnmarshalJSON(data []byte) error {
	var flat flatBrokerConfig
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*b = BrokerConfig{URI: flat.URI, Options: flat.Options, TLS: flat.TLS}
	return nil
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Broker: BrokerConfig{
			URI: getEnvOrDefault("AMQP_URL", ""),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads a YAML configuration file over the defaults and validates it.
// AMQP_URL only applies when the file leaves the broker section empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	envURI := cfg.Broker.URI
	cfg.Broker.URI = ""

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if cfg.Broker.URI == "" && cfg.Broker.Options.IsZero() {
		cfg.Broker.URI = envURI
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Broker.URI != "" && !c.Broker.Options.IsZero() {
		return fmt.Errorf("broker uri and structured broker fields are mutually exclusive")
	}

	if level := c.Broker.Options.LogLevel; level != nil && !level.Valid() {
		return fmt.Errorf("unknown broker loglevel %q", *level)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("unknown logging output %q", c.Logging.Output)
	}

	return nil
}

// Input returns the broker section as resolver input
func (b BrokerConfig) Input() params.Input {
	if b.URI != "" {
		return params.URL(b.URI)
	}
	return b.Options
}

// Secure reports whether the connection should use TLS
func (b BrokerConfig) Secure() bool {
	return strings.HasPrefix(strings.ToLower(b.URI), params.SchemeAMQPS+"://") || !b.TLS.IsZero()
}

// TLSConfig builds the client TLS configuration, or nil for plain connections
func (b BrokerConfig) TLSConfig() (*tls.Config, error) {
	if !b.Secure() {
		return nil, nil
	}
	tlsConfig, err := tlsutil.ClientConfig(b.TLS)
	if err != nil {
		return nil, fmt.Errorf("broker tls: %w", err)
	}
	return tlsConfig, nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
