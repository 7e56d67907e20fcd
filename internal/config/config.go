package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/inbox-assistant/")
	v.AddConfigPath("$HOME/.inbox-assistant")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("INBOX_ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Analyzer defaults. The weight table sums to exactly 1.0; keep it
	// summing to at most 1.0 when tuning, the confidence is never clamped.
	v.SetDefault("analyzer.detect_threshold", 0.5)
	v.SetDefault("analyzer.create_threshold", 0.6)
	v.SetDefault("analyzer.weights.date", 0.4)
	v.SetDefault("analyzer.weights.time", 0.3)
	v.SetDefault("analyzer.weights.keyword", 0.2)
	v.SetDefault("analyzer.weights.location", 0.1)
	v.SetDefault("analyzer.max_snippet_size", 500)

	// Assistant defaults
	v.SetDefault("assistant.muted_senders", []string{})

	// Message source defaults
	v.SetDefault("source.type", "gmail")
	v.SetDefault("gmail.credentials_file", "credentials.json")
	v.SetDefault("gmail.token_file", "token.json")
	v.SetDefault("gmail.query", "in:inbox -in:draft")

	// Calendar defaults
	v.SetDefault("calendar.type", "google")
	v.SetDefault("calendar.id", "primary")
	v.SetDefault("calendar.event_duration", "1h")

	// Server defaults
	v.SetDefault("server.type", "http")
	v.SetDefault("server.listen_address", "0.0.0.0:8080")

	// Dev mail sink defaults
	v.SetDefault("devmail.enabled", false)
	v.SetDefault("devmail.listen_address", "127.0.0.1:2525")
	v.SetDefault("devmail.max_messages", 200)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
