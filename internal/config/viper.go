// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Host                string `mapstructure:"host" yaml:"host"`
		Port                int    `mapstructure:"port" yaml:"port"`
		ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds  int    `mapstructure:"idle_timeout_seconds" yaml:"idle_timeout_seconds"`
	} `mapstructure:"server" yaml:"server"`

	Engine struct {
		PricingURL            string `mapstructure:"pricing_url" yaml:"pricing_url"`
		AuthURL               string `mapstructure:"auth_url" yaml:"auth_url"`
		ClientID              string `mapstructure:"client_id" yaml:"client_id"`
		ClientSecret          string `mapstructure:"client_secret" yaml:"-"` // Never serialize the secret
		PricingTimeoutSeconds int    `mapstructure:"pricing_timeout_seconds" yaml:"pricing_timeout_seconds"`
		AuthTimeoutSeconds    int    `mapstructure:"auth_timeout_seconds" yaml:"auth_timeout_seconds"`
	} `mapstructure:"engine" yaml:"engine"`

	Geo struct {
		LookupURL      string `mapstructure:"lookup_url" yaml:"lookup_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"geo" yaml:"geo"`

	History struct {
		Capacity int `mapstructure:"capacity" yaml:"capacity"`
	} `mapstructure:"history" yaml:"history"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// PricingTimeout returns the outbound pricing call timeout.
func (c *Config) PricingTimeout() time.Duration {
	return time.Duration(c.Engine.PricingTimeoutSeconds) * time.Second
}

// AuthTimeout returns the outbound auth call timeout.
func (c *Config) AuthTimeout() time.Duration {
	return time.Duration(c.Engine.AuthTimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.rate-quote")
	v.AddConfigPath(".rate-quote")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("RATEQUOTE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The engine secret always comes from an unprefixed env var
	if err := v.BindEnv("engine.client_secret", "ENGINE_CLIENT_SECRET"); err != nil {
		fmt.Printf("Warning: failed to bind ENGINE_CLIENT_SECRET environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 30)
	v.SetDefault("server.idle_timeout_seconds", 60)

	// Engine defaults. The pricing call gets a longer leash than auth; both
	// fail closed on timeout.
	v.SetDefault("engine.pricing_url", "")
	v.SetDefault("engine.auth_url", "")
	v.SetDefault("engine.client_id", "")
	v.SetDefault("engine.pricing_timeout_seconds", 25)
	v.SetDefault("engine.auth_timeout_seconds", 10)

	// Geo lookup defaults
	v.SetDefault("geo.lookup_url", "")
	v.SetDefault("geo.timeout_seconds", 5)

	// History defaults
	v.SetDefault("history.capacity", 200)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	if config.Engine.PricingTimeoutSeconds < 1 || config.Engine.PricingTimeoutSeconds > 300 {
		return fmt.Errorf("engine.pricing_timeout_seconds must be between 1 and 300, got: %d", config.Engine.PricingTimeoutSeconds)
	}

	if config.Engine.AuthTimeoutSeconds < 1 || config.Engine.AuthTimeoutSeconds > 300 {
		return fmt.Errorf("engine.auth_timeout_seconds must be between 1 and 300, got: %d", config.Engine.AuthTimeoutSeconds)
	}

	if config.History.Capacity < 1 {
		return fmt.Errorf("history.capacity must be positive, got: %d", config.History.Capacity)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
