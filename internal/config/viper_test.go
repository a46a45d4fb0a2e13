package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Engine.PricingTimeoutSeconds = 25
	cfg.Engine.AuthTimeoutSeconds = 10
	cfg.History.Capacity = 200
	cfg.CSV.Delimiter = ","
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Engine.PricingTimeoutSeconds)
	assert.Equal(t, 10, cfg.Engine.AuthTimeoutSeconds)
	assert.Equal(t, 200, cfg.History.Capacity)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("RATEQUOTE_SERVER_PORT", "9090")
	t.Setenv("ENGINE_CLIENT_SECRET", "shh")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "shh", cfg.Engine.ClientSecret)
}

func TestTimeouts(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 25*time.Second, cfg.PricingTimeout())
	assert.Equal(t, 10*time.Second, cfg.AuthTimeout())
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(defaultConfig()))

	cfg := defaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.Server.Port = 0
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.Engine.PricingTimeoutSeconds = 0
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.History.Capacity = 0
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RATEQUOTE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("RATEQUOTE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("RATEQUOTE_MISSING_KEY", "fallback"))
}
