package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "",
		"PORT":                  "",
		"REDIS_URL":             "",
		"CORS_ALLOWED_ORIGINS":  "",
		"CATALOG_STORAGE_KEY":   "",
		"CATALOG_TTL":           "",
		"PRINT_DELAY":           "",
		"CURRENCY_CODE":         "",
		"OBS_LOG_FORMAT":        "",
		"OBS_LOG_LEVEL":         "",
		"OBS_ENABLE_PROMETHEUS": "",
		"OBS_METRICS_NAMESPACE": "",
	})
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.RedisURL)
	require.Empty(t, cfg.CORSAllowedOrigins)
	require.Equal(t, "orcamento:catalog", cfg.CatalogStorageKey)
	require.Equal(t, 8760*time.Hour, cfg.CatalogTTL)
	require.Equal(t, 500*time.Millisecond, cfg.PrintDelay)
	require.Equal(t, "BRL", cfg.CurrencyCode)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, "orcamento", cfg.MetricsNamespace)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "production",
		"PORT":                  "9090",
		"REDIS_URL":             "redis://localhost:6379/0",
		"CORS_ALLOWED_ORIGINS":  "https://a.example.com, https://b.example.com",
		"CATALOG_TTL":           "24h",
		"PRINT_DELAY":           "250ms",
		"OBS_ENABLE_PROMETHEUS": "false",
	})
	require.NoError(t, err)

	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 24*time.Hour, cfg.CatalogTTL)
	require.Equal(t, 250*time.Millisecond, cfg.PrintDelay)
	require.False(t, cfg.MetricsEnabled)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CATALOG_TTL": "soon",
		"PRINT_DELAY": "whenever",
	})
	require.NoError(t, err)
	require.Equal(t, 8760*time.Hour, cfg.CatalogTTL)
	require.Equal(t, 500*time.Millisecond, cfg.PrintDelay)
}

func TestHTTPAddr(t *testing.T) {
	cfg := &config.Config{Port: "9090"}
	require.Equal(t, ":9090", cfg.HTTPAddr())

	cfg.Port = ":7070"
	require.Equal(t, ":7070", cfg.HTTPAddr())

	cfg.Port = ""
	require.Equal(t, ":8080", cfg.HTTPAddr())
}
