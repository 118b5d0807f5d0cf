package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 10, cfg.Search.DefaultResults)
	assert.Equal(t, 100, cfg.Search.MaxResults)
	assert.Equal(t, 2*time.Second, cfg.Enrichment.LookupTimeout)
	assert.Equal(t, 12*time.Hour, cfg.Enrichment.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "http://backend:8000")
	t.Setenv("SEARCH_DEFAULT_RESULTS", "20")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("ENRICHMENT_LOOKUP_TIMEOUT", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://backend:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 20, cfg.Search.DefaultResults)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Enrichment.LookupTimeout)
}

func TestValidate_InconsistentSearchLimits(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: "8080"},
		Backend: BackendConfig{BaseURL: "http://localhost:8000"},
		Search:  SearchConfig{DefaultResults: 50, MaxResults: 10},
	}

	assert.Error(t, cfg.Validate())
}

func TestRedisConfig_Address(t *testing.T) {
	cfg := RedisConfig{Host: "redis", Port: "6379"}

	assert.Equal(t, "redis:6379", cfg.Address())
}
