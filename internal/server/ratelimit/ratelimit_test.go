package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/grid", Method: "POST", Limit: 5, Window: time.Minute, Burst: 2},
			{Path: "/login", Method: "POST", Limit: 3, Window: time.Minute, Burst: 1},
		},
	}
}

func TestLimiter_BurstThenThrottle(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// Burst capacity is 2 tokens for /grid.
	allowed, info := l.Allow("1.2.3.4", "/grid", "POST")
	require.True(t, allowed)
	assert.Equal(t, 5, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/grid", "POST")
	require.True(t, allowed)

	allowed, info = l.Allow("1.2.3.4", "/grid", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.1.1.1", "/grid", "POST")
	l.Allow("1.1.1.1", "/grid", "POST")
	allowed, _ := l.Allow("1.1.1.1", "/grid", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/grid", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/grid", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/grid", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/grid", Method: "POST", Limit: 5},
		{Path: "/admin/", Method: "POST", Limit: 1},
	}

	exact := matchEndpoint("/grid", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 5, exact.Limit)

	prefix := matchEndpoint("/admin/rotate", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 1, prefix.Limit)

	assert.Nil(t, matchEndpoint("/grid", "GET", configs))

	health := matchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
