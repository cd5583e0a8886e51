package config

import (
	"os"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ConfigSuite struct {
	suite.Suite
}

var keys = []string{"HTTP_PORT", "REDIS_HOST", "REDIS_LOOKUP_TTL", "DB_HOST", "LOOKUP_TIMEOUT", "SESSION_IDLE_TIMEOUT"}

func setenv(t provider.T, env map[string]string) {
	for _, k := range keys {
		prev, had := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
	for k, v := range env {
		_ = os.Setenv(k, v)
	}
}

// Not parallel: the environment is process-wide.
func (s *ConfigSuite) TestDefaults(t provider.T) {
	setenv(t, nil)

	cfg := FromEnv()

	assert.Equal(t, "8050", cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Postgres.Enabled())
	assert.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "https://query.wikidata.org/sparql", cfg.Lookup.Endpoint)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
}

func (s *ConfigSuite) TestOverrides(t provider.T) {
	setenv(t, map[string]string{
		"HTTP_PORT":            "9000",
		"REDIS_HOST":           "redis",
		"REDIS_LOOKUP_TTL":     "15m",
		"DB_HOST":              "postgres",
		"LOOKUP_TIMEOUT":       "3",
		"SESSION_IDLE_TIMEOUT": "soon",
	})

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Postgres.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
}

func TestConfigSuite(t *testing.T) {
	suite.RunSuite(t, new(ConfigSuite))
}
