package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"starseed-server/internal/celestial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "SERVER_PORT", "SERVER_READ_TIMEOUT", "DB_DRIVER", "JWT_SECRET", "LOG_FORMAT",
		"GENERATION_STAR_PROFILE", "GENERATION_DEFAULT_GALAXY_NAME",
		"GENERATION_DEFAULT_GALAXY_TYPE", "GENERATION_DEFAULT_GALAXY_SEED")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.False(t, cfg.Logging.JSONFormat)
	assert.False(t, cfg.AdminEnabled())
	assert.Equal(t, celestial.NewGalaxy("Milky Way", celestial.GalaxyTypeSpiral, 42), cfg.DefaultGalaxy())
	assert.Equal(t, "reference", cfg.Generation.StarProfile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("GENERATION_DEFAULT_GALAXY_SEED", "18446744073709551615")
	t.Setenv("GENERATION_STAR_PROFILE", "catalog")
	t.Setenv("JWT_SECRET", strings.Repeat("k", 32))
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, uint64(18446744073709551615), cfg.Generation.DefaultGalaxySeed)
	assert.True(t, cfg.Logging.JSONFormat)
	assert.True(t, cfg.AdminEnabled())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadRejectsInvalidConfiguration(t *testing.T) {
	cases := map[string]map[string]string{
		"short jwt secret":    {"JWT_SECRET": "too-short"},
		"unknown db driver":   {"DB_DRIVER": "mongo"},
		"unknown galaxy type": {"GENERATION_DEFAULT_GALAXY_TYPE": "Elliptical"},
		"telemetry endpoint":  {"OTEL_ENABLED": "true", "OTEL_ENDPOINT": ""},
		"zero burst":          {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_BURST_SIZE": "0"},
		"malformed seed":      {"GENERATION_DEFAULT_GALAXY_SEED": "-1"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			t.Setenv("DB_DRIVER", "memory")
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", Name: "stars", SSLMode: "require",
	}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=stars sslmode=require", cfg.ConnectionString())
}
