package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMemoryDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "session", cfg.SessionCookieName)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
}

func TestLoadConfigPostgresNeedsURL(t *testing.T) {
	viper.Reset()
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigProductionNeedsSecret(t *testing.T) {
	viper.Reset()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	viper.Reset()
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := LoadConfig()
	assert.Error(t, err)
}
