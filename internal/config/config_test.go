package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HOST", "PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	"ENVIRONMENT", "STORE_DRIVER", "DATABASE_URL",
}

// clearEnv unset every key, t.Setenv restores the originals on cleanup
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "localhost:8080", cfg.Address())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:offering.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.True(t, cfg.IsProduction())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env.local")
	content := "PORT=7000\nLOG_LEVEL=debug\nSTORE_DRIVER=postgres\nDATABASE_URL=postgres://localhost/offering?sslmode=disable\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	// already exported variables take precedence over the file
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/offering?sslmode=disable", cfg.DatabaseURL)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	base := Config{Port: 8080, LogFormat: "console", StoreDriver: StoreMemory}

	t.Run("Valid", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("BadPort", func(t *testing.T) {
		cfg := base
		cfg.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "invalid PORT")
	})

	t.Run("BadFormat", func(t *testing.T) {
		cfg := base
		cfg.LogFormat = "xml"
		assert.ErrorContains(t, cfg.Validate(), "LOG_FORMAT")
	})

	t.Run("DatabaseURLRequired", func(t *testing.T) {
		cfg := base
		cfg.StoreDriver = StorePostgres
		assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL is required")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		cfg := base
		cfg.StoreDriver = "mongo"
		assert.ErrorContains(t, cfg.Validate(), "unknown STORE_DRIVER")
	})
}
