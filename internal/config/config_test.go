package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SEED_ON_START", "")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "farmacia.db", cfg.DB.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_USERNAME", "farma")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SEED_ON_START", "yes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("PORT", "http")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("postgres without credentials", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("PORT", "")
		t.Setenv("DB_USERNAME", "")
		_, err := Load()
		require.ErrorContains(t, err, "DB_USERNAME")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		t.Setenv("PORT", "")
		_, err := Load()
		require.ErrorContains(t, err, "unsupported DB_DRIVER")
	})
}

func TestPostgresDSN_EscapesCredentials(t *testing.T) {
	d := DBConfig{
		User:     "farma",
		Password: "p@ss:word",
		Host:     "db",
		Port:     "5432",
		Name:     "inventario",
	}

	assert.Equal(t, "postgres://farma:p%40ss%3Aword@db:5432/inventario?sslmode=disable", d.PostgresDSN())

	d.AdminUser = "postgres"
	d.AdminPassword = "root"
	assert.Equal(t, "postgres://postgres:root@db:5432/postgres?sslmode=disable", d.AdminDSN())
}
