package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8088", cfg.Server.Addr)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/scholar.db", cfg.Database.Path)
	assert.Equal(t, 75, cfg.Registry.DefaultUniversityScore)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, 6, cfg.Seed.UsersPerUniversity)
	assert.Equal(t, "roster-exports", cfg.Storage.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCHOLAR_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SCHOLAR_DATABASE_DRIVER", "postgres")
	t.Setenv("SCHOLAR_DATABASE_DSN", "postgres://scholar@localhost/scholar?sslmode=disable")
	t.Setenv("SCHOLAR_REGISTRY_DEFAULTUNIVERSITYSCORE", "60")
	t.Setenv("SCHOLAR_SEED_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 60, cfg.Registry.DefaultUniversityScore)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCHOLAR_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCHOLAR_DATABASE_DRIVER", "postgres")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("score out of range", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCHOLAR_REGISTRY_DEFAULTUNIVERSITYSCORE", "101")

		_, err := Load()
		require.Error(t, err)
	})
}
