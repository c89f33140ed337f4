package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "admin", cfg.OwnerUsername)
	assert.Equal(t, "admin123", cfg.OwnerPassword)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.False(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	base := Config{StorageDriver: DriverFile, JWTSecret: "s", OwnerUsername: "a", OwnerPassword: "b"}
	require.NoError(t, base.Validate())

	mysqlNoDSN := base
	mysqlNoDSN.StorageDriver = DriverMySQL
	assert.Error(t, mysqlNoDSN.Validate())

	unknown := base
	unknown.StorageDriver = "sqlite"
	assert.Error(t, unknown.Validate())

	noSecret := base
	noSecret.JWTSecret = ""
	assert.Error(t, noSecret.Validate())
}

func TestAIEnabled(t *testing.T) {
	assert.False(t, (&Config{}).AIEnabled())
	assert.True(t, (&Config{GeminiAPIKey: "k"}).AIEnabled())
}
