package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithoutEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_HOST", "db.internal")

	// No .env on disk: environment variables alone must be enough
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.JWT.Secret)
	assert.Equal(t, "db.internal", config.Database.Host)
	// Defaults still apply
	assert.Equal(t, "5000", config.App.Port)
	assert.Equal(t, "http://www.omdbapi.com", config.OMDb.BaseURL)
	assert.Equal(t, 24, config.JWT.ExpiryHours)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	envFile := "PORT=7777\nAPP_ENV=staging\nOMDB_API_KEY=file-key\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0644))
	t.Chdir(dir)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7777", config.App.Port)
	assert.Equal(t, "staging", config.App.Environment)
	assert.Equal(t, "file-key", config.OMDb.APIKey)
}
