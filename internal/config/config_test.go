package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values and defaults", func(t *testing.T) {
		// Given: a config file with some values set
		path := writeConfig(t, `
log-level: debug
jwt-secret-key: secret
redis:
  host: redis
`)

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values and defaults are combined
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.SessionTTL)
		assert.Equal(t, "secret", conf.JWTSecretKey)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an override in the environment
		path := writeConfig(t, "jwt-secret-key: secret\nhttp-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("SESSION_TTL", "30m")

		// When: loading the config
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
	})

	t.Run("Missing secret is rejected", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("Missing file panics in MustLoad", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
