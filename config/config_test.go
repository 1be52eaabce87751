package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.CanteenAddr)
	assert.Equal(t, "local", cfg.AuthProvider)
	assert.Equal(t, "orders", cfg.OrdersTopic)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 72*time.Hour, cfg.CartTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_StaffEmails(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STAFF_EMAILS", "chef@example.com,boss@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"chef@example.com", "boss@example.com"}, cfg.StaffEmails)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=canteen_test\nSESSION_TTL=2h\n"), 0o644))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("SESSION_TTL")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "canteen_test", cfg.DBName)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Contains(t, cfg.PostgresDSN(), "dbname=canteen_test")
}
