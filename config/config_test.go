package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Telegram.BotToken)
	assert.Equal(t, 60, cfg.Telegram.UpdateTimeoutSeconds)
	assert.Equal(t, "en", cfg.Telegram.Language)
	assert.Equal(t, "db/roles.db", cfg.Storage.SQLitePath)
	assert.Empty(t, cfg.Redis.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Dialog.SessionTTL)
	assert.False(t, cfg.Dialog.SuppressMentionsInDialog)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("BOT_LANGUAGE", "ru")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SUPPRESS_MENTIONS_IN_DIALOG", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Telegram.Language)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 30*time.Minute, cfg.Dialog.SessionTTL)
	assert.True(t, cfg.Dialog.SuppressMentionsInDialog)
}
