package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("PORT", "")
	t.Setenv("REQUIRED_CHANNEL", "")
	t.Setenv("TELEGRAM_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "123:abc", cfg.Telegram.Token)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "@ReviewCashNews", cfg.Telegram.RequiredChannel)
	require.Equal(t, ModePolling, cfg.Telegram.Mode)
	require.Equal(t, "data.db", cfg.DB.Path)
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_MODE", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_ID", "6482440657")
	t.Setenv("TELEGRAM_MODE", "webhook")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, int64(6482440657), cfg.Telegram.AdminID)
	require.Equal(t, ModeWebhook, cfg.Telegram.Mode)
}
