package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB       SQLiteConfig
	Server   ServerConfig
	Telegram TelegramConfig
}

type SQLiteConfig struct {
	Path       string
	Migrations string
}

type ServerConfig struct {
	Host      string
	Port      string
	GinMode   string
	StaticDir string
}

type TelegramConfig struct {
	Token           string
	AdminID         int64
	RequiredChannel string
	WebAppURL       string
	Mode            string
}

const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Load reads configuration from the environment. A local .env file is
// honored but never overrides variables already set in the real
// environment. BOT_TOKEN has no fallback: a missing token is a startup
// error, not a default.
func Load() (*Config, error) {
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("DB_PATH", "data.db")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("REQUIRED_CHANNEL", "@ReviewCashNews")
	v.SetDefault("TELEGRAM_MODE", ModePolling)

	cfg := &Config{
		DB: SQLiteConfig{
			Path:       v.GetString("DB_PATH"),
			Migrations: v.GetString("MIGRATIONS_PATH"),
		},
		Server: ServerConfig{
			Host:      v.GetString("HOST"),
			Port:      v.GetString("PORT"),
			GinMode:   v.GetString("GIN_MODE"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Telegram: TelegramConfig{
			Token:           v.GetString("BOT_TOKEN"),
			AdminID:         v.GetInt64("ADMIN_ID"),
			RequiredChannel: v.GetString("REQUIRED_CHANNEL"),
			WebAppURL:       v.GetString("WEBAPP_URL"),
			Mode:            v.GetString("TELEGRAM_MODE"),
		},
	}

	if cfg.Telegram.Token == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}
	if cfg.Telegram.Mode != ModePolling && cfg.Telegram.Mode != ModeWebhook {
		return nil, errors.New("TELEGRAM_MODE must be polling or webhook")
	}
	return cfg, nil
}
