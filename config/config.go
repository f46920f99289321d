package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Telegram struct {
	BotToken             string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	UpdateTimeoutSeconds int    `yaml:"update_timeout_seconds" env:"UPDATE_TIMEOUT_SECONDS" env-default:"60"`
	Language             string `yaml:"language" env:"BOT_LANGUAGE" env-default:"en"`
}

type Storage struct {
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"db/roles.db"`
}

type Redis struct {
	Endpoint string `yaml:"endpoint" env:"REDIS_ENDPOINT"`
}

type Dialog struct {
	// SessionTTL is the inactivity expiry for dialogue sessions.
	// Zero keeps a session alive until it is completed, cancelled or
	// replaced by a new command.
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"0"`
	// SuppressMentionsInDialog skips the @role mention scan for a text
	// message that an active dialogue consumed as input.
	SuppressMentionsInDialog bool `yaml:"suppress_mentions_in_dialog" env:"SUPPRESS_MENTIONS_IN_DIALOG" env-default:"false"`
}

type Config struct {
	Telegram Telegram `yaml:"telegram"`
	Storage  Storage  `yaml:"storage"`
	Redis    Redis    `yaml:"redis"`
	Dialog   Dialog   `yaml:"dialog"`
}

func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
