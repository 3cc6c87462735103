package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Bot     BotConfig
	Discord DiscordConfig
	Iris    IrisConfig
	Store   StoreConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Prompt  PromptConfig
}

type BotConfig struct {
	Platform string `envconfig:"BOT_PLATFORM" default:"iris" validate:"oneof=discord iris"`
	Prefix   string `envconfig:"BOT_PREFIX" default:"!" validate:"required,max=3"`
}

type DiscordConfig struct {
	Token string `envconfig:"DISCORD_TOKEN"`
}

type IrisConfig struct {
	BaseURL string   `envconfig:"IRIS_BASE_URL" default:"http://localhost:3000" validate:"omitempty,url"`
	WSURL   string   `envconfig:"IRIS_WS_URL" default:"ws://localhost:3000/ws" validate:"omitempty,url"`
	Rooms   []string `envconfig:"KAKAO_ROOMS"`
}

type StoreConfig struct {
	URI      string `envconfig:"STORE_URI" default:"badger://memory" validate:"required"`
	Database string `envconfig:"STORE_DATABASE" default:"botkit"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379" validate:"min=1,max=65535"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
}

type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	File  string `envconfig:"LOG_FILE"`
}

type PromptConfig struct {
	ConfirmTimeout time.Duration `envconfig:"PROMPT_CONFIRM_TIMEOUT" default:"30s" validate:"gt=0"`
	QueueTimeout   time.Duration `envconfig:"PROMPT_QUEUE_TIMEOUT" default:"60s" validate:"gt=0"`
	ExtraYes       []string      `envconfig:"PROMPT_EXTRA_YES"`
	ExtraNo        []string      `envconfig:"PROMPT_EXTRA_NO"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	sections := []any{&cfg.Bot, &cfg.Discord, &cfg.Iris, &cfg.Store, &cfg.Redis, &cfg.Logging, &cfg.Prompt}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}
	cfg.Prompt.ExtraYes = trimAll(cfg.Prompt.ExtraYes)
	cfg.Prompt.ExtraNo = trimAll(cfg.Prompt.ExtraNo)
	cfg.Iris.Rooms = trimAll(cfg.Iris.Rooms)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return err
	}
	switch c.Bot.Platform {
	case "discord":
		if c.Discord.Token == "" {
			return fmt.Errorf("DISCORD_TOKEN is required for the discord platform")
		}
	case "iris":
		if c.Iris.BaseURL == "" || c.Iris.WSURL == "" {
			return fmt.Errorf("IRIS_BASE_URL and IRIS_WS_URL are required for the iris platform")
		}
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
