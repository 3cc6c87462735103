package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, "iris", cfg.Bot.Platform)
	require.Equal(t, "!", cfg.Bot.Prefix)
	require.Equal(t, "badger://memory", cfg.Store.URI)
	require.Equal(t, 30*time.Second, cfg.Prompt.ConfirmTimeout)
	require.Equal(t, 60*time.Second, cfg.Prompt.QueueTimeout)
	require.False(t, cfg.Redis.Enabled)
	require.Empty(t, cfg.Prompt.ExtraYes)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BOT_PLATFORM", "discord")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BOT_PREFIX", "?")
	t.Setenv("PROMPT_EXTRA_YES", "ok, sure ,")
	t.Setenv("PROMPT_QUEUE_TIMEOUT", "90s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, "discord", cfg.Bot.Platform)
	require.Equal(t, "?", cfg.Bot.Prefix)
	require.Equal(t, []string{"ok", "sure"}, cfg.Prompt.ExtraYes)
	require.Equal(t, 90*time.Second, cfg.Prompt.QueueTimeout)
	require.True(t, cfg.Redis.Enabled)
	require.Equal(t, 6380, cfg.Redis.Port)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := map[string][2]string{
		"unknown platform":        {"BOT_PLATFORM", "slack"},
		"unknown log level":       {"LOG_LEVEL", "verbose"},
		"discord without token":   {"BOT_PLATFORM", "discord"},
		"non-positive timeout":    {"PROMPT_CONFIRM_TIMEOUT", "0s"},
		"out of range redis port": {"REDIS_PORT", "70000"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := FromEnv()
			require.Error(t, err)
		})
	}
}
