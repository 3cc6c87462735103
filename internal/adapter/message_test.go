package adapter

import (
	"testing"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *ParsedCommand {
	t.Helper()
	return NewMessageAdapter("!").ParseMessage(&domain.Message{Content: text})
}

func TestParseMessageCommands(t *testing.T) {
	tests := []struct {
		text   string
		want   domain.CommandType
		params map[string]any
	}{
		{"!help", domain.CommandHelp, map[string]any{}},
		{"!도움말", domain.CommandHelp, map[string]any{}},
		{"!CONFIRM deploy now?", domain.CommandConfirm, map[string]any{"question": "deploy now?"}},
		{"!queue 4 2 join game", domain.CommandQueue, map[string]any{"size": 4, "min": 2, "trigger": "join game"}},
		{"!queue 3", domain.CommandQueue, map[string]any{"size": 3}},
		{"!whois <@!123>", domain.CommandWhois, map[string]any{"query": "<@!123>"}},
		{"!hash sha256 hello world", domain.CommandHash, map[string]any{"algorithm": "sha256", "text": "hello world"}},
		{"!hash hello world", domain.CommandHash, map[string]any{"text": "hello world"}},
		{"!b64 decode aGk=", domain.CommandBase64, map[string]any{"mode": "decode", "text": "aGk="}},
		{"!roll 20", domain.CommandRoll, map[string]any{"max": 20}},
		{"!roll 5 10", domain.CommandRoll, map[string]any{"min": 5, "max": 10}},
		{"!shuffle red, green , blue", domain.CommandShuffle, map[string]any{"items": []string{"red", "green", "blue"}}},
		{"!note", domain.CommandNote, map[string]any{"action": "show"}},
		{"!note add buy milk", domain.CommandNote, map[string]any{"action": "add", "text": "buy milk"}},
		{"!note clear", domain.CommandNote, map[string]any{"action": "clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd := parse(t, tt.text)
			require.Equal(t, tt.want, cmd.Type)
			require.Equal(t, tt.params, cmd.Params)
		})
	}
}

func TestParseMessageUnknown(t *testing.T) {
	for _, text := range []string{"", "hello", "!", "!nope", "?help"} {
		require.Equal(t, domain.CommandUnknown, parse(t, text).Type, text)
	}
	require.Equal(t, domain.CommandUnknown, NewMessageAdapter("!").ParseMessage(nil).Type)
}

func TestParseMessageCustomPrefix(t *testing.T) {
	cmd := NewMessageAdapter("?").ParseMessage(&domain.Message{Content: "  ?uptime  "})

	require.Equal(t, domain.CommandUptime, cmd.Type)
	require.Equal(t, "?uptime", cmd.RawMessage)
}
