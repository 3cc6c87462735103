package adapter

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/pkg/kit"
)

var controlCharsPattern = regexp.MustCompile(`[\x00-\x08\x0B-\x1F\x7F]`)

// MessageAdapter converts chat messages to bot commands
type MessageAdapter struct {
	prefix  string
	aliases map[string]domain.CommandType
}

var commandAliases = map[domain.CommandType][]string{
	domain.CommandHelp:    {"help", "commands", "도움말", "명령어"},
	domain.CommandConfirm: {"confirm", "ask", "확인"},
	domain.CommandQueue:   {"queue", "lobby", "대기열"},
	domain.CommandPoll:    {"poll", "vote", "투표"},
	domain.CommandWhois:   {"whois", "member", "멤버"},
	domain.CommandUser:    {"user", "유저"},
	domain.CommandHash:    {"hash", "해시"},
	domain.CommandBase64:  {"base64", "b64"},
	domain.CommandRoman:   {"roman", "로마"},
	domain.CommandRoll:    {"roll", "random", "주사위"},
	domain.CommandShuffle: {"shuffle", "섞기"},
	domain.CommandUptime:  {"uptime", "status", "상태"},
	domain.CommandFiglet:  {"figlet", "banner"},
	domain.CommandNote:    {"note", "메모"},
}

func NewMessageAdapter(prefix string) *MessageAdapter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	aliases := make(map[string]domain.CommandType)
	for cmdType, names := range commandAliases {
		for _, name := range names {
			aliases[name] = cmdType
		}
	}
	return &MessageAdapter{prefix: prefix, aliases: aliases}
}

// ParsedCommand represents a parsed command
type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
}

// ParseMessage parses a prefixed chat message into a command. Anything else is
// CommandUnknown.
func (ma *MessageAdapter) ParseMessage(message *domain.Message) *ParsedCommand {
	if message == nil || message.Content == "" {
		return ma.createUnknownCommand("")
	}

	text := strings.TrimSpace(controlCharsPattern.ReplaceAllString(message.Content, " "))
	if !strings.HasPrefix(text, ma.prefix) {
		return ma.createUnknownCommand(text)
	}

	parts := strings.Fields(strings.TrimSpace(text[len(ma.prefix):]))
	if len(parts) == 0 {
		return ma.createUnknownCommand(text)
	}

	cmdType, ok := ma.aliases[strings.ToLower(parts[0])]
	if !ok {
		return ma.createUnknownCommand(text)
	}
	args := parts[1:]

	return &ParsedCommand{
		Type:       cmdType,
		Params:     ma.parseArgs(cmdType, args),
		RawMessage: text,
	}
}

func (ma *MessageAdapter) parseArgs(cmdType domain.CommandType, args []string) map[string]any {
	params := make(map[string]any)
	rest := strings.Join(args, " ")

	switch cmdType {
	case domain.CommandConfirm, domain.CommandPoll:
		if rest != "" {
			params["question"] = rest
		}
	case domain.CommandWhois, domain.CommandUser:
		if rest != "" {
			params["query"] = rest
		}
	case domain.CommandQueue:
		ma.parseQueueArgs(args, params)
	case domain.CommandHash:
		// hash [algorithm] <text>
		if len(args) > 1 && slices.Contains(kit.HashAlgorithms(), strings.ToLower(args[0])) {
			params["algorithm"] = strings.ToLower(args[0])
			params["text"] = strings.Join(args[1:], " ")
		} else if rest != "" {
			params["text"] = rest
		}
	case domain.CommandBase64:
		// base64 <encode|decode> <text>
		if len(args) > 0 {
			params["mode"] = strings.ToLower(args[0])
			params["text"] = strings.Join(args[1:], " ")
		}
	case domain.CommandRoman:
		if rest != "" {
			params["value"] = rest
		}
	case domain.CommandRoll:
		ma.parseRollArgs(args, params)
	case domain.CommandShuffle:
		items := splitItems(rest)
		if len(items) > 0 {
			params["items"] = items
		}
	case domain.CommandFiglet:
		if rest != "" {
			params["text"] = rest
		}
	case domain.CommandNote:
		// note [add|edit|clear] <text>
		action := "show"
		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case "add", "set", "추가":
				action, args = "add", args[1:]
			case "edit", "수정":
				action, args = "edit", args[1:]
			case "clear", "delete", "삭제":
				action, args = "clear", args[1:]
			}
		}
		params["action"] = action
		if len(args) > 0 {
			params["text"] = strings.Join(args, " ")
		}
	}
	return params
}

// queue [size] [min] [trigger...]
func (ma *MessageAdapter) parseQueueArgs(args []string, params map[string]any) {
	numbers := 0
	for len(args) > 0 && numbers < 2 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			break
		}
		if numbers == 0 {
			params["size"] = n
		} else {
			params["min"] = n
		}
		numbers++
		args = args[1:]
	}
	if len(args) > 0 {
		params["trigger"] = strings.Join(args, " ")
	}
}

// roll [max] | roll <min> <max>
func (ma *MessageAdapter) parseRollArgs(args []string, params map[string]any) {
	nums := make([]int, 0, 2)
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			nums = append(nums, n)
		}
	}
	switch {
	case len(nums) == 1:
		params["max"] = nums[0]
	case len(nums) >= 2:
		params["min"] = nums[0]
		params["max"] = nums[1]
	}
}

// splitItems accepts "a, b, c" or "a b c".
func splitItems(text string) []string {
	var raw []string
	if strings.Contains(text, ",") {
		raw = strings.Split(text, ",")
	} else {
		raw = strings.Fields(text)
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func (ma *MessageAdapter) createUnknownCommand(text string) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     make(map[string]any),
		RawMessage: text,
	}
}
