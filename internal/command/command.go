package command

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/kapu/botkit-go/internal/adapter"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/directory"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/prompt"
	"github.com/kapu/botkit-go/internal/store"
	"github.com/kapu/botkit-go/pkg/kit"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

type Dependencies struct {
	Prompter       *prompt.Prompter
	Directory      *directory.Directory
	Store          store.Store
	Formatter      *adapter.ResponseFormatter
	Channel        func(channelID, guildID string) chat.Channel
	SendMessage    func(ctx context.Context, channelID, message string) error
	SendError      func(ctx context.Context, channelID, message string) error
	ConfirmTimeout time.Duration
	QueueTimeout   time.Duration
	StartedAt      time.Time
	Logger         *zap.Logger
}

func (d *Dependencies) channelFor(cmdCtx *domain.CommandContext) chat.Channel {
	return d.Channel(cmdCtx.Channel, cmdCtx.Guild)
}

func (d *Dependencies) log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

var errDependencies = errors.New("command dependencies not satisfied")

// ready reports whether the reply path is wired.
func (d *Dependencies) ready() error {
	if d == nil || d.Formatter == nil || d.SendMessage == nil || d.SendError == nil {
		return errDependencies
	}
	return nil
}

// reply sends message, shortened to the platform limit.
func (d *Dependencies) reply(ctx context.Context, cmdCtx *domain.CommandContext, message string) error {
	return d.SendMessage(ctx, cmdCtx.Channel, kit.Shorten(message, constants.StringLimits.Message))
}

func (d *Dependencies) replyError(ctx context.Context, cmdCtx *domain.CommandContext, message string) error {
	return d.SendError(ctx, cmdCtx.Channel, d.Formatter.FormatError(message))
}

func getStringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func getIntParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getStringsParam(params map[string]any, key string) []string {
	if v, ok := params[key].([]string); ok {
		return v
	}
	return nil
}
