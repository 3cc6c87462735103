package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/prompt"
	"go.uber.org/zap"
)

// Queue defaults when the command omits them.
const (
	defaultQueueSize    = 4
	defaultQueueMin     = 2
	defaultQueueTrigger = "join"
)

var pollEmojis = []string{"✅", "❌"}

type ConfirmCommand struct {
	deps *Dependencies
}

func NewConfirmCommand(deps *Dependencies) *ConfirmCommand {
	return &ConfirmCommand{deps: deps}
}

func (c *ConfirmCommand) Name() string {
	return "confirm"
}

func (c *ConfirmCommand) Description() string {
	return "Asks a yes/no question and waits for your answer"
}

func (c *ConfirmCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Prompter == nil || c.deps.Channel == nil {
		return errDependencies
	}

	question := strings.TrimSpace(getStringParam(params, "question"))
	if question == "" {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("confirm <question>"))
	}

	verdict, err := c.deps.Prompter.Ask(ctx, c.deps.channelFor(cmdCtx), "❓ "+question, prompt.ConfirmOptions{
		Participant: cmdCtx.Sender,
		Timeout:     c.deps.ConfirmTimeout,
	})
	if err != nil {
		c.deps.log().Error("Confirmation failed",
			zap.String("channel_id", cmdCtx.Channel),
			zap.Error(err),
		)
		return c.deps.replyError(ctx, cmdCtx, userMessage(err))
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatVerdict(question, verdict))
}

type QueueCommand struct {
	deps *Dependencies
}

func NewQueueCommand(deps *Dependencies) *QueueCommand {
	return &QueueCommand{deps: deps}
}

func (c *QueueCommand) Name() string {
	return "queue"
}

func (c *QueueCommand) Description() string {
	return "Opens a lobby that others join by typing the trigger phrase"
}

func (c *QueueCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Prompter == nil || c.deps.Channel == nil {
		return errDependencies
	}

	size := getIntParam(params, "size", defaultQueueSize)
	minSize := getIntParam(params, "min", min(defaultQueueMin, size))
	trigger := getStringParam(params, "trigger")
	if trigger == "" {
		trigger = defaultQueueTrigger
	}
	if size < 1 || minSize > size {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("queue [size] [min] [trigger]"))
	}

	players, err := c.deps.Prompter.CollectQueue(ctx, c.deps.channelFor(cmdCtx), cmdCtx.Message, prompt.QueueOptions{
		Trigger: trigger,
		MaxSize: size,
		MinSize: minSize,
		Timeout: c.deps.QueueTimeout,
	})
	switch {
	case stderrors.Is(err, prompt.ErrQueueUnfilled):
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatQueueUnfilled(minSize))
	case err != nil:
		c.deps.log().Error("Queue collection failed",
			zap.String("channel_id", cmdCtx.Channel),
			zap.Error(err),
		)
		return c.deps.replyError(ctx, cmdCtx, userMessage(err))
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatQueue(players, size))
}

// PollCommand is a reaction-driven confirmation: the asker answers by
// clicking one of the reactions the bot adds.
type PollCommand struct {
	deps *Dependencies
}

func NewPollCommand(deps *Dependencies) *PollCommand {
	return &PollCommand{deps: deps}
}

func (c *PollCommand) Name() string {
	return "poll"
}

func (c *PollCommand) Description() string {
	return "Asks a question answered with a reaction"
}

func (c *PollCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Prompter == nil || c.deps.Channel == nil {
		return errDependencies
	}

	question := strings.TrimSpace(getStringParam(params, "question"))
	if question == "" {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("poll <question>"))
	}

	ch := c.deps.channelFor(cmdCtx)
	sent, err := ch.Send(ctx, fmt.Sprintf("📊 %s", question))
	if err != nil {
		return fmt.Errorf("failed to send poll: %w", err)
	}

	choice, err := c.deps.Prompter.AwaitReaction(ctx, ch, sent, prompt.ReactionOptions{
		UserID:  cmdCtx.Sender,
		Emojis:  pollEmojis,
		Timeout: constants.PromptConfig.ReactionTimeout,
	})
	if err != nil {
		c.deps.log().Warn("Poll reaction failed",
			zap.String("channel_id", cmdCtx.Channel),
			zap.Error(err),
		)
		return c.deps.replyError(ctx, cmdCtx, "Reactions are not available here.")
	}

	verdict := domain.VerdictTimeout
	switch choice {
	case pollEmojis[0]:
		verdict = domain.VerdictAffirmative
	case pollEmojis[1]:
		verdict = domain.VerdictNegative
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatVerdict(question, verdict))
}
