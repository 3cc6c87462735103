package prompt

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
	"go.uber.org/zap"
)

// ReactIfAble reacts to msg when the bot is allowed to. Without permission to
// use external emoji the fallback is used instead. Failures are logged and
// swallowed; the result reports whether a reaction was placed.
func (p *Prompter) ReactIfAble(ctx context.Context, ch chat.Channel, msg *domain.Message, emoji, fallback string) bool {
	if msg == nil {
		return false
	}
	if emoji == "" {
		emoji = fallback
	}

	if checker, ok := ch.(chat.PermissionChecker); ok && !checker.IsDM() {
		if fallback != "" && !checker.CanUseExternalEmoji(ctx) {
			emoji = fallback
		}
		if !checker.CanReact(ctx) {
			p.logger.Debug("Skipping reaction without permission",
				zap.String("channel_id", ch.ID()),
				zap.String("message_id", msg.ID),
			)
			return false
		}
	}

	if err := ch.React(ctx, msg, emoji); err != nil {
		p.logger.Debug("Reaction failed",
			zap.String("channel_id", ch.ID()),
			zap.String("message_id", msg.ID),
			zap.String("emoji", emoji),
			zap.Error(err),
		)
		return false
	}
	return true
}

// ReactionOptions describe a reaction-based prompt.
type ReactionOptions struct {
	// UserID is the only user whose reaction counts.
	UserID  string
	Emojis  []string
	Timeout time.Duration
}

// AwaitReaction adds each emoji to msg in order, then waits for UserID to
// pick one of them. It returns the chosen emoji, or "" when the window closes.
func (p *Prompter) AwaitReaction(ctx context.Context, ch chat.Channel, msg *domain.Message, opts ReactionOptions) (string, error) {
	if msg == nil || len(opts.Emojis) == 0 {
		return "", nil
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = p.reactionTimeout
	}

	valid := make(map[string]struct{}, len(opts.Emojis))
	for _, emoji := range opts.Emojis {
		valid[emoji] = struct{}{}
	}

	reactions, cancel := ch.SubscribeReactions()
	defer cancel()

	for _, emoji := range opts.Emojis {
		if err := ch.React(ctx, msg, emoji); err != nil {
			return "", fmt.Errorf("failed to add prompt reaction %s: %w", emoji, err)
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
			return "", nil
		case reaction, ok := <-reactions:
			if !ok {
				return "", ErrSubscriptionClosed
			}
			if reaction.MessageID != msg.ID || reaction.UserID != opts.UserID {
				continue
			}
			if _, ok := valid[reaction.Emoji]; ok {
				return reaction.Emoji, nil
			}
		}
	}
}
