package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
)

// Channel is a Discord text channel or DM.
type Channel struct {
	id      string
	guildID string
	session *discordgo.Session
	hub     *chat.Hub
	// permissions returns the bot's permission bits in this channel.
	permissions func() (int64, error)
}

var (
	_ chat.Channel           = (*Channel)(nil)
	_ chat.PermissionChecker = (*Channel)(nil)
)

func (c *Channel) ID() string { return c.id }

func (c *Channel) Send(_ context.Context, text string) (*domain.Message, error) {
	sent, err := c.session.ChannelMessageSend(c.id, text)
	if err != nil {
		return nil, err
	}
	return toMessage(sent), nil
}

func (c *Channel) React(_ context.Context, msg *domain.Message, emoji string) error {
	return c.session.MessageReactionAdd(c.id, msg.ID, apiEmoji(emoji))
}

func (c *Channel) SubscribeMessages() (<-chan *domain.Message, func()) {
	return c.hub.SubscribeMessages(c.id)
}

func (c *Channel) SubscribeReactions() (<-chan *domain.Reaction, func()) {
	return c.hub.SubscribeReactions(c.id)
}

func (c *Channel) IsDM() bool { return c.guildID == "" }

// CanReact requires both add-reactions and read-history, as Discord does for
// reacting to older messages.
func (c *Channel) CanReact(context.Context) bool {
	return c.has(discordgo.PermissionAddReactions | discordgo.PermissionReadMessageHistory)
}

func (c *Channel) CanUseExternalEmoji(context.Context) bool {
	return c.has(discordgo.PermissionUseExternalEmojis)
}

func (c *Channel) has(bits int64) bool {
	if c.permissions == nil {
		return false
	}
	perms, err := c.permissions()
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&bits == bits
}
