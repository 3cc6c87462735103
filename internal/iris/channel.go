package iris

import (
	"context"
	"time"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
)

// Channel is a KakaoTalk room reached through Iris.
type Channel struct {
	room   string
	client *Client
	hub    *chat.Hub
	self   *domain.User
}

func (c *Channel) ID() string { return c.room }

func (c *Channel) Send(ctx context.Context, text string) (*domain.Message, error) {
	if err := c.client.SendMessage(ctx, c.room, text); err != nil {
		return nil, err
	}
	// Iris does not echo message ids for replies.
	return &domain.Message{
		ChannelID: c.room,
		GuildID:   c.room,
		Author:    c.self,
		Content:   text,
		CreatedAt: time.Now(),
	}, nil
}

func (c *Channel) React(context.Context, *domain.Message, string) error {
	return chat.ErrReactionsUnsupported
}

func (c *Channel) SubscribeMessages() (<-chan *domain.Message, func()) {
	return c.hub.SubscribeMessages(c.room)
}

func (c *Channel) SubscribeReactions() (<-chan *domain.Reaction, func()) {
	return c.hub.SubscribeReactions(c.room)
}
