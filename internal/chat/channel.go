//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=mocks/mock_channel.go -package=mocks
package chat

import (
	"context"
	"errors"

	"github.com/kapu/botkit-go/internal/domain"
)

// ErrReactionsUnsupported is returned by platforms that cannot react to messages.
var ErrReactionsUnsupported = errors.New("reactions are not supported by this platform")

// Channel is a single conversation on a host platform: a Discord text channel
// or DM, a KakaoTalk room.
type Channel interface {
	ID() string
	Send(ctx context.Context, text string) (*domain.Message, error)
	React(ctx context.Context, msg *domain.Message, emoji string) error
	// SubscribeMessages streams messages posted in this channel until the
	// returned cancel func is called.
	SubscribeMessages() (<-chan *domain.Message, func())
	SubscribeReactions() (<-chan *domain.Reaction, func())
}

// PermissionChecker is implemented by channels that can report the bot's own
// permissions. Channels that do not implement it are treated as permissive.
type PermissionChecker interface {
	IsDM() bool
	CanReact(ctx context.Context) bool
	CanUseExternalEmoji(ctx context.Context) bool
}

// Platform is a connected host chat platform.
type Platform interface {
	Name() string
	Open(ctx context.Context) error
	Close() error
	Hub() *Hub
	Channel(channelID, guildID string) Channel
	// Self is the bot's own account, nil before Open.
	Self() *domain.User
}
