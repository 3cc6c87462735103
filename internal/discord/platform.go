package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
	"go.uber.org/zap"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsDirectMessageReactions |
	discordgo.IntentsMessageContent

// Platform connects the bot to Discord over the gateway.
type Platform struct {
	session  *discordgo.Session
	hub      *chat.Hub
	provider *Provider
	logger   *zap.Logger

	removeHandlers []func()
	closeOnce      sync.Once
}

func NewPlatform(token string, hub *chat.Hub, logger *zap.Logger) (*Platform, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = intents
	session.State.TrackMembers = true

	return &Platform{
		session:  session,
		hub:      hub,
		provider: NewProvider(session, logger),
		logger:   logger,
	}, nil
}

func (p *Platform) Name() string { return "discord" }

func (p *Platform) Open(ctx context.Context) error {
	p.removeHandlers = append(p.removeHandlers,
		p.session.AddHandler(p.onMessageCreate),
		p.session.AddHandler(p.onReactionAdd),
	)

	if err := p.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	self := p.Self()
	p.logger.Info("Discord platform opened",
		zap.String("user", self.Tag()),
		zap.Int("guilds", len(p.session.State.Guilds)),
	)

	go func() {
		if err := p.provider.WarmUp(ctx, 4); err != nil {
			p.logger.Warn("Guild member warm-up failed", zap.Error(err))
		}
	}()
	return nil
}

func (p *Platform) Close() error {
	var err error
	p.closeOnce.Do(func() {
		for _, remove := range p.removeHandlers {
			remove()
		}
		err = p.session.Close()
	})
	return err
}

func (p *Platform) Hub() *chat.Hub { return p.hub }

func (p *Platform) Provider() *Provider { return p.provider }

func (p *Platform) Self() *domain.User {
	if p.session.State == nil || p.session.State.User == nil {
		return nil
	}
	return toUser(p.session.State.User)
}

func (p *Platform) Channel(channelID, guildID string) chat.Channel {
	return &Channel{
		id:      channelID,
		guildID: guildID,
		session: p.session,
		hub:     p.hub,
		permissions: func() (int64, error) {
			self := p.session.State.User
			if self == nil {
				return 0, fmt.Errorf("discord session is not ready")
			}
			return p.session.State.UserChannelPermissions(self.ID, channelID)
		},
	}
}

func (p *Platform) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	msg := toMessage(m.Message)
	if msg == nil || msg.Author == nil {
		return
	}
	for _, u := range m.Mentions {
		if msg.GuildID == "" {
			break
		}
		if member, err := p.session.State.Member(msg.GuildID, u.ID); err == nil {
			msg.MentionedMembers = append(msg.MentionedMembers, toMember(msg.GuildID, member, u))
		}
	}
	p.hub.PublishMessage(msg)
}

func (p *Platform) onReactionAdd(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.MessageReaction == nil {
		return
	}
	p.hub.PublishReaction(&domain.Reaction{
		MessageID: r.MessageID,
		ChannelID: r.ChannelID,
		UserID:    r.UserID,
		Emoji:     emojiString(r.Emoji),
	})
}
