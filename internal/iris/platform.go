package iris

import (
	"context"
	"fmt"
	"slices"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
	"go.uber.org/zap"
)

// Platform connects the bot to KakaoTalk through an Iris bridge.
type Platform struct {
	client *Client
	ws     *WebSocket
	hub    *chat.Hub
	roster *Roster
	rooms  []string
	self   *domain.User
	logger *zap.Logger
}

type PlatformConfig struct {
	BaseURL string
	WSURL   string
	// Rooms restricts which rooms are delivered. Empty means all.
	Rooms []string
}

func NewPlatform(cfg PlatformConfig, hub *chat.Hub, roster *Roster, logger *zap.Logger) *Platform {
	p := &Platform{
		client: NewClient(cfg.BaseURL, logger),
		hub:    hub,
		roster: roster,
		rooms:  cfg.Rooms,
		self:   &domain.User{ID: "iris", Username: "iris", Bot: true},
		logger: logger,
	}
	p.ws = NewWebSocket(cfg.WSURL, p.handleMessage, logger)
	return p
}

func (p *Platform) Name() string { return "iris" }

func (p *Platform) Open(ctx context.Context) error {
	cfg, err := p.client.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("iris is not reachable: %w", err)
	}
	if cfg.BotID != "" {
		p.self = &domain.User{ID: cfg.BotID, Username: cfg.BotName, Bot: true}
	}

	if err := p.ws.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect iris websocket: %w", err)
	}
	p.logger.Info("Iris platform opened", zap.Strings("rooms", p.rooms))
	return nil
}

func (p *Platform) Close() error {
	return p.ws.Disconnect()
}

func (p *Platform) Hub() *chat.Hub { return p.hub }

func (p *Platform) Roster() *Roster { return p.roster }

func (p *Platform) Self() *domain.User { return p.self }

func (p *Platform) Channel(channelID, _ string) chat.Channel {
	return &Channel{room: channelID, client: p.client, hub: p.hub, self: p.self}
}

func (p *Platform) handleMessage(frame *Message) {
	msg := frame.ToDomain()
	if msg == nil {
		return
	}
	if len(p.rooms) > 0 && !slices.Contains(p.rooms, msg.ChannelID) {
		return
	}
	if msg.Author.ID == p.self.ID {
		msg.Author.Bot = true
	}

	if p.roster != nil {
		p.roster.Observe(context.Background(), msg)
	}
	p.hub.PublishMessage(msg)
}
