package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/botkit-go/internal/adapter"
	"github.com/kapu/botkit-go/internal/bot"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/command"
	"github.com/kapu/botkit-go/internal/config"
	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/directory"
	"github.com/kapu/botkit-go/internal/discord"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/iris"
	"github.com/kapu/botkit-go/internal/prompt"
	"github.com/kapu/botkit-go/internal/service/cache"
	"github.com/kapu/botkit-go/internal/store"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components like Bot.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles all infrastructure services and returns a container capable of
// creating fully-wired bots. Connections to redis and the document store are
// opened here; the chat platform is opened by Bot.Start.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Optional cache
	var cacheSvc *cache.Service
	if cfg.Redis.Enabled {
		cacheSvc, err = cache.NewService(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	}

	// Document store
	docStore, err := store.Connect(ctx, store.Config{
		URI:      cfg.Store.URI,
		Database: cfg.Store.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect document store: %w", err)
	}
	closers = append(closers, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = docStore.Close(closeCtx)
	})

	// Chat platform and member directory
	hub := chat.NewHub(chat.DefaultSubscriberBuffer, logger)
	platform, provider, err := newPlatform(cfg, hub, cacheSvc, logger)
	if err != nil {
		return nil, err
	}
	members := directory.New(provider, directory.Config{
		Cache: cacheSvc,
		TTL:   constants.RedisConfig.DirectoryTTL,
	}, logger)

	vocab := domain.DefaultVocabulary().Extend(cfg.Prompt.ExtraYes, cfg.Prompt.ExtraNo)
	prompter := prompt.NewPrompter(prompt.Config{
		Vocabulary:     vocab,
		ConfirmTimeout: cfg.Prompt.ConfirmTimeout,
		QueueTimeout:   cfg.Prompt.QueueTimeout,
	}, logger)

	messageAdapter := adapter.NewMessageAdapter(cfg.Bot.Prefix)
	formatter := adapter.NewResponseFormatter(cfg.Bot.Prefix, vocab)

	send := func(ctx context.Context, channelID, message string) error {
		_, err := platform.Channel(channelID, "").Send(ctx, message)
		return err
	}

	registry := command.NewRegistry()
	command.RegisterAll(registry, &command.Dependencies{
		Prompter:       prompter,
		Directory:      members,
		Store:          docStore,
		Formatter:      formatter,
		Channel:        platform.Channel,
		SendMessage:    send,
		SendError:      send,
		ConfirmTimeout: cfg.Prompt.ConfirmTimeout,
		QueueTimeout:   cfg.Prompt.QueueTimeout,
		StartedAt:      time.Now(),
		Logger:         logger,
	})

	logger.Info("Services assembled",
		zap.String("platform", platform.Name()),
		zap.Bool("redis", cacheSvc != nil),
		zap.Int("commands", registry.Count()),
	)

	deps := &bot.Dependencies{
		Config:         cfg,
		Logger:         logger,
		Platform:       platform,
		MessageAdapter: messageAdapter,
		Formatter:      formatter,
		Registry:       registry,
		Dispatcher:     command.NewSequentialDispatcher(registry),
		Store:          docStore,
		Cache:          cacheSvc,
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		botDeps: deps,
	}, nil
}

func newPlatform(cfg *config.Config, hub *chat.Hub, cacheSvc *cache.Service, logger *zap.Logger) (chat.Platform, directory.Provider, error) {
	switch cfg.Bot.Platform {
	case "discord":
		platform, err := discord.NewPlatform(cfg.Discord.Token, hub, logger)
		if err != nil {
			return nil, nil, err
		}
		return platform, platform.Provider(), nil
	case "iris":
		roster := iris.NewRoster(cacheSvc, logger)
		platform := iris.NewPlatform(iris.PlatformConfig{
			BaseURL: cfg.Iris.BaseURL,
			WSURL:   cfg.Iris.WSURL,
			Rooms:   cfg.Iris.Rooms,
		}, hub, roster, logger)
		return platform, roster, nil
	default:
		return nil, nil, fmt.Errorf("unsupported platform %q", cfg.Bot.Platform)
	}
}
