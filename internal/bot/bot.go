package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kapu/botkit-go/internal/adapter"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/command"
	"github.com/kapu/botkit-go/internal/config"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/service/cache"
	"github.com/kapu/botkit-go/internal/store"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Dependencies is everything a Bot needs; app.Build assembles it.
type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	Platform       chat.Platform
	MessageAdapter *adapter.MessageAdapter
	Formatter      *adapter.ResponseFormatter
	Registry       *command.Registry
	Dispatcher     command.Dispatcher
	Store          store.Store
	// Cache is nil when redis is disabled.
	Cache *cache.Service
}

type Bot struct {
	deps   *Dependencies
	logger *zap.Logger

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	handlers conc.WaitGroup
	loopDone chan struct{}
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil || deps.Platform == nil || deps.MessageAdapter == nil || deps.Dispatcher == nil {
		return nil, fmt.Errorf("bot dependencies not satisfied")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{deps: deps, logger: logger}, nil
}

// Start opens the platform and handles commands until ctx is cancelled or
// Shutdown is called.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return fmt.Errorf("bot already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.running = true
	b.loopDone = make(chan struct{})
	b.mu.Unlock()

	messages, unsubscribe := b.deps.Platform.Hub().SubscribeMessages("")
	defer unsubscribe()

	if err := b.deps.Platform.Open(ctx); err != nil {
		cancel()
		close(b.loopDone)
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
		return fmt.Errorf("failed to open %s platform: %w", b.deps.Platform.Name(), err)
	}

	b.logger.Info("Bot is listening",
		zap.String("platform", b.deps.Platform.Name()),
		zap.Int("commands", b.deps.Registry.Count()),
	)

	defer close(b.loopDone)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *domain.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}
	if self := b.deps.Platform.Self(); self != nil && self.ID == msg.Author.ID {
		return
	}

	parsed := b.deps.MessageAdapter.ParseMessage(msg)
	if parsed.Type == domain.CommandUnknown {
		return
	}

	cmdCtx := domain.NewCommandContext(msg)
	b.logger.Debug("Command received",
		zap.String("command", parsed.Type.String()),
		zap.String("channel_id", cmdCtx.Channel),
		zap.String("sender", cmdCtx.Sender),
	)

	// Prompts block for their whole window, so each command gets its own goroutine.
	b.handlers.Go(func() {
		event := command.CommandEvent{Type: parsed.Type, Params: parsed.Params}
		if _, err := b.deps.Dispatcher.Publish(ctx, cmdCtx, event); err != nil {
			b.logger.Error("Command failed",
				zap.String("command", parsed.Type.String()),
				zap.String("channel_id", cmdCtx.Channel),
				zap.Error(err),
			)
			b.sendError(ctx, cmdCtx)
		}
	})
}

func (b *Bot) sendError(ctx context.Context, cmdCtx *domain.CommandContext) {
	if ctx.Err() != nil || b.deps.Formatter == nil {
		return
	}
	ch := b.deps.Platform.Channel(cmdCtx.Channel, cmdCtx.Guild)
	if _, err := ch.Send(ctx, b.deps.Formatter.FormatError("Something went wrong")); err != nil {
		b.logger.Warn("Failed to report command error", zap.Error(err))
	}
}

// Shutdown stops the loop, waits for running commands and releases the
// platform and backing services.
func (b *Bot) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	running := b.running
	cancel := b.cancel
	loopDone := b.loopDone
	b.running = false
	b.mu.Unlock()

	if !running {
		return nil
	}
	cancel()

	waited := make(chan struct{})
	go func() {
		<-loopDone
		b.handlers.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-ctx.Done():
		b.logger.Warn("Shutdown timed out waiting for commands")
	}

	var firstErr error
	if err := b.deps.Platform.Close(); err != nil {
		firstErr = err
	}
	b.deps.Platform.Hub().Close()

	if b.deps.Store != nil {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := b.deps.Store.Close(closeCtx); err != nil && firstErr == nil {
			firstErr = err
		}
		closeCancel()
	}
	if b.deps.Cache != nil {
		if err := b.deps.Cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	b.logger.Info("Bot stopped")
	return firstErr
}
