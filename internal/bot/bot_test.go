package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kapu/botkit-go/internal/adapter"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/chat/mocks"
	"github.com/kapu/botkit-go/internal/command"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestBot(t *testing.T, platform chat.Platform, replies chan<- string) *Bot {
	t.Helper()
	formatter := adapter.NewResponseFormatter("!", domain.DefaultVocabulary())
	send := func(_ context.Context, _ string, message string) error {
		replies <- message
		return nil
	}

	registry := command.NewRegistry()
	command.RegisterAll(registry, &command.Dependencies{
		Formatter:   formatter,
		SendMessage: send,
		SendError:   send,
		StartedAt:   time.Now(),
		Logger:      zap.NewNop(),
	})

	b, err := NewBot(&Dependencies{
		Logger:         zap.NewNop(),
		Platform:       platform,
		MessageAdapter: adapter.NewMessageAdapter("!"),
		Formatter:      formatter,
		Registry:       registry,
		Dispatcher:     command.NewSequentialDispatcher(registry),
	})
	require.NoError(t, err)
	return b
}

func TestBotDispatchesCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	hub := chat.NewHub(8, nil)
	opened := make(chan struct{})

	platform.EXPECT().Hub().Return(hub).AnyTimes()
	platform.EXPECT().Name().Return("test").AnyTimes()
	platform.EXPECT().Self().Return(&domain.User{ID: "bot", Bot: true}).AnyTimes()
	platform.EXPECT().Open(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(opened)
		return nil
	})
	platform.EXPECT().Close().Return(nil)

	replies := make(chan string, 4)
	b := newTestBot(t, platform, replies)

	done := make(chan error, 1)
	go func() { done <- b.Start(context.Background()) }()
	<-opened

	hub.PublishMessage(&domain.Message{ChannelID: "c1", Author: &domain.User{ID: "other", Bot: true}, Content: "!roll 1 1"})
	hub.PublishMessage(&domain.Message{ChannelID: "c1", Author: &domain.User{ID: "u1"}, Content: "hello"})
	hub.PublishMessage(&domain.Message{ChannelID: "c1", Author: &domain.User{ID: "u1"}, Content: "!roll 5 5"})

	select {
	case reply := <-replies:
		require.Equal(t, "🎲 5", reply)
	case <-time.After(2 * time.Second):
		t.Fatal("no reply")
	}

	require.NoError(t, b.Shutdown(context.Background()))
	require.NoError(t, <-done)
	require.Empty(t, replies)
}

func TestBotStartFailsWhenPlatformDoesNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)

	platform.EXPECT().Hub().Return(chat.NewHub(8, nil)).AnyTimes()
	platform.EXPECT().Name().Return("test").AnyTimes()
	platform.EXPECT().Open(gomock.Any()).Return(errors.New("no route"))

	b := newTestBot(t, platform, make(chan string, 1))
	err := b.Start(context.Background())
	require.ErrorContains(t, err, "no route")
	require.NoError(t, b.Shutdown(context.Background()))
}

func TestNewBotRequiresDependencies(t *testing.T) {
	_, err := NewBot(&Dependencies{})
	require.Error(t, err)
}
