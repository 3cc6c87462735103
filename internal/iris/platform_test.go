package iris

import (
	"context"
	"testing"
	"time"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestMessageToDomain(t *testing.T) {
	frame := &Message{
		Msg:    "!help",
		Room:   "Room Name",
		Sender: strPtr(" 홍길동 "),
		JSON: &MessageJSON{
			ID:        "m1",
			UserID:    "u1",
			ChatID:    "room-1",
			CreatedAt: "1700000000",
		},
	}

	msg := frame.ToDomain()

	require.Equal(t, "m1", msg.ID)
	require.Equal(t, "room-1", msg.ChannelID)
	require.Equal(t, "room-1", msg.GuildID)
	require.Equal(t, "홍길동", msg.Author.Username)
	require.Equal(t, "u1", msg.Member.ID())
	require.Equal(t, "!help", msg.Content)
	require.Equal(t, int64(1700000000), msg.CreatedAt.Unix())
}

func TestMessageToDomainRejectsIncompleteFrames(t *testing.T) {
	require.Nil(t, (&Message{Msg: "hi"}).ToDomain())
	require.Nil(t, (&Message{Msg: "hi", JSON: &MessageJSON{ChatID: "room-1"}}).ToDomain())
}

func TestPlatformPublishesAllowedRooms(t *testing.T) {
	hub := chat.NewHub(4, zap.NewNop())
	roster := NewRoster(nil, zap.NewNop())
	p := NewPlatform(PlatformConfig{Rooms: []string{"room-1"}}, hub, roster, zap.NewNop())

	stream, cancel := p.Channel("room-1", "").SubscribeMessages()
	defer cancel()

	p.handleMessage(&Message{Msg: "ignored", JSON: &MessageJSON{UserID: "u1", ChatID: "room-2"}})
	p.handleMessage(&Message{Msg: "hello", Sender: strPtr("kim"), JSON: &MessageJSON{UserID: "u1", ChatID: "room-1"}})

	select {
	case msg := <-stream:
		require.Equal(t, "hello", msg.Content)
	case <-time.After(time.Second):
		t.Fatal("message was not published")
	}

	member, err := roster.Member(context.Background(), "room-1", "u1")
	require.NoError(t, err)
	require.Equal(t, "kim", member.DisplayName())
}

func TestChannelReactIsUnsupported(t *testing.T) {
	p := NewPlatform(PlatformConfig{}, chat.NewHub(1, nil), nil, zap.NewNop())

	err := p.Channel("room-1", "").React(context.Background(), nil, "✅")

	require.ErrorIs(t, err, chat.ErrReactionsUnsupported)
}
