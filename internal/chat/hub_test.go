package chat

import (
	"testing"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestHubRoutesByChannel(t *testing.T) {
	hub := NewHub(4, nil)
	general, cancelGeneral := hub.SubscribeMessages("general")
	defer cancelGeneral()
	all, cancelAll := hub.SubscribeMessages("")
	defer cancelAll()

	hub.PublishMessage(&domain.Message{ID: "1", ChannelID: "general"})
	hub.PublishMessage(&domain.Message{ID: "2", ChannelID: "random"})

	require.Equal(t, "1", (<-general).ID)
	require.Len(t, general, 0)
	require.Equal(t, "1", (<-all).ID)
	require.Equal(t, "2", (<-all).ID)
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub(1, nil)
	ch, cancel := hub.SubscribeReactions("c")
	defer cancel()

	hub.PublishReaction(&domain.Reaction{ChannelID: "c", Emoji: "a"})
	hub.PublishReaction(&domain.Reaction{ChannelID: "c", Emoji: "b"})

	require.Equal(t, "a", (<-ch).Emoji)
	require.Len(t, ch, 0)
}

func TestHubCancelAndCloseAreIdempotent(t *testing.T) {
	hub := NewHub(1, nil)
	ch, cancel := hub.SubscribeMessages("c")

	hub.Close()
	cancel()
	cancel()

	_, open := <-ch
	require.False(t, open)
	messages, reactions := hub.Subscribers()
	require.Zero(t, messages)
	require.Zero(t, reactions)
}
