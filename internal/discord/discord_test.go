package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestToMessageFillsMemberUser(t *testing.T) {
	author := &discordgo.User{ID: "1", Username: "alice", Discriminator: "0", GlobalName: "Alice"}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	msg := toMessage(&discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   "!whois bob",
		Timestamp: at,
		Author:    author,
		Member:    &discordgo.Member{Nick: "Al"},
		Mentions:  []*discordgo.User{{ID: "2", Username: "bob"}},
	})

	require.Equal(t, "1", msg.AuthorID())
	require.Equal(t, "g1", msg.Member.GuildID)
	require.Equal(t, "Al", msg.Member.DisplayName())
	require.Equal(t, "1", msg.Member.ID())
	require.Equal(t, "alice", msg.Author.Tag())
	require.Len(t, msg.Mentions, 1)
	require.Equal(t, at, msg.CreatedAt)
}

func TestToMessageDirectMessageHasNoMember(t *testing.T) {
	msg := toMessage(&discordgo.Message{ID: "m1", ChannelID: "dm", Author: &discordgo.User{ID: "1"}})

	require.True(t, msg.IsDM())
	require.Nil(t, msg.Member)
}

func TestEmojiRoundTrip(t *testing.T) {
	tests := []struct {
		emoji discordgo.Emoji
		text  string
		api   string
	}{
		{discordgo.Emoji{Name: "✅"}, "✅", "✅"},
		{discordgo.Emoji{Name: "pog", ID: "123"}, "<:pog:123>", "pog:123"},
		{discordgo.Emoji{Name: "wave", ID: "456", Animated: true}, "<a:wave:456>", "wave:456"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.text, emojiString(tt.emoji))
		require.Equal(t, tt.api, apiEmoji(tt.text))
		require.Equal(t, tt.emoji.ID != "", isCustomEmoji(tt.text))
	}
}

func TestChannelPermissions(t *testing.T) {
	ctx := context.Background()
	withPerms := func(bits int64, err error) *Channel {
		return &Channel{id: "c1", guildID: "g1", permissions: func() (int64, error) { return bits, err }}
	}

	ch := withPerms(discordgo.PermissionAddReactions|discordgo.PermissionReadMessageHistory, nil)
	require.True(t, ch.CanReact(ctx))
	require.False(t, ch.CanUseExternalEmoji(ctx))
	require.False(t, ch.IsDM())

	require.False(t, withPerms(discordgo.PermissionAddReactions, nil).CanReact(ctx))
	require.True(t, withPerms(discordgo.PermissionAdministrator, nil).CanUseExternalEmoji(ctx))
	require.False(t, withPerms(0, errors.New("unknown channel")).CanReact(ctx))

	require.True(t, (&Channel{id: "dm"}).IsDM())
}
