package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/samber/lo"
)

func toUser(u *discordgo.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		GlobalName:    u.GlobalName,
		Bot:           u.Bot,
	}
}

func toMember(guildID string, m *discordgo.Member, fallback *discordgo.User) *domain.Member {
	if m == nil {
		return nil
	}
	user := m.User
	if user == nil {
		user = fallback
	}
	if m.GuildID != "" {
		guildID = m.GuildID
	}
	return &domain.Member{GuildID: guildID, Nick: m.Nick, User: toUser(user)}
}

func toMessage(m *discordgo.Message) *domain.Message {
	if m == nil {
		return nil
	}
	msg := &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Author:    toUser(m.Author),
		Content:   m.Content,
		CreatedAt: m.Timestamp,
		Mentions: lo.Map(m.Mentions, func(u *discordgo.User, _ int) *domain.User {
			return toUser(u)
		}),
	}
	if m.GuildID != "" {
		// MessageCreate carries the author's member without its user.
		msg.Member = toMember(m.GuildID, m.Member, m.Author)
	}
	return msg
}

// emojiString renders a reaction emoji the way callers write it: the unicode
// character, or <:name:id> / <a:name:id> for custom emoji.
func emojiString(e discordgo.Emoji) string {
	if e.ID == "" {
		return e.Name
	}
	prefix := "<:"
	if e.Animated {
		prefix = "<a:"
	}
	return prefix + e.Name + ":" + e.ID + ">"
}

// apiEmoji converts <:name:id> into the name:id form the reaction endpoint expects.
func apiEmoji(emoji string) string {
	if !isCustomEmoji(emoji) {
		return emoji
	}
	inner := strings.TrimSuffix(emoji[1:], ">")
	inner = strings.TrimPrefix(inner, "a:")
	return strings.TrimPrefix(inner, ":")
}

func isCustomEmoji(emoji string) bool {
	return strings.HasPrefix(emoji, "<") && strings.HasSuffix(emoji, ">")
}
