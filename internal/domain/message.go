package domain

import "time"

// Message is an incoming or sent chat message, normalised across platforms.
type Message struct {
	ID        string
	ChannelID string
	// GuildID is empty for direct messages.
	GuildID          string
	Author           *User
	Member           *Member
	Content          string
	Mentions         []*User
	MentionedMembers []*Member
	CreatedAt        time.Time
}

// IsDM reports whether the message was sent outside a guild.
func (m *Message) IsDM() bool {
	return m.GuildID == ""
}

// AuthorID returns the author's participant identifier, or "" when unknown.
func (m *Message) AuthorID() string {
	if m == nil || m.Author == nil {
		return ""
	}
	return m.Author.ID
}

// Reaction is a single emoji added to a message by a user.
type Reaction struct {
	MessageID string
	ChannelID string
	UserID    string
	// Emoji is the unicode emoji or the custom emoji name.
	Emoji string
}
