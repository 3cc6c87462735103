package domain

import "strings"

// User is a chat platform account. ID is the opaque participant identifier.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"globalName,omitempty"`
	Bot           bool   `json:"bot,omitempty"`
}

// Tag returns "username#discriminator", or the bare username on platforms
// (and Discord accounts) without discriminators.
func (u *User) Tag() string {
	if u == nil {
		return ""
	}
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

// Mention renders the platform-neutral mention used in replies.
func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	return "<@" + u.ID + ">"
}

// Member is a User seen through a guild (server, room).
type Member struct {
	GuildID string `json:"guildId"`
	Nick    string `json:"nick,omitempty"`
	User    *User  `json:"user"`
}

// DisplayName prefers the guild nickname, then the global name, then the username.
func (m *Member) DisplayName() string {
	if m == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

// ID returns the member's user ID.
func (m *Member) ID() string {
	if m == nil || m.User == nil {
		return ""
	}
	return m.User.ID
}

// Matches reports whether the lower-cased query is contained in the display
// name or the tag. An empty query never matches.
func (m *Member) Matches(query string) bool {
	if query == "" || m == nil {
		return false
	}
	return strings.Contains(strings.ToLower(m.DisplayName()), query) ||
		strings.Contains(strings.ToLower(m.User.Tag()), query)
}

// Matches reports whether the lower-cased query is contained in the username or tag.
func (u *User) Matches(query string) bool {
	if query == "" || u == nil {
		return false
	}
	return strings.Contains(strings.ToLower(u.Username), query) ||
		strings.Contains(strings.ToLower(u.Tag()), query)
}
