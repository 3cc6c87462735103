package iris

import (
	"strconv"
	"strings"
	"time"

	"github.com/kapu/botkit-go/internal/domain"
)

type Config struct {
	Port              int    `json:"port"`
	PollingSpeed      int    `json:"pollingSpeed"`
	MessageRate       int    `json:"messageRate"`
	WebserverEndpoint string `json:"webserverEndpoint"`
	BotName           string `json:"botName,omitempty"`
	BotID             string `json:"botId,omitempty"`
}

type ReplyRequest struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Data string `json:"data"`
}

// Message is one event frame from the Iris websocket.
type Message struct {
	Msg    string       `json:"msg"`
	Room   string       `json:"room"`
	Sender *string      `json:"sender,omitempty"`
	JSON   *MessageJSON `json:"json,omitempty"`
}

type MessageJSON struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Message   string `json:"message,omitempty"`
	ChatID    string `json:"chat_id,omitempty"`
	Type      string `json:"type,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToDomain converts an Iris frame into a platform-neutral message. KakaoTalk
// rooms double as guilds so member lookups stay scoped to the room.
// It returns nil for frames without a room or sender id.
func (m *Message) ToDomain() *domain.Message {
	if m == nil || m.JSON == nil {
		return nil
	}
	room := m.JSON.ChatID
	if room == "" {
		room = m.Room
	}
	if room == "" || m.JSON.UserID == "" {
		return nil
	}

	name := m.JSON.UserID
	if m.Sender != nil && strings.TrimSpace(*m.Sender) != "" {
		name = strings.TrimSpace(*m.Sender)
	}
	author := &domain.User{ID: m.JSON.UserID, Username: name}

	content := m.Msg
	if content == "" {
		content = m.JSON.Message
	}

	id := m.JSON.ID
	if id == "" {
		id = room + ":" + m.JSON.UserID + ":" + m.JSON.CreatedAt
	}

	return &domain.Message{
		ID:        id,
		ChannelID: room,
		GuildID:   room,
		Author:    author,
		Member:    &domain.Member{GuildID: room, User: author},
		Content:   content,
		CreatedAt: parseCreatedAt(m.JSON.CreatedAt),
	}
}

// created_at is unix seconds as a string
func parseCreatedAt(raw string) time.Time {
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sec <= 0 {
		return time.Now()
	}
	return time.Unix(sec, 0)
}

type WebSocketState string

const (
	WSStateConnecting   WebSocketState = "CONNECTING"
	WSStateConnected    WebSocketState = "CONNECTED"
	WSStateDisconnected WebSocketState = "DISCONNECTED"
	WSStateReconnecting WebSocketState = "RECONNECTING"
	WSStateFailed       WebSocketState = "FAILED"
)

func (s WebSocketState) String() string {
	return string(s)
}
