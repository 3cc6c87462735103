package prompt

import (
	"context"
	"sync"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
)

type fakeChannel struct {
	id  string
	hub *chat.Hub

	mu        sync.Mutex
	sent      []string
	reactions []string
	reactErr  error

	// published right after the matching subscribe / send call
	onSubscribe         []*domain.Message
	onSend              []*domain.Message
	onReactionSubscribe []*domain.Reaction
}

func newFakeChannel(id string) *fakeChannel {
	return &fakeChannel{id: id, hub: chat.NewHub(64, nil)}
}

func (f *fakeChannel) ID() string { return f.id }

func (f *fakeChannel) Send(_ context.Context, text string) (*domain.Message, error) {
	f.mu.Lock()
	f.sent = append(f.sent, text)
	f.mu.Unlock()

	for _, msg := range f.onSend {
		f.hub.PublishMessage(msg)
	}
	return &domain.Message{ID: "sent", ChannelID: f.id, Content: text}, nil
}

func (f *fakeChannel) React(_ context.Context, msg *domain.Message, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reactErr != nil {
		return f.reactErr
	}
	f.reactions = append(f.reactions, msg.ID+":"+emoji)
	return nil
}

func (f *fakeChannel) SubscribeMessages() (<-chan *domain.Message, func()) {
	ch, cancel := f.hub.SubscribeMessages(f.id)
	for _, msg := range f.onSubscribe {
		f.hub.PublishMessage(msg)
	}
	return ch, cancel
}

func (f *fakeChannel) SubscribeReactions() (<-chan *domain.Reaction, func()) {
	ch, cancel := f.hub.SubscribeReactions(f.id)
	for _, reaction := range f.onReactionSubscribe {
		f.hub.PublishReaction(reaction)
	}
	return ch, cancel
}

func (f *fakeChannel) sentMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func (f *fakeChannel) placedReactions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reactions...)
}

type permissionChannel struct {
	*fakeChannel
	dm       bool
	canReact bool
	external bool
}

func (p *permissionChannel) IsDM() bool { return p.dm }
func (p *permissionChannel) CanReact(context.Context) bool { return p.canReact }
func (p *permissionChannel) CanUseExternalEmoji(context.Context) bool { return p.external }

func say(channelID, authorID, content string) *domain.Message {
	return &domain.Message{
		ID:        authorID + ":" + content,
		ChannelID: channelID,
		Author:    &domain.User{ID: authorID, Username: authorID},
		Content:   content,
	}
}

func sayAsBot(channelID, authorID, content string) *domain.Message {
	msg := say(channelID, authorID, content)
	msg.Author.Bot = true
	return msg
}
