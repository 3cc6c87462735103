package chat

import (
	"sync"

	"github.com/kapu/botkit-go/internal/domain"
	"go.uber.org/zap"
)

// DefaultSubscriberBuffer is the per-subscriber queue length.
const DefaultSubscriberBuffer = 64

type messageSubscriber struct {
	channelID string
	ch        chan *domain.Message
}

type reactionSubscriber struct {
	channelID string
	ch        chan *domain.Reaction
}

// Hub fans platform events out to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu                  sync.RWMutex
	nextID              int
	messageSubscribers  map[int]*messageSubscriber
	reactionSubscribers map[int]*reactionSubscriber
	buffer              int
	logger              *zap.Logger
}

func NewHub(buffer int, logger *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		nextID:              1,
		messageSubscribers:  make(map[int]*messageSubscriber),
		reactionSubscribers: make(map[int]*reactionSubscriber),
		buffer:              buffer,
		logger:              logger,
	}
}

// SubscribeMessages registers for messages in channelID; an empty channelID
// receives every channel.
func (h *Hub) SubscribeMessages(channelID string) (<-chan *domain.Message, func()) {
	sub := &messageSubscriber{channelID: channelID, ch: make(chan *domain.Message, h.buffer)}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.messageSubscribers[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.messageSubscribers[id]; ok {
				delete(h.messageSubscribers, id)
				close(sub.ch)
			}
			h.mu.Unlock()
		})
	}
}

// SubscribeReactions registers for reactions in channelID; empty means all.
func (h *Hub) SubscribeReactions(channelID string) (<-chan *domain.Reaction, func()) {
	sub := &reactionSubscriber{channelID: channelID, ch: make(chan *domain.Reaction, h.buffer)}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.reactionSubscribers[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.reactionSubscribers[id]; ok {
				delete(h.reactionSubscribers, id)
				close(sub.ch)
			}
			h.mu.Unlock()
		})
	}
}

func (h *Hub) PublishMessage(msg *domain.Message) {
	if msg == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.messageSubscribers {
		if sub.channelID != "" && sub.channelID != msg.ChannelID {
			continue
		}
		select {
		case sub.ch <- msg:
		default:
			h.logger.Warn("Dropping message for slow subscriber",
				zap.String("channel_id", msg.ChannelID),
				zap.String("message_id", msg.ID),
			)
		}
	}
}

func (h *Hub) PublishReaction(reaction *domain.Reaction) {
	if reaction == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.reactionSubscribers {
		if sub.channelID != "" && sub.channelID != reaction.ChannelID {
			continue
		}
		select {
		case sub.ch <- reaction:
		default:
			h.logger.Warn("Dropping reaction for slow subscriber",
				zap.String("channel_id", reaction.ChannelID),
				zap.String("message_id", reaction.MessageID),
			)
		}
	}
}

// Subscribers returns the number of live message and reaction subscriptions.
func (h *Hub) Subscribers() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messageSubscribers), len(h.reactionSubscribers)
}

// Close drops every subscription, closing their channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.messageSubscribers {
		close(sub.ch)
		delete(h.messageSubscribers, id)
	}
	for id, sub := range h.reactionSubscribers {
		close(sub.ch)
		delete(h.reactionSubscribers, id)
	}
}
