package prompt

import (
	"context"
	"errors"
	"time"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/samber/lo"
)

// ErrSubscriptionClosed is returned when the message stream ends before the
// collection window does (platform shutdown).
var ErrSubscriptionClosed = errors.New("message subscription closed")

// Filter decides whether msg joins the collection. It must not mutate acc;
// Await appends accepted messages itself.
type Filter func(msg *domain.Message, acc *Accumulator) bool

// Accumulator is the ordered result of a collection window.
type Accumulator struct {
	messages []*domain.Message
	authors  map[string]struct{}
}

// NewAccumulator returns an accumulator pre-filled with seed messages.
func NewAccumulator(seed ...*domain.Message) *Accumulator {
	acc := &Accumulator{authors: make(map[string]struct{})}
	for _, msg := range seed {
		acc.add(msg)
	}
	return acc
}

func (a *Accumulator) add(msg *domain.Message) {
	if msg == nil {
		return
	}
	a.messages = append(a.messages, msg)
	if id := msg.AuthorID(); id != "" {
		a.authors[id] = struct{}{}
	}
}

func (a *Accumulator) Len() int {
	return len(a.messages)
}

// HasAuthor reports whether a message from authorID was already collected.
func (a *Accumulator) HasAuthor(authorID string) bool {
	_, ok := a.authors[authorID]
	return ok
}

// First returns the earliest collected message, or nil.
func (a *Accumulator) First() *domain.Message {
	if len(a.messages) == 0 {
		return nil
	}
	return a.messages[0]
}

// Messages returns the collected messages in arrival order.
func (a *Accumulator) Messages() []*domain.Message {
	return append([]*domain.Message(nil), a.messages...)
}

// AuthorIDs returns the participant identifiers in arrival order.
func (a *Accumulator) AuthorIDs() []string {
	return lo.Map(a.messages, func(msg *domain.Message, _ int) string {
		return msg.AuthorID()
	})
}

// AwaitOptions bound a collection window.
type AwaitOptions struct {
	// Max stops the window after this many accepted messages. Zero waits for the timeout.
	Max     int
	Timeout time.Duration
	// OnAccept runs synchronously after each accepted message is recorded.
	OnAccept func(msg *domain.Message)
}

// Await reads messages until Max are accepted or Timeout elapses, appending
// each message the filter accepts to acc. It returns the number accepted.
// Reaching the timeout is not an error; a cancelled ctx is.
func Await(ctx context.Context, messages <-chan *domain.Message, acc *Accumulator, filter Filter, opts AwaitOptions) (int, error) {
	if opts.Max < 0 {
		opts.Max = 0
	}

	var deadline <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	accepted := 0
	for opts.Max == 0 || accepted < opts.Max {
		select {
		case <-ctx.Done():
			return accepted, ctx.Err()
		case <-deadline:
			return accepted, nil
		case msg, ok := <-messages:
			if !ok {
				return accepted, ErrSubscriptionClosed
			}
			if msg == nil || !filter(msg, acc) {
				continue
			}
			acc.add(msg)
			accepted++
			if opts.OnAccept != nil {
				opts.OnAccept(msg)
			}
		}
	}
	return accepted, nil
}
