package prompt

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/kapu/botkit-go/pkg/kit"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// ErrQueueUnfilled is returned when fewer than MinSize participants joined.
var ErrQueueUnfilled = stderrors.New("not enough participants joined the queue")

// QueueOptions describe a lobby.
type QueueOptions struct {
	// Trigger is the phrase participants type to join, compared case-insensitively.
	Trigger string `validate:"required"`
	// Emoji acknowledges each joiner. Empty uses the default check mark.
	Emoji   string
	MaxSize int `validate:"min=1"`
	// MinSize counts the initiator. Zero means 1.
	MinSize int `validate:"gte=0"`
	Timeout time.Duration
}

// CollectQueue gathers up to MaxSize participants (initiator first, then
// joiners in arrival order) for the queue window. Bots and repeat joiners are
// ignored. Fewer than MinSize participants at the end yields ErrQueueUnfilled.
func (p *Prompter) CollectQueue(ctx context.Context, ch chat.Channel, initiator *domain.Message, opts QueueOptions) ([]string, error) {
	if err := p.validate.Struct(opts); err != nil {
		return nil, validationError("invalid queue options", err)
	}
	if initiator == nil || initiator.AuthorID() == "" {
		return nil, errors.NewValidationError("queue initiator must have an author", "initiator", nil)
	}

	if opts.MaxSize == 1 {
		return []string{initiator.AuthorID()}, nil
	}

	minSize := opts.MinSize
	if minSize <= 0 {
		minSize = 1
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = p.queueTimeout
	}
	emoji := opts.Emoji
	if emoji == "" {
		emoji = constants.PromptConfig.AckEmoji
	}
	trigger := kit.Normalize(opts.Trigger)

	messages, cancel := ch.SubscribeMessages()
	defer cancel()

	announcement := fmt.Sprintf("You will need at least %d more player(s) (at max %d). To join, type `%s`.",
		minSize-1, opts.MaxSize-1, opts.Trigger)
	if _, err := ch.Send(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to announce queue: %w", err)
	}

	acc := NewAccumulator(initiator)
	acks := pool.New().WithMaxGoroutines(p.reactionWorkers)

	_, err := Await(ctx, messages, acc, joinFilter(trigger), AwaitOptions{
		Max:     opts.MaxSize - 1,
		Timeout: timeout,
		OnAccept: func(msg *domain.Message) {
			acks.Go(func() {
				p.ReactIfAble(ctx, ch, msg, emoji, constants.PromptConfig.FallbackEmoji)
			})
		},
	})
	acks.Wait()
	if err != nil {
		return nil, err
	}

	joined := acc.AuthorIDs()
	p.logger.Info("Queue collection finished",
		zap.String("channel_id", ch.ID()),
		zap.String("initiator", initiator.AuthorID()),
		zap.Int("joined", len(joined)),
		zap.Int("min", minSize),
		zap.Int("max", opts.MaxSize),
	)

	if len(joined) < minSize {
		return nil, fmt.Errorf("%w: %d of %d", ErrQueueUnfilled, len(joined), minSize)
	}
	return joined, nil
}

func joinFilter(trigger string) Filter {
	return func(msg *domain.Message, acc *Accumulator) bool {
		if msg.Author == nil || msg.Author.Bot {
			return false
		}
		if acc.HasAuthor(msg.Author.ID) {
			return false
		}
		return kit.Normalize(msg.Content) == trigger
	}
}

func validationError(message string, err error) error {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return errors.NewValidationError(
			fmt.Sprintf("%s: %s failed %s", message, first.Field(), first.Tag()),
			strings.ToLower(first.Field()),
			first.Value(),
		).WithCause(err)
	}
	return errors.NewValidationError(message, "", nil).WithCause(err)
}
