package prompt

import (
	"context"
	"time"

	"github.com/kapu/botkit-go/internal/chat"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/pkg/kit"
	"go.uber.org/zap"
)

// ConfirmOptions tune a single Confirm call.
type ConfirmOptions struct {
	// Participant restricts answers to one author. Empty accepts anyone.
	Participant      string
	Timeout          time.Duration
	ExtraAffirmative []string
	ExtraNegative    []string
}

// Confirm waits for the first yes/no answer in ch. Messages outside the
// vocabulary, or from other authors when Participant is set, are ignored.
// No answer within the timeout yields VerdictTimeout and a nil error.
func (p *Prompter) Confirm(ctx context.Context, ch chat.Channel, opts ConfirmOptions) (domain.Verdict, error) {
	messages, cancel := ch.SubscribeMessages()
	defer cancel()
	return p.confirmFrom(ctx, messages, ch.ID(), opts)
}

// Ask sends question to ch and then waits for the answer like Confirm.
func (p *Prompter) Ask(ctx context.Context, ch chat.Channel, question string, opts ConfirmOptions) (domain.Verdict, error) {
	messages, cancel := ch.SubscribeMessages()
	defer cancel()

	if _, err := ch.Send(ctx, question); err != nil {
		return domain.VerdictTimeout, err
	}
	return p.confirmFrom(ctx, messages, ch.ID(), opts)
}

func (p *Prompter) confirmFrom(ctx context.Context, messages <-chan *domain.Message, channelID string, opts ConfirmOptions) (domain.Verdict, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = p.confirmTimeout
	}
	vocab := p.vocab.Extend(opts.ExtraAffirmative, opts.ExtraNegative)

	acc := NewAccumulator()
	filter := func(msg *domain.Message, _ *Accumulator) bool {
		if opts.Participant != "" && msg.AuthorID() != opts.Participant {
			return false
		}
		_, ok := vocab.Classify(kit.Normalize(msg.Content))
		return ok
	}

	if _, err := Await(ctx, messages, acc, filter, AwaitOptions{Max: 1, Timeout: timeout}); err != nil {
		return domain.VerdictTimeout, err
	}

	answer := acc.First()
	if answer == nil {
		p.logger.Debug("Confirmation timed out",
			zap.String("channel_id", channelID),
			zap.String("participant", opts.Participant),
			zap.Duration("timeout", timeout),
		)
		return domain.VerdictTimeout, nil
	}

	verdict, _ := vocab.Classify(kit.Normalize(answer.Content))
	return verdict, nil
}
