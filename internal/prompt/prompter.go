package prompt

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"go.uber.org/zap"
)

// Config holds process-wide prompt defaults. Zero fields fall back to constants.PromptConfig.
type Config struct {
	Vocabulary      domain.Vocabulary
	ConfirmTimeout  time.Duration
	QueueTimeout    time.Duration
	ReactionTimeout time.Duration
	ReactionWorkers int
}

// Prompter runs interactive prompts against chat channels. It holds no
// per-call state and is safe for concurrent use.
type Prompter struct {
	vocab           domain.Vocabulary
	confirmTimeout  time.Duration
	queueTimeout    time.Duration
	reactionTimeout time.Duration
	reactionWorkers int
	validate        *validator.Validate
	logger          *zap.Logger
}

func NewPrompter(cfg Config, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}

	vocab := cfg.Vocabulary
	if yes, no := vocab.Size(); yes == 0 && no == 0 {
		vocab = domain.DefaultVocabulary()
	}

	p := &Prompter{
		vocab:           vocab,
		confirmTimeout:  cfg.ConfirmTimeout,
		queueTimeout:    cfg.QueueTimeout,
		reactionTimeout: cfg.ReactionTimeout,
		reactionWorkers: cfg.ReactionWorkers,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		logger:          logger,
	}
	if p.confirmTimeout <= 0 {
		p.confirmTimeout = constants.PromptConfig.ConfirmTimeout
	}
	if p.queueTimeout <= 0 {
		p.queueTimeout = constants.PromptConfig.QueueTimeout
	}
	if p.reactionTimeout <= 0 {
		p.reactionTimeout = constants.PromptConfig.ReactionTimeout
	}
	if p.reactionWorkers <= 0 {
		p.reactionWorkers = constants.PromptConfig.ReactionWorkers
	}
	return p
}

// Vocabulary returns the default yes/no vocabulary used by Confirm.
func (p *Prompter) Vocabulary() domain.Vocabulary {
	return p.vocab
}
