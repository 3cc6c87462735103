package command

import (
	"context"

	"github.com/kapu/botkit-go/internal/domain"
)

type HelpCommand struct {
	deps *Dependencies
}

func NewHelpCommand(deps *Dependencies) *HelpCommand {
	return &HelpCommand{deps: deps}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Lists the available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatHelp(c.deps.ConfirmTimeout, c.deps.QueueTimeout))
}
