package command

import (
	"context"

	"github.com/kapu/botkit-go/internal/domain"
)

type WhoisCommand struct {
	deps *Dependencies
}

func NewWhoisCommand(deps *Dependencies) *WhoisCommand {
	return &WhoisCommand{deps: deps}
}

func (c *WhoisCommand) Name() string {
	return "whois"
}

func (c *WhoisCommand) Description() string {
	return "Looks up a member of this server by id, mention or name"
}

func (c *WhoisCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Directory == nil {
		return errDependencies
	}
	member := c.deps.Directory.Member(ctx, cmdCtx.Message, getStringParam(params, "query"))
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatMember(member))
}

type UserCommand struct {
	deps *Dependencies
}

func NewUserCommand(deps *Dependencies) *UserCommand {
	return &UserCommand{deps: deps}
}

func (c *UserCommand) Name() string {
	return "user"
}

func (c *UserCommand) Description() string {
	return "Looks up any user the bot can see"
}

func (c *UserCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Directory == nil {
		return errDependencies
	}
	user := c.deps.Directory.User(ctx, cmdCtx.Message, getStringParam(params, "query"))
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUser(user))
}
