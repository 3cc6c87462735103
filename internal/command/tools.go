package command

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/pkg/kit"
)

const (
	defaultHashAlgorithm = "sha256"
	defaultRollMax       = 100
)

type HashCommand struct {
	deps *Dependencies
}

func NewHashCommand(deps *Dependencies) *HashCommand {
	return &HashCommand{deps: deps}
}

func (c *HashCommand) Name() string {
	return "hash"
}

func (c *HashCommand) Description() string {
	return "Hashes text with the chosen algorithm"
}

func (c *HashCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	text := getStringParam(params, "text")
	if text == "" {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("hash [algorithm] <text>"))
	}
	algorithm := getStringParam(params, "algorithm")
	if algorithm == "" {
		algorithm = defaultHashAlgorithm
	}

	digest, err := kit.CreateHash(text, algorithm)
	if err != nil {
		return c.deps.replyError(ctx, cmdCtx, userMessage(err))
	}
	return c.deps.reply(ctx, cmdCtx, fmt.Sprintf("%s: `%s`", algorithm, digest))
}

type Base64Command struct {
	deps *Dependencies
}

func NewBase64Command(deps *Dependencies) *Base64Command {
	return &Base64Command{deps: deps}
}

func (c *Base64Command) Name() string {
	return "base64"
}

func (c *Base64Command) Description() string {
	return "Encodes or decodes base64 text"
}

func (c *Base64Command) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	text := getStringParam(params, "text")
	if text == "" {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("base64 <encode|decode> <text>"))
	}

	out, err := kit.Base64(text, getStringParam(params, "mode"))
	if err != nil {
		return c.deps.replyError(ctx, cmdCtx, userMessage(err))
	}
	return c.deps.reply(ctx, cmdCtx, out)
}

// RomanCommand converts in whichever direction the input implies.
type RomanCommand struct {
	deps *Dependencies
}

func NewRomanCommand(deps *Dependencies) *RomanCommand {
	return &RomanCommand{deps: deps}
}

func (c *RomanCommand) Name() string {
	return "roman"
}

func (c *RomanCommand) Description() string {
	return "Converts between numbers and Roman numerals"
}

func (c *RomanCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	value := strings.TrimSpace(getStringParam(params, "value"))
	if value == "" {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("roman <number|numeral>"))
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n <= 0 {
			return c.deps.replyError(ctx, cmdCtx, "Roman numerals start at 1.")
		}
		return c.deps.reply(ctx, cmdCtx, kit.GenerateRoman(n))
	}
	n := kit.GenerateNumeral(value)
	if n <= 0 {
		return c.deps.replyError(ctx, cmdCtx, "That is not a Roman numeral.")
	}
	return c.deps.reply(ctx, cmdCtx, strconv.Itoa(n))
}

type RollCommand struct {
	deps *Dependencies
}

func NewRollCommand(deps *Dependencies) *RollCommand {
	return &RollCommand{deps: deps}
}

func (c *RollCommand) Name() string {
	return "roll"
}

func (c *RollCommand) Description() string {
	return "Rolls a random number (1-100 by default)"
}

func (c *RollCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	lo := getIntParam(params, "min", 1)
	hi := getIntParam(params, "max", defaultRollMax)
	return c.deps.reply(ctx, cmdCtx, fmt.Sprintf("🎲 %d", kit.RandomNumber(lo, hi)))
}

type ShuffleCommand struct {
	deps *Dependencies
}

func NewShuffleCommand(deps *Dependencies) *ShuffleCommand {
	return &ShuffleCommand{deps: deps}
}

func (c *ShuffleCommand) Name() string {
	return "shuffle"
}

func (c *ShuffleCommand) Description() string {
	return "Shuffles a list of items"
}

func (c *ShuffleCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	items := kit.RemoveDuplicates(getStringsParam(params, "items"))
	if len(items) < 2 {
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("shuffle <a, b, c>"))
	}
	if len(items) > constants.StringLimits.ShuffleMax {
		return c.deps.replyError(ctx, cmdCtx, fmt.Sprintf("Shuffle accepts at most %d items.", constants.StringLimits.ShuffleMax))
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatShuffle(kit.ShuffleArray(items)))
}

type UptimeCommand struct {
	deps *Dependencies
}

func NewUptimeCommand(deps *Dependencies) *UptimeCommand {
	return &UptimeCommand{deps: deps}
}

func (c *UptimeCommand) Name() string {
	return "uptime"
}

func (c *UptimeCommand) Description() string {
	return "Shows how long the bot has been running"
}

func (c *UptimeCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	uptime := time.Duration(0)
	if !c.deps.StartedAt.IsZero() {
		uptime = time.Since(c.deps.StartedAt)
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUptime(uptime, mem.HeapAlloc, runtime.NumGoroutine()))
}

type FigletCommand struct {
	deps *Dependencies
}

func NewFigletCommand(deps *Dependencies) *FigletCommand {
	return &FigletCommand{deps: deps}
}

func (c *FigletCommand) Name() string {
	return "figlet"
}

func (c *FigletCommand) Description() string {
	return "Renders a short text as an ASCII banner"
}

func (c *FigletCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	banner, err := kit.Figlet(getStringParam(params, "text"))
	if err != nil {
		return c.deps.replyError(ctx, cmdCtx, userMessage(err))
	}
	return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatCodeBlock(banner))
}
