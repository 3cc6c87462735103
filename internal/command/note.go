package command

import (
	"context"
	"strings"
	"time"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/store"
	"go.uber.org/zap"
)

// Note document fields.
const (
	noteOwnerField   = "owner"
	noteTextField    = "text"
	noteUpdatedField = "updatedAt"
)

var noteSchema = store.Schema{
	Collection: constants.StoreConfig.NotesSchema,
	Defaults:   map[string]any{noteTextField: ""},
	Required:   []string{noteOwnerField},
}

// NoteCommand keeps one personal note per user in the document store.
type NoteCommand struct {
	deps *Dependencies
	now  func() time.Time
}

func NewNoteCommand(deps *Dependencies) *NoteCommand {
	return &NoteCommand{deps: deps, now: time.Now}
}

func (c *NoteCommand) Name() string {
	return "note"
}

func (c *NoteCommand) Description() string {
	return "Shows, saves, edits or clears your personal note"
}

func (c *NoteCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.deps.ready(); err != nil {
		return err
	}
	if c.deps.Store == nil {
		return errDependencies
	}

	ctx, cancel := context.WithTimeout(ctx, constants.StoreConfig.OpTimeout)
	defer cancel()

	owner := cmdCtx.Sender
	criteria := store.Criteria{noteOwnerField: owner}
	text := strings.TrimSpace(getStringParam(params, "text"))

	existing, err := c.deps.Store.FindOne(ctx, noteSchema.Collection, criteria)
	if err != nil {
		return c.fail(ctx, cmdCtx, err)
	}

	switch getStringParam(params, "action") {
	case "add":
		if text == "" {
			return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("note add <text>"))
		}
		if existing != nil {
			return c.deps.replyError(ctx, cmdCtx, "You already have a note. Use `note edit` to change it.")
		}
		doc, err := c.deps.Store.Create(ctx, noteSchema, map[string]any{
			store.IDField:    owner,
			noteOwnerField:   owner,
			noteTextField:    text,
			noteUpdatedField: c.stamp(),
		})
		if err != nil {
			return c.fail(ctx, cmdCtx, err)
		}
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatNote(noteString(doc, noteTextField), noteString(doc, noteUpdatedField)))

	case "edit":
		if text == "" {
			return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("note edit <text>"))
		}
		if existing == nil {
			return c.deps.replyError(ctx, cmdCtx, "You have no note yet. Use `note add` first.")
		}
		stamp := c.stamp()
		if err := c.deps.Store.UpdateOne(ctx, noteSchema.Collection, criteria, noteTextField, text); err != nil {
			return c.fail(ctx, cmdCtx, err)
		}
		if err := c.deps.Store.UpdateOne(ctx, noteSchema.Collection, criteria, noteUpdatedField, stamp); err != nil {
			return c.fail(ctx, cmdCtx, err)
		}
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatNote(text, stamp))

	case "clear":
		if existing == nil {
			return c.deps.replyError(ctx, cmdCtx, "You have no note.")
		}
		if err := c.deps.Store.Delete(ctx, noteSchema.Collection, existing); err != nil {
			return c.fail(ctx, cmdCtx, err)
		}
		return c.deps.reply(ctx, cmdCtx, "🗑️ Note cleared.")

	default:
		if existing == nil {
			return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatUsage("note add <text>"))
		}
		return c.deps.reply(ctx, cmdCtx, c.deps.Formatter.FormatNote(noteString(existing, noteTextField), noteString(existing, noteUpdatedField)))
	}
}

func (c *NoteCommand) stamp() string {
	return c.now().UTC().Format(time.RFC3339)
}

func (c *NoteCommand) fail(ctx context.Context, cmdCtx *domain.CommandContext, err error) error {
	c.deps.log().Error("Note store operation failed",
		zap.String("owner", cmdCtx.Sender),
		zap.Error(err),
	)
	return c.deps.replyError(ctx, cmdCtx, userMessage(err))
}

func noteString(doc store.Document, field string) string {
	if s, ok := doc[field].(string); ok {
		return s
	}
	return ""
}
