package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/pkg/kit"
)

// ResponseFormatter formats bot responses
type ResponseFormatter struct {
	prefix string
	vocab  domain.Vocabulary
}

func NewResponseFormatter(prefix string, vocab domain.Vocabulary) *ResponseFormatter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &ResponseFormatter{prefix: prefix, vocab: vocab}
}

func (f *ResponseFormatter) FormatHelp(confirmTimeout, queueTimeout time.Duration) string {
	yes, no := f.vocab.Size()
	out, err := executeFormatterTemplate("help", map[string]any{
		"Prefix":         f.prefix,
		"ConfirmSeconds": int(confirmTimeout.Seconds()),
		"QueueSeconds":   int(queueTimeout.Seconds()),
		"Affirmative":    yes,
		"Negative":       no,
	})
	if err != nil {
		return f.FormatError("help is unavailable")
	}
	return out
}

func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

func (f *ResponseFormatter) FormatUsage(usage string) string {
	return fmt.Sprintf("ℹ️ Usage: %s%s", f.prefix, usage)
}

func (f *ResponseFormatter) FormatMember(member *domain.Member) string {
	if member == nil || member.User == nil {
		return f.FormatError("Nobody matched that search.")
	}
	out, err := executeFormatterTemplate("member", map[string]any{
		"DisplayName": member.DisplayName(),
		"Tag":         member.User.Tag(),
		"ID":          member.User.ID,
		"Nick":        member.Nick,
		"Bot":         member.User.Bot,
	})
	if err != nil {
		return member.DisplayName()
	}
	return out
}

func (f *ResponseFormatter) FormatUser(user *domain.User) string {
	if user == nil {
		return f.FormatError("Nobody matched that search.")
	}
	return f.FormatMember(&domain.Member{User: user})
}

func (f *ResponseFormatter) FormatVerdict(question string, verdict domain.Verdict) string {
	switch verdict {
	case domain.VerdictAffirmative:
		return fmt.Sprintf("👍 Confirmed: %s", question)
	case domain.VerdictNegative:
		return fmt.Sprintf("👎 Declined: %s", question)
	default:
		return "⌛ No answer in time."
	}
}

func (f *ResponseFormatter) FormatQueue(players []string, maxSize int) string {
	mentions := make([]string, len(players))
	for i, id := range players {
		mentions[i] = (&domain.User{ID: id}).Mention()
	}
	out, err := executeFormatterTemplate("queue", map[string]any{
		"Players": mentions,
		"Max":     maxSize,
	})
	if err != nil {
		return kit.List(mentions, "and")
	}
	return out
}

func (f *ResponseFormatter) FormatQueueUnfilled(minSize int) string {
	return f.FormatError(fmt.Sprintf("Not enough players joined (needed %d). Queue cancelled.", minSize))
}

func (f *ResponseFormatter) FormatShuffle(items []string) string {
	shown := kit.TrimArray(items, constants.StringLimits.ListItems)
	return fmt.Sprintf("🔀 %s", kit.List(shown, "and"))
}

func (f *ResponseFormatter) FormatUptime(uptime time.Duration, heapBytes uint64, goroutines int) string {
	return fmt.Sprintf("⏱️ Up for %s\n💾 Heap: %s\n🧵 Goroutines: %s",
		kit.Uptime(uptime),
		kit.FormatBytes(int64(heapBytes)),
		kit.FormatNumber(float64(goroutines), 0),
	)
}

func (f *ResponseFormatter) FormatCodeBlock(text string) string {
	return "```\n" + text + "\n```"
}

func (f *ResponseFormatter) FormatNote(text string, updatedAt string) string {
	if updatedAt == "" {
		return fmt.Sprintf("📝 %s", text)
	}
	return fmt.Sprintf("📝 %s\n(updated %s)", text, updatedAt)
}
