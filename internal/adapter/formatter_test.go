package adapter

import (
	"strings"
	"testing"
	"time"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFormatHelpUsesPrefix(t *testing.T) {
	f := NewResponseFormatter("?", domain.DefaultVocabulary())

	help := f.FormatHelp(30*time.Second, time.Minute)

	require.Contains(t, help, "?queue [size] [min] [join phrase] - gather players for 60s")
	require.Contains(t, help, "wait 30s")
	require.NotContains(t, help, "!confirm")
}

func TestFormatMember(t *testing.T) {
	f := NewResponseFormatter("!", domain.DefaultVocabulary())
	member := &domain.Member{
		GuildID: "g1",
		Nick:    "Builder",
		User:    &domain.User{ID: "200", Username: "bob", Discriminator: "0042", Bot: true},
	}

	out := f.FormatMember(member)

	require.True(t, strings.HasPrefix(out, "👤 Builder"))
	require.Contains(t, out, "tag: bob#0042")
	require.Contains(t, out, "nickname: Builder")
	require.Contains(t, out, "bot account")
	require.Contains(t, f.FormatMember(nil), "Nobody matched")
}

func TestFormatQueueListsMentionsInOrder(t *testing.T) {
	f := NewResponseFormatter("!", domain.DefaultVocabulary())

	out := f.FormatQueue([]string{"U1", "U2", "U3"}, 4)

	require.Equal(t, "🎮 Queue ready (3/4)\n  1. <@U1>\n  2. <@U2>\n  3. <@U3>", out)
}

func TestFormatVerdict(t *testing.T) {
	f := NewResponseFormatter("!", domain.DefaultVocabulary())

	require.Equal(t, "👍 Confirmed: deploy?", f.FormatVerdict("deploy?", domain.VerdictAffirmative))
	require.Equal(t, "👎 Declined: deploy?", f.FormatVerdict("deploy?", domain.VerdictNegative))
	require.Equal(t, "⌛ No answer in time.", f.FormatVerdict("deploy?", domain.VerdictTimeout))
}

func TestFormatShuffleTrimsLongLists(t *testing.T) {
	f := NewResponseFormatter("!", domain.DefaultVocabulary())
	items := make([]string, 12)
	for i := range items {
		items[i] = "x"
	}

	require.True(t, strings.HasSuffix(f.FormatShuffle(items), "and 2 more..."))
}
