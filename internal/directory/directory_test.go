package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/kapu/botkit-go/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	members     map[string][]*domain.Member
	users       []*domain.User
	memberCalls int
	userCalls   int
	err         error
}

func (f *fakeProvider) Member(_ context.Context, guildID, userID string) (*domain.Member, error) {
	f.memberCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members[guildID] {
		if m.ID() == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeProvider) Members(_ context.Context, guildID string) ([]*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members[guildID], nil
}

func (f *fakeProvider) User(_ context.Context, userID string) (*domain.User, error) {
	f.userCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeProvider) Users(context.Context) ([]*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

var (
	alice = &domain.User{ID: "100", Username: "alice", Discriminator: "0001"}
	bob   = &domain.User{ID: "200", Username: "bob", GlobalName: "Bobby"}
	carol = &domain.User{ID: "300", Username: "carol"}
)

func newProvider() *fakeProvider {
	return &fakeProvider{
		members: map[string][]*domain.Member{
			"g1": {
				{GuildID: "g1", User: alice},
				{GuildID: "g1", User: bob, Nick: "Builder"},
				{GuildID: "g1", User: carol},
			},
		},
		users: []*domain.User{alice, bob, carol},
	}
}

func guildMessage(author *domain.User) *domain.Message {
	return &domain.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Author:    author,
		Member:    &domain.Member{GuildID: "g1", User: author},
	}
}

func TestMemberLookupChain(t *testing.T) {
	ctx := context.Background()
	dir := New(newProvider(), Config{}, nil)

	tests := []struct {
		name   string
		msg    func() *domain.Message
		query  string
		wantID string
	}{
		{"by id", func() *domain.Message { return guildMessage(carol) }, "100", "100"},
		{"by raw mention", func() *domain.Message { return guildMessage(carol) }, "<@!200>", "200"},
		{"by mentioned member", func() *domain.Message {
			msg := guildMessage(alice)
			msg.MentionedMembers = []*domain.Member{{GuildID: "g1", User: carol}}
			return msg
		}, "", "300"},
		{"by nickname substring", func() *domain.Message { return guildMessage(carol) }, "BUILD", "200"},
		{"by tag substring", func() *domain.Message { return guildMessage(carol) }, "#0001", "100"},
		{"falls back to author", func() *domain.Message { return guildMessage(carol) }, "nobody", "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dir.Member(ctx, tt.msg(), tt.query)
			require.NotNil(t, got)
			require.Equal(t, tt.wantID, got.ID())
		})
	}
}

func TestMemberFallsBackWithoutGuild(t *testing.T) {
	dir := New(newProvider(), Config{}, nil)
	msg := &domain.Message{ID: "m1", ChannelID: "dm", Author: bob}

	got := dir.Member(context.Background(), msg, "alice")

	require.Equal(t, "200", got.ID())
	require.Empty(t, got.GuildID)
}

func TestMemberByIDIsCached(t *testing.T) {
	provider := newProvider()
	dir := New(provider, Config{}, nil)

	for range 3 {
		require.Equal(t, "100", dir.Member(context.Background(), guildMessage(bob), "100").ID())
	}
	require.Equal(t, 1, provider.memberCalls)

	require.NoError(t, dir.Invalidate(context.Background()))
	dir.Member(context.Background(), guildMessage(bob), "100")
	require.Equal(t, 2, provider.memberCalls)
}

func TestUserLookupChain(t *testing.T) {
	ctx := context.Background()
	dir := New(newProvider(), Config{}, nil)

	require.Equal(t, "300", dir.User(ctx, guildMessage(alice), "300").ID)
	require.Equal(t, "200", dir.User(ctx, guildMessage(alice), "BO").ID)

	msg := guildMessage(alice)
	msg.Mentions = []*domain.User{carol}
	require.Equal(t, "300", dir.User(ctx, msg, "").ID)

	require.Equal(t, "100", dir.User(ctx, guildMessage(alice), "zed").ID)
}

func TestProviderErrorsFallBackToAuthor(t *testing.T) {
	provider := newProvider()
	provider.err = errors.New("gateway closed")
	dir := New(provider, Config{}, nil)

	require.Equal(t, "100", dir.Member(context.Background(), guildMessage(alice), "bob").ID())
	require.Equal(t, "100", dir.User(context.Background(), guildMessage(alice), "bob").ID)
}

func TestNilMessage(t *testing.T) {
	dir := New(newProvider(), Config{}, nil)
	require.Nil(t, dir.Member(context.Background(), nil, "alice"))
	require.Nil(t, dir.User(context.Background(), nil, "alice"))
}
