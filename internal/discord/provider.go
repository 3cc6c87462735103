package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Provider answers directory lookups from the gateway state cache, falling
// back to REST for single lookups.
type Provider struct {
	session *discordgo.Session
	logger  *zap.Logger
}

func NewProvider(session *discordgo.Session, logger *zap.Logger) *Provider {
	return &Provider{session: session, logger: logger}
}

func (p *Provider) Member(_ context.Context, guildID, userID string) (*domain.Member, error) {
	if m, err := p.session.State.Member(guildID, userID); err == nil {
		return toMember(guildID, m, nil), nil
	}
	m, err := p.session.GuildMember(guildID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toMember(guildID, m, nil), nil
}

func (p *Provider) Members(_ context.Context, guildID string) ([]*domain.Member, error) {
	guild, err := p.session.State.Guild(guildID)
	if err != nil {
		return nil, err
	}
	return lo.Map(guild.Members, func(m *discordgo.Member, _ int) *domain.Member {
		return toMember(guildID, m, nil)
	}), nil
}

func (p *Provider) User(_ context.Context, userID string) (*domain.User, error) {
	for _, guild := range p.session.State.Guilds {
		if m, err := p.session.State.Member(guild.ID, userID); err == nil && m.User != nil {
			return toUser(m.User), nil
		}
	}
	u, err := p.session.User(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toUser(u), nil
}

func (p *Provider) Users(context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, guild := range p.session.State.Guilds {
		for _, m := range guild.Members {
			if m.User != nil {
				users = append(users, toUser(m.User))
			}
		}
	}
	return lo.UniqBy(users, func(u *domain.User) string { return u.ID }), nil
}

// WarmUp asks the gateway for the full member list of every joined guild so
// fuzzy lookups see more than recently active members.
func (p *Provider) WarmUp(ctx context.Context, workers int) error {
	guilds := lo.Map(p.session.State.Guilds, func(g *discordgo.Guild, _ int) string { return g.ID })

	wp := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(max(workers, 1))
	for _, guildID := range guilds {
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.session.RequestGuildMembers(guildID, "", 0, "", false)
		})
	}

	err := wp.Wait()
	p.logger.Info("Requested guild members", zap.Int("guilds", len(guilds)), zap.Error(err))
	return err
}

func isNotFound(err error) bool {
	restErr, ok := err.(*discordgo.RESTError)
	return ok && restErr.Response != nil && restErr.Response.StatusCode == 404
}
