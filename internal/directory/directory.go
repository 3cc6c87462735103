package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/service/cache"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Provider exposes what the host platform knows about guild members and users.
// Lookups that find nothing return nil without an error.
type Provider interface {
	Member(ctx context.Context, guildID, userID string) (*domain.Member, error)
	Members(ctx context.Context, guildID string) ([]*domain.Member, error)
	User(ctx context.Context, userID string) (*domain.User, error)
	Users(ctx context.Context) ([]*domain.User, error)
}

type Directory struct {
	provider Provider
	cache    *cache.Service
	logger   *zap.Logger

	members sync.Map // guildID:userID -> *domain.Member
	users   sync.Map // userID -> *domain.User

	ttl time.Duration
}

type Config struct {
	// Cache is optional; without it only the in-process maps are used.
	Cache *cache.Service
	TTL   time.Duration
}

func New(provider Provider, cfg Config, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = constants.RedisConfig.DirectoryTTL
	}
	return &Directory{
		provider: provider,
		cache:    cfg.Cache,
		logger:   logger,
		ttl:      cfg.TTL,
	}
}

// Member resolves query to a member of the message's guild: by user ID, then the
// first mentioned member, then the first member whose display name or tag
// contains the query. Without a match it falls back to the message's own member.
func (d *Directory) Member(ctx context.Context, msg *domain.Message, query string) *domain.Member {
	if msg == nil {
		return nil
	}
	query = normalizeQuery(query)

	var target *domain.Member
	if query != "" && msg.GuildID != "" {
		target = d.memberByID(ctx, msg.GuildID, query)
	}
	if target == nil && len(msg.MentionedMembers) > 0 {
		target = msg.MentionedMembers[0]
	}
	if target == nil && query != "" && msg.GuildID != "" {
		target = d.searchMembers(ctx, msg.GuildID, query)
	}
	if target == nil {
		target = authorMember(msg)
	}
	return target
}

// User resolves query to a known user the same way Member does, falling back
// to the message author.
func (d *Directory) User(ctx context.Context, msg *domain.Message, query string) *domain.User {
	if msg == nil {
		return nil
	}
	query = normalizeQuery(query)

	var target *domain.User
	if query != "" {
		target = d.userByID(ctx, query)
	}
	if target == nil && len(msg.Mentions) > 0 {
		target = msg.Mentions[0]
	}
	if target == nil && query != "" {
		target = d.searchUsers(ctx, query)
	}
	if target == nil {
		target = msg.Author
	}
	return target
}

// Invalidate drops every cached entry.
func (d *Directory) Invalidate(ctx context.Context) error {
	d.members.Range(func(key, _ any) bool {
		d.members.Delete(key)
		return true
	})
	d.users.Range(func(key, _ any) bool {
		d.users.Delete(key)
		return true
	})

	if d.cache != nil {
		if _, err := d.cache.DelPattern(ctx, cache.Key("directory", "*")); err != nil {
			return err
		}
	}
	d.logger.Info("Directory cache invalidated")
	return nil
}

func (d *Directory) memberByID(ctx context.Context, guildID, userID string) *domain.Member {
	if !looksLikeID(userID) {
		return nil
	}
	key := guildID + ":" + userID
	if val, ok := d.members.Load(key); ok {
		return val.(*domain.Member)
	}

	redisKey := cache.Key("directory", "member", guildID, userID)
	if d.cache != nil {
		var member domain.Member
		if found, err := d.cache.Get(ctx, redisKey, &member); err == nil && found {
			d.members.Store(key, &member)
			return &member
		}
	}

	member, err := d.provider.Member(ctx, guildID, userID)
	if err != nil {
		d.logger.Debug("Member lookup failed",
			zap.String("guild_id", guildID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil
	}
	if member == nil {
		return nil
	}

	d.members.Store(key, member)
	if d.cache != nil {
		if err := d.cache.Set(ctx, redisKey, member, d.ttl); err != nil {
			d.logger.Warn("Failed to cache member", zap.String("key", redisKey), zap.Error(err))
		}
	}
	return member
}

func (d *Directory) userByID(ctx context.Context, userID string) *domain.User {
	if !looksLikeID(userID) {
		return nil
	}
	if val, ok := d.users.Load(userID); ok {
		return val.(*domain.User)
	}

	redisKey := cache.Key("directory", "user", userID)
	if d.cache != nil {
		var user domain.User
		if found, err := d.cache.Get(ctx, redisKey, &user); err == nil && found {
			d.users.Store(userID, &user)
			return &user
		}
	}

	user, err := d.provider.User(ctx, userID)
	if err != nil {
		d.logger.Debug("User lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if user == nil {
		return nil
	}

	d.users.Store(userID, user)
	if d.cache != nil {
		if err := d.cache.Set(ctx, redisKey, user, d.ttl); err != nil {
			d.logger.Warn("Failed to cache user", zap.String("key", redisKey), zap.Error(err))
		}
	}
	return user
}

func (d *Directory) searchMembers(ctx context.Context, guildID, query string) *domain.Member {
	members, err := d.provider.Members(ctx, guildID)
	if err != nil {
		d.logger.Debug("Member listing failed", zap.String("guild_id", guildID), zap.Error(err))
		return nil
	}
	member, _ := lo.Find(members, func(m *domain.Member) bool {
		return m.Matches(query)
	})
	return member
}

func (d *Directory) searchUsers(ctx context.Context, query string) *domain.User {
	users, err := d.provider.Users(ctx)
	if err != nil {
		d.logger.Debug("User listing failed", zap.Error(err))
		return nil
	}
	user, _ := lo.Find(users, func(u *domain.User) bool {
		return u.Matches(query)
	})
	return user
}

func authorMember(msg *domain.Message) *domain.Member {
	if msg.Member != nil {
		return msg.Member
	}
	if msg.Author == nil {
		return nil
	}
	return &domain.Member{GuildID: msg.GuildID, User: msg.Author}
}

// normalizeQuery lower-cases the query and unwraps a raw <@id> / <@!id> mention.
func normalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if strings.HasPrefix(query, "<@") && strings.HasSuffix(query, ">") {
		query = strings.TrimPrefix(strings.TrimSuffix(query[2:], ">"), "!")
	}
	return query
}

func looksLikeID(s string) bool {
	return s != "" && len(s) <= constants.StringLimits.DirectoryID && !strings.ContainsAny(s, " \t")
}
