package iris

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/domain"
	"github.com/kapu/botkit-go/internal/service/cache"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Roster remembers who has spoken in each KakaoTalk room. Iris exposes no
// member list, so this is the only directory the platform has. With a cache
// the roster survives restarts as one redis hash per room.
type Roster struct {
	cache  *cache.Service
	logger *zap.Logger

	mu    sync.RWMutex
	rooms map[string]map[string]*domain.User
	order map[string][]string
}

func NewRoster(cache *cache.Service, logger *zap.Logger) *Roster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roster{
		cache:  cache,
		logger: logger,
		rooms:  make(map[string]map[string]*domain.User),
		order:  make(map[string][]string),
	}
}

func rosterKey(room string) string {
	return cache.Key("iris", "roster", room)
}

// Observe records the author of msg.
func (r *Roster) Observe(ctx context.Context, msg *domain.Message) {
	if msg == nil || msg.Author == nil || msg.GuildID == "" {
		return
	}
	if !r.remember(msg.GuildID, msg.Author) {
		return
	}

	if r.cache != nil {
		key := rosterKey(msg.GuildID)
		if err := r.cache.HSetJSON(ctx, key, msg.Author.ID, msg.Author); err != nil {
			r.logger.Warn("Failed to persist roster entry", zap.String("room", msg.GuildID), zap.Error(err))
			return
		}
		_ = r.cache.Expire(ctx, key, constants.RedisConfig.DirectoryTTL)
	}
}

// remember stores user and reports whether anything changed.
func (r *Roster) remember(room string, user *domain.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.rooms[room]
	if !ok {
		users = make(map[string]*domain.User)
		r.rooms[room] = users
	}
	if prev, ok := users[user.ID]; ok {
		if prev.Username == user.Username {
			return false
		}
	} else {
		r.order[room] = append(r.order[room], user.ID)
	}
	copied := *user
	users[user.ID] = &copied
	return true
}

func (r *Roster) Member(ctx context.Context, room, userID string) (*domain.Member, error) {
	r.mu.RLock()
	user, ok := r.rooms[room][userID]
	r.mu.RUnlock()
	if ok {
		return &domain.Member{GuildID: room, User: user}, nil
	}

	if r.cache == nil {
		return nil, nil
	}
	var stored domain.User
	found, err := r.cache.HGetJSON(ctx, rosterKey(room), userID, &stored)
	if err != nil || !found {
		return nil, err
	}
	r.remember(room, &stored)
	return &domain.Member{GuildID: room, User: &stored}, nil
}

func (r *Roster) Members(ctx context.Context, room string) ([]*domain.Member, error) {
	if r.cache != nil {
		r.load(ctx, room)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	users := r.rooms[room]
	return lo.Map(r.order[room], func(id string, _ int) *domain.Member {
		return &domain.Member{GuildID: room, User: users[id]}
	}), nil
}

func (r *Roster) User(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, users := range r.rooms {
		if user, ok := users[userID]; ok {
			return user, nil
		}
	}
	return nil, nil
}

func (r *Roster) Users(context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.User
	for room, ids := range r.order {
		for _, id := range ids {
			out = append(out, r.rooms[room][id])
		}
	}
	return lo.UniqBy(out, func(u *domain.User) string { return u.ID }), nil
}

// load merges the persisted hash for room into memory.
func (r *Roster) load(ctx context.Context, room string) {
	entries, err := r.cache.HGetAll(ctx, rosterKey(room))
	if err != nil {
		return
	}
	for _, raw := range entries {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
			continue
		}
		r.remember(room, &user)
	}
}
