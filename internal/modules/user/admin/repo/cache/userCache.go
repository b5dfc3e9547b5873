package cache

import (
	"context"
	"log/slog"

	"league/internal/init/cache"
	"league/internal/models"
)

const keyUsersAll = "users:all"

// UserCache кэширует список пользователей. Пароли хранятся только в виде хеша.
type UserCache struct {
	c   *cache.Cache
	log *slog.Logger
}

func NewUserCache(appCache *cache.Cache, log *slog.Logger) *UserCache {
	return &UserCache{c: appCache, log: log}
}

func (uc *UserCache) GetUsers() ([]*models.User, int64, bool) {
	var users []*models.User
	gen, found, err := uc.c.GetJSON(context.Background(), keyUsersAll, &users)
	if err != nil {
		uc.log.Warn("failed to read users from cache", slog.String("op", "UserCache.GetUsers"), "error", err)
		return nil, gen, false
	}
	return users, gen, found
}

func (uc *UserCache) SaveUsers(gen int64, users []*models.User) {
	if err := uc.c.SetJSON(context.Background(), gen, keyUsersAll, users); err != nil {
		uc.log.Warn("failed to save users to cache", slog.String("op", "UserCache.SaveUsers"), "error", err)
	}
}

func (uc *UserCache) Invalidate() {
	if err := uc.c.Bump(context.Background()); err != nil {
		uc.log.Error("failed to invalidate cache", slog.String("op", "UserCache.Invalidate"), "error", err)
	}
}
