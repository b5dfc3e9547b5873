package cache

import (
	"context"
	"log/slog"

	"league/internal/init/cache"
	"league/internal/models"
)

const (
	keyPlayersAll    = "players:all"
	keyPlayersNewest = "players:newest"
	keyPlayersCount  = "players:count"
)

// PlayerCache реализует интерфейс repo.PlayerCache поверх общего кэша с поколениями.
type PlayerCache struct {
	c   *cache.Cache
	log *slog.Logger
}

func NewPlayerCache(appCache *cache.Cache, log *slog.Logger) *PlayerCache {
	return &PlayerCache{c: appCache, log: log}
}

func (pc *PlayerCache) GetPlayers(newestFirst bool) ([]*models.Player, int64, bool) {
	var players []*models.Player
	gen, found, err := pc.c.GetJSON(context.Background(), listKey(newestFirst), &players)
	if err != nil {
		pc.log.Warn("failed to read players from cache", slog.String("op", "PlayerCache.GetPlayers"), "error", err)
		return nil, gen, false
	}
	return players, gen, found
}

func (pc *PlayerCache) SavePlayers(gen int64, newestFirst bool, players []*models.Player) {
	if err := pc.c.SetJSON(context.Background(), gen, listKey(newestFirst), players); err != nil {
		pc.log.Warn("failed to save players to cache", slog.String("op", "PlayerCache.SavePlayers"), "error", err)
	}
}

func (pc *PlayerCache) GetCount() (int64, int64, bool) {
	var count int64
	gen, found, err := pc.c.GetJSON(context.Background(), keyPlayersCount, &count)
	if err != nil {
		return 0, gen, false
	}
	return count, gen, found
}

func (pc *PlayerCache) SaveCount(gen int64, count int64) {
	if err := pc.c.SetJSON(context.Background(), gen, keyPlayersCount, count); err != nil {
		pc.log.Warn("failed to save players count to cache", slog.String("op", "PlayerCache.SaveCount"), "error", err)
	}
}

// Invalidate сдвигает поколение: сбрасываются и списки команд и серий, в которые входят игроки.
func (pc *PlayerCache) Invalidate() {
	if err := pc.c.Bump(context.Background()); err != nil {
		pc.log.Error("failed to invalidate cache", slog.String("op", "PlayerCache.Invalidate"), "error", err)
	}
}

func listKey(newestFirst bool) string {
	if newestFirst {
		return keyPlayersNewest
	}
	return keyPlayersAll
}
