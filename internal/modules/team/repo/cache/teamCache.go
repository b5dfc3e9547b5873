package cache

import (
	"context"
	"log/slog"

	"league/internal/init/cache"
	"league/internal/models"
)

const (
	keyTeamsAll        = "teams:all"
	keyTeamsWithSeries = "teams:with-series"
	keyTeamsCount      = "teams:count"
)

// TeamCache реализует интерфейс repo.TeamCache.
type TeamCache struct {
	c   *cache.Cache
	log *slog.Logger
}

func NewTeamCache(appCache *cache.Cache, log *slog.Logger) *TeamCache {
	return &TeamCache{c: appCache, log: log}
}

func (tc *TeamCache) GetTeams(withSeries bool) ([]*models.Team, int64, bool) {
	var teams []*models.Team
	gen, found, err := tc.c.GetJSON(context.Background(), listKey(withSeries), &teams)
	if err != nil {
		tc.log.Warn("failed to read teams from cache", slog.String("op", "TeamCache.GetTeams"), "error", err)
		return nil, gen, false
	}
	return teams, gen, found
}

func (tc *TeamCache) SaveTeams(gen int64, withSeries bool, teams []*models.Team) {
	if err := tc.c.SetJSON(context.Background(), gen, listKey(withSeries), teams); err != nil {
		tc.log.Warn("failed to save teams to cache", slog.String("op", "TeamCache.SaveTeams"), "error", err)
	}
}

func (tc *TeamCache) GetCount() (int64, int64, bool) {
	var count int64
	gen, found, err := tc.c.GetJSON(context.Background(), keyTeamsCount, &count)
	if err != nil {
		return 0, gen, false
	}
	return count, gen, found
}

func (tc *TeamCache) SaveCount(gen int64, count int64) {
	if err := tc.c.SetJSON(context.Background(), gen, keyTeamsCount, count); err != nil {
		tc.log.Warn("failed to save teams count to cache", slog.String("op", "TeamCache.SaveCount"), "error", err)
	}
}

func (tc *TeamCache) Invalidate() {
	if err := tc.c.Bump(context.Background()); err != nil {
		tc.log.Error("failed to invalidate cache", slog.String("op", "TeamCache.Invalidate"), "error", err)
	}
}

func listKey(withSeries bool) string {
	if withSeries {
		return keyTeamsWithSeries
	}
	return keyTeamsAll
}
