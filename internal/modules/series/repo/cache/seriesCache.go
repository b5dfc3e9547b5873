package cache

import (
	"context"
	"log/slog"

	"league/internal/init/cache"
	"league/internal/models"
)

const (
	keySeriesAll    = "series:all"
	keySeriesLatest = "series:latest"
	keySeriesCount  = "series:count"
)

type SeriesCache struct {
	c   *cache.Cache
	log *slog.Logger
}

func NewSeriesCache(appCache *cache.Cache, log *slog.Logger) *SeriesCache {
	return &SeriesCache{c: appCache, log: log}
}

func (sc *SeriesCache) GetSeriesList(latest bool) ([]*models.Series, int64, bool) {
	var list []*models.Series
	gen, found, err := sc.c.GetJSON(context.Background(), listKey(latest), &list)
	if err != nil {
		sc.log.Warn("failed to read series from cache", slog.String("op", "SeriesCache.GetSeriesList"), "error", err)
		return nil, gen, false
	}
	return list, gen, found
}

func (sc *SeriesCache) SaveSeriesList(gen int64, latest bool, list []*models.Series) {
	if err := sc.c.SetJSON(context.Background(), gen, listKey(latest), list); err != nil {
		sc.log.Warn("failed to save series to cache", slog.String("op", "SeriesCache.SaveSeriesList"), "error", err)
	}
}

func (sc *SeriesCache) GetCount() (int64, int64, bool) {
	var count int64
	gen, found, err := sc.c.GetJSON(context.Background(), keySeriesCount, &count)
	if err != nil {
		return 0, gen, false
	}
	return count, gen, found
}

func (sc *SeriesCache) SaveCount(gen int64, count int64) {
	if err := sc.c.SetJSON(context.Background(), gen, keySeriesCount, count); err != nil {
		sc.log.Warn("failed to save series count to cache", slog.String("op", "SeriesCache.SaveCount"), "error", err)
	}
}

func (sc *SeriesCache) Invalidate() {
	if err := sc.c.Bump(context.Background()); err != nil {
		sc.log.Error("failed to invalidate cache", slog.String("op", "SeriesCache.Invalidate"), "error", err)
	}
}

func listKey(latest bool) string {
	if latest {
		return keySeriesLatest
	}
	return keySeriesAll
}
