package usecase

import (
	"context"
	"log/slog"

	"go-jobdash-backend/internal/domain"
)

type cacheUsecase struct {
	store domain.CacheStore
	log   *slog.Logger
}

func NewCacheUsecase(store domain.CacheStore, log *slog.Logger) domain.CacheUsecase {
	return &cacheUsecase{store: store, log: log}
}

// Status reports the diagnostic view over every known dashboard key.
func (u *cacheUsecase) Status(ctx context.Context) []domain.CacheStatus {
	return u.store.Status(domain.CachedKeys())
}

// Clear wipes every known dashboard key, bookmarks included.
func (u *cacheUsecase) Clear(ctx context.Context) {
	u.store.ClearAll(domain.CachedKeys())
	u.log.Info("cache cleared", "keys", len(domain.CachedKeys()))
}
