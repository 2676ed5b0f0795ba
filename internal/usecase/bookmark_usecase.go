package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/pkg/apperror"
)

// Bookmarks persist as a bare JSON array under a single key with no expiry;
// the user clears them by hand. The URL is the identity: one bookmark per
// posting URL.
type bookmarkUsecase struct {
	mu    sync.Mutex
	store domain.CacheStore
	log   *slog.Logger
	now   func() time.Time
}

func NewBookmarkUsecase(store domain.CacheStore, log *slog.Logger) domain.BookmarkUsecase {
	return &bookmarkUsecase{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (u *bookmarkUsecase) List(ctx context.Context) []domain.BookmarkedJob {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.read()
}

func (u *bookmarkUsecase) Add(ctx context.Context, job domain.Job) (*domain.BookmarkedJob, error) {
	if job.URL == "" {
		return nil, apperror.BadRequest("bookmark requires a job url")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	marks := u.read()
	for _, m := range marks {
		if m.URL == job.URL {
			return nil, apperror.Conflict("job already bookmarked")
		}
	}

	mark := domain.BookmarkedJob{
		ID:           job.ID,
		CompanyName:  job.CompanyName,
		JobTitle:     job.JobTitle,
		URL:          job.URL,
		Deadline:     job.Deadline,
		BookmarkedAt: u.now().Format(time.RFC3339),
	}
	marks = append(marks, mark)
	u.write(marks)
	return &mark, nil
}

func (u *bookmarkUsecase) Remove(ctx context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	marks := u.read()
	kept := marks[:0]
	for _, m := range marks {
		if m.URL != url {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(marks) {
		return domain.ErrNotFound
	}
	u.write(kept)
	return nil
}

func (u *bookmarkUsecase) Clear(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.store.Remove(domain.KeyBookmarks)
}

func (u *bookmarkUsecase) read() []domain.BookmarkedJob {
	raw, ok := u.store.LoadRaw(domain.KeyBookmarks)
	if !ok || raw == "" {
		return nil
	}
	var marks []domain.BookmarkedJob
	if err := json.Unmarshal([]byte(raw), &marks); err != nil {
		// Corrupt store is a cache miss, not an error.
		u.log.Warn("bookmark store corrupt, starting empty", "error", err)
		return nil
	}
	return marks
}

func (u *bookmarkUsecase) write(marks []domain.BookmarkedJob) {
	b, err := json.Marshal(marks)
	if err != nil {
		u.log.Warn("bookmark marshal failed", "error", err)
		return
	}
	u.store.SaveRaw(domain.KeyBookmarks, string(b))
}
