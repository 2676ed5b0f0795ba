package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/normalizer"
	"go-jobdash-backend/internal/query"
	"go-jobdash-backend/internal/window"
	"go-jobdash-backend/pkg/apperror"
	"go-jobdash-backend/pkg/saramin"
)

// SaraminAPI is the remote scraping/matching service surface the usecases
// depend on. Satisfied by *saramin.Client; mocked in tests.
type SaraminAPI interface {
	AllJobs(ctx context.Context) (*saramin.AllJobsResponse, error)
	RecommendedJobs(ctx context.Context) (*saramin.RecommendedResponse, error)
	RunAutoMatching(ctx context.Context) (*saramin.MatchingResponse, error)
	ApplySaraminJobs(ctx context.Context) (*saramin.ApplyResponse, error)
	TriggerScrape(ctx context.Context) (*saramin.ScrapeResponse, error)
}

// cachedJobs is the envelope payload under the recommended-jobs key.
type cachedJobs struct {
	Jobs []domain.Job `json:"jobs"`
}

type jobUsecase struct {
	mu       sync.Mutex
	jobs     []domain.Job
	fallback bool
	criteria domain.FilterCriteria
	order    domain.SortOrder

	window   *window.Controller
	api      SaraminAPI
	store    domain.CacheStore
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

// NewJobUsecase builds the job pipeline owner. Persisted sort order and the
// hide-expired flag are restored from the store; a cached recommendation set
// seeds the collection so the dashboard renders before the first fetch. The
// window is sized for viewportWidth and restores the persisted scroll depth.
func NewJobUsecase(api SaraminAPI, store domain.CacheStore, validate *validator.Validate, viewportWidth int, log *slog.Logger) domain.JobUsecase {
	u := &jobUsecase{
		api:      api,
		store:    store,
		validate: validate,
		criteria: domain.DefaultCriteria(),
		order:    domain.SortByScore,
		log:      log,
		now:      time.Now,
	}

	if raw, ok := store.LoadRaw(domain.KeySortOrder); ok && domain.ValidSortOrder(domain.SortOrder(raw)) {
		u.order = domain.SortOrder(raw)
	}
	if raw, ok := store.LoadRaw(domain.KeyHideExpired); ok {
		if hide, err := strconv.ParseBool(raw); err == nil {
			u.criteria.HideExpired = hide
		}
	}

	var cached cachedJobs
	if store.Load(domain.KeyRecommendedJobs, 0, &cached) && len(cached.Jobs) > 0 {
		u.jobs = cached.Jobs
		log.Info("seeded job collection from cache", "count", len(cached.Jobs))
	}

	u.window = window.New(store, u.filteredTotal, viewportWidth, log)
	return u
}

// RefreshAllJobs replaces the collection with the full scraped list,
// substituting the bundled payload when the remote side fails. Always
// succeeds from the caller's point of view.
func (u *jobUsecase) RefreshAllJobs(ctx context.Context) error {
	raws, fallback := u.fetchAll(ctx)
	u.install(normalizer.NormalizeAll(raws), fallback, false)
	return nil
}

func (u *jobUsecase) fetchAll(ctx context.Context) ([]domain.RawJobPayload, bool) {
	if u.api == nil {
		return saramin.FallbackJobs(), true
	}
	resp, err := u.api.AllJobs(ctx)
	if err != nil || !resp.Success {
		u.log.Info("all-jobs fetch failed, using fallback data", "error", err)
		return saramin.FallbackJobs(), true
	}
	return resp.Jobs, false
}

// RefreshRecommended replaces the collection with the match-scored list.
// A fresh-enough cached copy short-circuits the remote call unless force is
// set. If several refreshes overlap, whichever resolves last wins the
// collection.
func (u *jobUsecase) RefreshRecommended(ctx context.Context, force bool) error {
	if !force {
		var cached cachedJobs
		if u.store.Load(domain.KeyRecommendedJobs, 0, &cached) && len(cached.Jobs) > 0 {
			u.install(cached.Jobs, false, false)
			return nil
		}
	}

	raws, fallback := u.fetchRecommended(ctx)
	jobs := normalizer.NormalizeAll(raws)
	u.install(jobs, fallback, true)
	return nil
}

func (u *jobUsecase) fetchRecommended(ctx context.Context) ([]domain.RawJobPayload, bool) {
	if u.api == nil {
		return saramin.FallbackRecommended(), true
	}
	resp, err := u.api.RecommendedJobs(ctx)
	if err != nil || !resp.Success {
		u.log.Info("recommended-jobs fetch failed, using fallback data", "error", err)
		return saramin.FallbackRecommended(), true
	}
	return resp.RecommendedJobs, false
}

// install swaps in a new source collection and resets the window (new data,
// unlike a filter change, starts the user back at the top).
func (u *jobUsecase) install(jobs []domain.Job, fallback, persist bool) {
	u.mu.Lock()
	u.jobs = jobs
	u.fallback = fallback
	u.mu.Unlock()

	u.window.ResetForNewData()

	if persist && !fallback {
		u.store.Save(domain.KeyRecommendedJobs, cachedJobs{Jobs: jobs})
	}
}

func (u *jobUsecase) List(ctx context.Context) (*domain.JobListPage, error) {
	return u.page(), nil
}

func (u *jobUsecase) UpdateCriteria(ctx context.Context, patch domain.CriteriaPatch) (*domain.JobListPage, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.BadRequest("invalid filter criteria: " + err.Error())
	}

	u.mu.Lock()
	u.criteria = patch.Apply(u.criteria)
	hideExpired := u.criteria.HideExpired
	u.mu.Unlock()

	if patch.HideExpired != nil {
		u.store.SaveRaw(domain.KeyHideExpired, strconv.FormatBool(hideExpired))
	}
	return u.page(), nil
}

func (u *jobUsecase) ResetCriteria(ctx context.Context) (*domain.JobListPage, error) {
	u.mu.Lock()
	u.criteria = domain.DefaultCriteria()
	u.mu.Unlock()

	u.store.SaveRaw(domain.KeyHideExpired, "false")
	return u.page(), nil
}

func (u *jobUsecase) SetSortOrder(ctx context.Context, order domain.SortOrder) error {
	if !domain.ValidSortOrder(order) {
		return apperror.BadRequest("unknown sort order: " + string(order))
	}

	u.mu.Lock()
	u.order = order
	u.mu.Unlock()

	u.store.SaveRaw(domain.KeySortOrder, string(order))
	return nil
}

func (u *jobUsecase) LoadMore(ctx context.Context) (*domain.JobListPage, error) {
	u.window.LoadMore(u.filteredTotal())
	return u.page(), nil
}

func (u *jobUsecase) TrackScroll(ctx context.Context, offset, sentinelDistance int) {
	u.window.TrackScroll(offset, sentinelDistance)
}

// filteredSorted runs the pipeline: collection -> filter -> sort.
func (u *jobUsecase) filteredSorted() ([]domain.Job, domain.FilterCriteria, domain.SortOrder, bool) {
	u.mu.Lock()
	jobs := u.jobs
	criteria := u.criteria
	order := u.order
	fallback := u.fallback
	u.mu.Unlock()

	filtered := query.Filter(jobs, criteria, u.now())
	return query.Sort(filtered, order), criteria, order, fallback
}

func (u *jobUsecase) filteredTotal() int {
	sorted, _, _, _ := u.filteredSorted()
	return len(sorted)
}

func (u *jobUsecase) page() *domain.JobListPage {
	sorted, criteria, order, fallback := u.filteredSorted()
	visible := u.window.Visible(len(sorted))

	return &domain.JobListPage{
		Jobs:          sorted[:visible],
		Total:         len(sorted),
		Visible:       visible,
		Page:          u.window.Page(),
		ItemsPerPage:  u.window.ItemsPerPage(),
		SortOrder:     order,
		Criteria:      criteria,
		ShowScrollTop: u.window.ShowScrollTop(),
		FallbackData:  fallback,
	}
}
