package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/usecase"
	"go-jobdash-backend/pkg/cache"
	"go-jobdash-backend/pkg/saramin"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore() domain.CacheStore {
	return cache.NewStore(cache.NewMemorySubstrate(), testLogger())
}

// Mock remote API
type MockSaraminAPI struct {
	mock.Mock
}

func (m *MockSaraminAPI) AllJobs(ctx context.Context) (*saramin.AllJobsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saramin.AllJobsResponse), args.Error(1)
}

func (m *MockSaraminAPI) RecommendedJobs(ctx context.Context) (*saramin.RecommendedResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saramin.RecommendedResponse), args.Error(1)
}

func (m *MockSaraminAPI) RunAutoMatching(ctx context.Context) (*saramin.MatchingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saramin.MatchingResponse), args.Error(1)
}

func (m *MockSaraminAPI) ApplySaraminJobs(ctx context.Context) (*saramin.ApplyResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saramin.ApplyResponse), args.Error(1)
}

func (m *MockSaraminAPI) TriggerScrape(ctx context.Context) (*saramin.ScrapeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saramin.ScrapeResponse), args.Error(1)
}

func rawJob(id int, score float64, applied int) domain.RawJobPayload {
	return domain.RawJobPayload{
		"id": float64(id), "score": score, "apply_yn": float64(applied),
		"jobTitle": "posting", "companyName": "company",
	}
}

func newJobUC(api usecase.SaraminAPI, store domain.CacheStore) domain.JobUsecase {
	return usecase.NewJobUsecase(api, store, validator.New(), 1280, testLogger())
}

func TestRefreshFallsBackOnRemoteFailure(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("RecommendedJobs", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := newJobUC(mockAPI, newStore())
	assert.NoError(t, uc.RefreshRecommended(context.Background(), true))

	page, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.True(t, page.FallbackData)
	assert.NotEmpty(t, page.Jobs, "fallback keeps the dashboard populated")
}

func TestRefreshRecommendedServesCacheUnlessForced(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("RecommendedJobs", mock.Anything).Return(&saramin.RecommendedResponse{
		Success:         true,
		RecommendedJobs: []domain.RawJobPayload{rawJob(1, 90, 1)},
	}, nil)

	store := newStore()
	uc := newJobUC(mockAPI, store)

	assert.NoError(t, uc.RefreshRecommended(context.Background(), true))
	assert.NoError(t, uc.RefreshRecommended(context.Background(), false))
	mockAPI.AssertNumberOfCalls(t, "RecommendedJobs", 1)

	assert.NoError(t, uc.RefreshRecommended(context.Background(), true))
	mockAPI.AssertNumberOfCalls(t, "RecommendedJobs", 2)
}

func TestListAppliesCriteria(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("AllJobs", mock.Anything).Return(&saramin.AllJobsResponse{
		Success: true,
		Jobs: []domain.RawJobPayload{
			rawJob(1, 85, 1),
			rawJob(2, 90, 0),
			rawJob(3, 60, 1),
		},
	}, nil)

	uc := newJobUC(mockAPI, newStore())
	assert.NoError(t, uc.RefreshAllJobs(context.Background()))

	minScore := 80.0
	applicable := true
	page, err := uc.UpdateCriteria(context.Background(), domain.CriteriaPatch{
		MinScore:       &minScore,
		OnlyApplicable: &applicable,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.Jobs[0].ID)

	// Reset restores the all-permissive defaults.
	page, err = uc.ResetCriteria(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}

func TestUpdateCriteriaValidation(t *testing.T) {
	uc := newJobUC(nil, newStore())

	bad := 250.0
	_, err := uc.UpdateCriteria(context.Background(), domain.CriteriaPatch{MinScore: &bad})
	assert.Error(t, err)
}

func TestSortOrderPersistsAcrossSessions(t *testing.T) {
	store := newStore()

	uc := newJobUC(nil, store)
	assert.NoError(t, uc.SetSortOrder(context.Background(), domain.SortByDeadline))
	assert.Error(t, uc.SetSortOrder(context.Background(), domain.SortOrder("alphabetical")))

	// A new session over the same store restores the choice.
	uc2 := newJobUC(nil, store)
	page, err := uc2.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.SortByDeadline, page.SortOrder)
}

func TestHideExpiredPersists(t *testing.T) {
	store := newStore()
	uc := newJobUC(nil, store)

	hide := true
	_, err := uc.UpdateCriteria(context.Background(), domain.CriteriaPatch{HideExpired: &hide})
	assert.NoError(t, err)

	uc2 := newJobUC(nil, store)
	page, err := uc2.List(context.Background())
	assert.NoError(t, err)
	assert.True(t, page.Criteria.HideExpired)
}

func TestLoadMoreNeverOverruns(t *testing.T) {
	raws := make([]domain.RawJobPayload, 20)
	for i := range raws {
		raws[i] = rawJob(i+1, 50, 0)
	}
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("AllJobs", mock.Anything).Return(&saramin.AllJobsResponse{Success: true, Jobs: raws}, nil)

	uc := newJobUC(mockAPI, newStore())
	assert.NoError(t, uc.RefreshAllJobs(context.Background()))

	page, _ := uc.List(context.Background())
	assert.Equal(t, 15, page.Visible)
	assert.Equal(t, 20, page.Total)

	lastPage := page.Page
	for i := 0; i < 4; i++ {
		page, _ = uc.LoadMore(context.Background())
		assert.GreaterOrEqual(t, page.Page, lastPage, "page never decreases")
		assert.LessOrEqual(t, page.Visible, page.Total)
		lastPage = page.Page
	}
	assert.Equal(t, 20, page.Visible)
}

func TestNewDataResetsWindow(t *testing.T) {
	raws := make([]domain.RawJobPayload, 40)
	for i := range raws {
		raws[i] = rawJob(i+1, 50, 0)
	}
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("AllJobs", mock.Anything).Return(&saramin.AllJobsResponse{Success: true, Jobs: raws}, nil)

	uc := newJobUC(mockAPI, newStore())
	assert.NoError(t, uc.RefreshAllJobs(context.Background()))
	uc.LoadMore(context.Background())

	// New source data collapses the window back to one page.
	assert.NoError(t, uc.RefreshAllJobs(context.Background()))
	page, _ := uc.List(context.Background())
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 15, page.Visible)
}

func TestAutoMatchingUsesCachedResult(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("RunAutoMatching", mock.Anything).Return(&saramin.MatchingResponse{
		Success:     true,
		MatchedJobs: []domain.RawJobPayload{rawJob(1, 95, 0)},
		Message:     "ok",
	}, nil)

	uc := usecase.NewActionUsecase(mockAPI, newStore(), testLogger())

	first, cached, err := uc.RunAutoMatching(context.Background(), false)
	assert.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, first.MatchedJobs, 1)
	assert.Equal(t, 1, first.MatchedJobs[0].ID)

	_, cached, err = uc.RunAutoMatching(context.Background(), false)
	assert.NoError(t, err)
	assert.True(t, cached)
	mockAPI.AssertNumberOfCalls(t, "RunAutoMatching", 1)

	_, cached, _ = uc.RunAutoMatching(context.Background(), true)
	assert.False(t, cached)
	mockAPI.AssertNumberOfCalls(t, "RunAutoMatching", 2)
}

func TestAutoMatchingFallback(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("RunAutoMatching", mock.Anything).Return(nil, errors.New("timeout"))

	uc := usecase.NewActionUsecase(mockAPI, newStore(), testLogger())
	result, cached, err := uc.RunAutoMatching(context.Background(), true)
	assert.NoError(t, err, "remote failure is not an error, it is a fallback")
	assert.False(t, cached)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.MatchedJobs)
}

func TestTriggerScrapeSurvivesFailure(t *testing.T) {
	mockAPI := new(MockSaraminAPI)
	mockAPI.On("TriggerScrape", mock.Anything).Return(nil, errors.New("unreachable"))

	uc := usecase.NewActionUsecase(mockAPI, newStore(), testLogger())
	result, err := uc.TriggerScrape(context.Background())
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestBookmarkLifecycle(t *testing.T) {
	uc := usecase.NewBookmarkUsecase(newStore(), testLogger())
	ctx := context.Background()

	job := domain.Job{ID: 1, CompanyName: "회사", JobTitle: "공고", URL: "https://example.com/1"}

	mark, err := uc.Add(ctx, job)
	assert.NoError(t, err)
	assert.Equal(t, job.URL, mark.URL)
	assert.NotEmpty(t, mark.BookmarkedAt)

	t.Run("duplicate url rejected", func(t *testing.T) {
		_, err := uc.Add(ctx, job)
		assert.Error(t, err)
	})

	t.Run("missing url rejected", func(t *testing.T) {
		_, err := uc.Add(ctx, domain.Job{ID: 2})
		assert.Error(t, err)
	})

	assert.Len(t, uc.List(ctx), 1)

	t.Run("remove unknown reports not found", func(t *testing.T) {
		err := uc.Remove(ctx, "https://example.com/none")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, uc.Remove(ctx, job.URL))
	assert.Empty(t, uc.List(ctx))

	_, _ = uc.Add(ctx, job)
	uc.Clear(ctx)
	assert.Empty(t, uc.List(ctx))
}

func TestBookmarksSurviveSessions(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	uc := usecase.NewBookmarkUsecase(store, testLogger())
	_, err := uc.Add(ctx, domain.Job{ID: 1, URL: "https://example.com/1"})
	assert.NoError(t, err)

	uc2 := usecase.NewBookmarkUsecase(store, testLogger())
	assert.Len(t, uc2.List(ctx), 1)
}

func TestCacheUsecaseStatusAndClear(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	store.Save(domain.KeyRecommendedJobs, map[string]any{"jobs": []any{}})
	store.SaveRaw(domain.KeySortOrder, "score")

	uc := usecase.NewCacheUsecase(store, testLogger())
	statuses := uc.Status(ctx)
	assert.Len(t, statuses, len(domain.CachedKeys()))

	byKey := make(map[string]domain.CacheStatus)
	for _, st := range statuses {
		byKey[st.Key] = st
	}
	assert.True(t, byKey[domain.KeyRecommendedJobs].Exists)
	assert.True(t, byKey[domain.KeySortOrder].Raw)

	uc.Clear(ctx)
	for _, st := range uc.Status(ctx) {
		assert.False(t, st.Exists)
	}
}
