package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/normalizer"
	"go-jobdash-backend/pkg/saramin"
)

type actionUsecase struct {
	api   SaraminAPI
	store domain.CacheStore
	log   *slog.Logger
	now   func() time.Time
}

func NewActionUsecase(api SaraminAPI, store domain.CacheStore, log *slog.Logger) domain.ActionUsecase {
	return &actionUsecase{
		api:   api,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// RunAutoMatching proxies the remote matching run. The boolean reports
// whether the result came from cache. Failures degrade to the bundled demo
// result rather than erroring out.
func (u *actionUsecase) RunAutoMatching(ctx context.Context, force bool) (*domain.AutoMatchingResult, bool, error) {
	if !force {
		var cached domain.AutoMatchingResult
		if u.store.Load(domain.KeyAutoMatching, 0, &cached) {
			return &cached, true, nil
		}
	}

	resp := u.callMatching(ctx)
	result := &domain.AutoMatchingResult{
		Success:     resp.Success,
		MatchedJobs: normalizer.NormalizeAll(resp.MatchedJobs),
		Message:     resp.Message,
		Timestamp:   u.now().Format(time.RFC3339),
	}
	u.store.Save(domain.KeyAutoMatching, result)
	return result, false, nil
}

func (u *actionUsecase) callMatching(ctx context.Context) *saramin.MatchingResponse {
	if u.api == nil {
		return saramin.FallbackMatching()
	}
	resp, err := u.api.RunAutoMatching(ctx)
	if err != nil || !resp.Success {
		u.log.Info("auto-matching call failed, using fallback result", "error", err)
		return saramin.FallbackMatching()
	}
	return resp
}

// ApplySaraminJobs proxies the remote bulk-apply run, same contract as
// RunAutoMatching.
func (u *actionUsecase) ApplySaraminJobs(ctx context.Context, force bool) (*domain.ApplyResult, bool, error) {
	if !force {
		var cached domain.ApplyResult
		if u.store.Load(domain.KeyApplyResult, 0, &cached) {
			return &cached, true, nil
		}
	}

	resp := u.callApply(ctx)
	result := &domain.ApplyResult{
		Success:     resp.Success,
		AppliedJobs: normalizer.NormalizeAll(resp.AppliedJobs),
		Message:     resp.Message,
		Timestamp:   u.now().Format(time.RFC3339),
	}
	u.store.Save(domain.KeyApplyResult, result)
	return result, false, nil
}

func (u *actionUsecase) callApply(ctx context.Context) *saramin.ApplyResponse {
	if u.api == nil {
		return saramin.FallbackApply()
	}
	resp, err := u.api.ApplySaraminJobs(ctx)
	if err != nil || !resp.Success {
		u.log.Info("apply call failed, using fallback result", "error", err)
		return saramin.FallbackApply()
	}
	return resp
}

// TriggerScrape fires the scraping pass and caches the acknowledgment so the
// dashboard can show the last trigger outcome.
func (u *actionUsecase) TriggerScrape(ctx context.Context) (*domain.TestResult, error) {
	result := &domain.TestResult{Timestamp: u.now().Format(time.RFC3339)}

	if u.api == nil {
		result.Message = "스크래핑 서비스가 설정되지 않았습니다"
		return result, nil
	}

	resp, err := u.api.TriggerScrape(ctx)
	if err != nil {
		u.log.Info("scrape trigger failed", "error", err)
		result.Message = "스크래핑 서비스에 연결할 수 없습니다"
		return result, nil
	}

	result.Success = resp.Success
	result.Message = resp.Message
	u.store.Save(domain.KeyTestResult, result)
	return result, nil
}
