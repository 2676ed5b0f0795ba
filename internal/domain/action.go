package domain

import "context"

// TestResult acknowledges a manual scraping trigger.
type TestResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// AutoMatchingResult is the outcome of the remote matching run.
type AutoMatchingResult struct {
	Success     bool   `json:"success"`
	MatchedJobs []Job  `json:"matchedJobs,omitempty"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
}

// ApplyResult is the outcome of the remote bulk-apply run.
type ApplyResult struct {
	Success     bool   `json:"success"`
	AppliedJobs []Job  `json:"appliedJobs,omitempty"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
}

// ActionUsecase proxies the long-running remote actions. Results are cached;
// force bypasses the cache. All three degrade to bundled fallback payloads
// when the remote side is unreachable, flagging the substitution.
type ActionUsecase interface {
	RunAutoMatching(ctx context.Context, force bool) (*AutoMatchingResult, bool, error)
	ApplySaraminJobs(ctx context.Context, force bool) (*ApplyResult, bool, error)
	TriggerScrape(ctx context.Context) (*TestResult, error)
}

// CacheUsecase exposes the diagnostic cache surface.
type CacheUsecase interface {
	Status(ctx context.Context) []CacheStatus
	Clear(ctx context.Context)
}
