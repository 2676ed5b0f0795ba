package saramin

import "go-jobdash-backend/internal/domain"

// Response shapes mirror the remote service's JSON. Job payloads stay
// untyped here; the normalizer owns field reconciliation.

type AllJobsResponse struct {
	Success bool                   `json:"success"`
	Jobs    []domain.RawJobPayload `json:"jobs"`
	Message string                 `json:"message,omitempty"`
}

type RecommendedResponse struct {
	Success         bool                   `json:"success"`
	RecommendedJobs []domain.RawJobPayload `json:"recommendedJobs"`
	Message         string                 `json:"message,omitempty"`
}

type MatchingResponse struct {
	Success     bool                   `json:"success"`
	MatchedJobs []domain.RawJobPayload `json:"matchedJobs,omitempty"`
	Message     string                 `json:"message,omitempty"`
}

type ApplyResponse struct {
	Success     bool                   `json:"success"`
	AppliedJobs []domain.RawJobPayload `json:"appliedJobs,omitempty"`
	Message     string                 `json:"message,omitempty"`
}

type ScrapeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
