package domain

import (
	"context"
	"encoding/json"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is the canonical posting model. Every raw payload shape coming from the
// scraping services is reconciled into this one representation by the
// normalizer; downstream code never inspects raw field names.
type Job struct {
	ID             int     `json:"id"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
	Strength       string  `json:"strength"`
	Weakness       string  `json:"weakness"`
	ApplyYN        int     `json:"apply_yn"`
	CompanyName    string  `json:"companyName"`
	JobTitle       string  `json:"jobTitle"`
	JobLocation    string  `json:"jobLocation"`
	CompanyType    string  `json:"companyType"`
	URL            string  `json:"url"`
	Deadline       string  `json:"deadline,omitempty"`
	EmploymentType string  `json:"employmentType,omitempty"`
	JobType        string  `json:"jobType,omitempty"`
	JobSalary      string  `json:"jobSalary,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`

	// Extra carries source keys that have no canonical field, under both the
	// original spelling and a derived camelCase alias. Canonical fields win
	// on marshal.
	Extra map[string]any `json:"-"`
}

// RawJobPayload is an untyped posting as delivered by the remote services.
// Keys may be snake_case or camelCase for the same logical field; any field
// may be missing.
type RawJobPayload map[string]any

// MarshalJSON flattens Extra into the object alongside the canonical fields.
func (j Job) MarshalJSON() ([]byte, error) {
	type alias Job
	base, err := json.Marshal(alias(j))
	if err != nil {
		return nil, err
	}
	if len(j.Extra) == 0 {
		return base, nil
	}

	var m map[string]any
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range j.Extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// JobListPage is one rendered slice of the filtered+sorted collection.
type JobListPage struct {
	Jobs          []Job          `json:"jobs"`
	Total         int            `json:"total"`
	Visible       int            `json:"visible"`
	Page          int            `json:"page"`
	ItemsPerPage  int            `json:"items_per_page"`
	SortOrder     SortOrder      `json:"sort_order"`
	Criteria      FilterCriteria `json:"criteria"`
	ShowScrollTop bool           `json:"show_scroll_top"`
	FallbackData  bool           `json:"fallback_data"`
}

type JobUsecase interface {
	RefreshAllJobs(ctx context.Context) error
	RefreshRecommended(ctx context.Context, force bool) error
	List(ctx context.Context) (*JobListPage, error)
	UpdateCriteria(ctx context.Context, patch CriteriaPatch) (*JobListPage, error)
	ResetCriteria(ctx context.Context) (*JobListPage, error)
	SetSortOrder(ctx context.Context, order SortOrder) error
	LoadMore(ctx context.Context) (*JobListPage, error)
	TrackScroll(ctx context.Context, offset, sentinelDistance int)
}
