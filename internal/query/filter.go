// Package query holds the pure filtering and ordering engines that sit
// between the canonical job collection and the display window. Both are
// side-effect free: inputs are never mutated and surviving elements keep
// their relative order.
package query

import (
	"strings"
	"time"

	"go-jobdash-backend/internal/domain"
)

// Filter applies the criteria to the collection: AND across predicate
// categories, OR within a multi-select category. Predicates are defensive
// against missing fields; a job lacking the data an active inclusion filter
// needs is dropped, not waved through.
func Filter(jobs []domain.Job, c domain.FilterCriteria, now time.Time) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if keep(j, c, now) {
			out = append(out, j)
		}
	}
	return out
}

func keep(j domain.Job, c domain.FilterCriteria, now time.Time) bool {
	if c.HideExpired && IsExpired(j, now) {
		return false
	}
	if kw := strings.TrimSpace(c.Keyword); kw != "" && !matchesKeyword(j, kw) {
		return false
	}
	if resolveScore(j) < c.MinScore {
		return false
	}
	if len(c.EmploymentTypes) > 0 && !matchesEmployment(j, c.EmploymentTypes) {
		return false
	}
	if c.CompanyType != "" && c.CompanyType != CategoryAll && !matchesCompanyType(j, c.CompanyType) {
		return false
	}
	if len(c.JobTypes) > 0 && !matchesJobType(j, c.JobTypes) {
		return false
	}
	if c.SalaryRange != "" && c.SalaryRange != CategoryAll {
		bucket, ok := salaryBucketByKey(c.SalaryRange)
		if ok && !matchesSalaryBucket(j.JobSalary, bucket) {
			return false
		}
	}
	if c.OnlyApplicable && !isApplicable(j) {
		return false
	}
	return true
}

func matchesKeyword(j domain.Job, keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, field := range []string{j.JobTitle, j.CompanyName, j.JobLocation} {
		if strings.Contains(strings.ToLower(field), kw) {
			return true
		}
	}
	return false
}

// resolveScore falls back through the legacy alias keys for jobs that were
// built outside the normalizer (bookmark restores, fixtures).
func resolveScore(j domain.Job) float64 {
	if j.Score != 0 {
		return j.Score
	}
	for _, k := range []string{"matchScore", "match_score"} {
		if v, ok := j.Extra[k]; ok {
			if f, ok := v.(float64); ok {
				return f
			}
		}
	}
	return 0
}

func resolveEmployment(j domain.Job) string {
	if j.EmploymentType != "" {
		return j.EmploymentType
	}
	for _, k := range []string{"employmentType", "employment_type"} {
		if v, ok := j.Extra[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func matchesEmployment(j domain.Job, selected []string) bool {
	emp := strings.ToLower(resolveEmployment(j))
	if emp == "" {
		return false
	}
	for _, sel := range selected {
		if strings.Contains(emp, strings.ToLower(employmentStem(sel))) {
			return true
		}
	}
	return false
}

func matchesCompanyType(j domain.Job, key string) bool {
	if key == CategoryOther {
		return !matchesAnyCategory(j.CompanyType)
	}
	category, ok := categoryByKey(key)
	if !ok {
		return true
	}
	return matchesCategory(j.CompanyType, category)
}

func matchesJobType(j domain.Job, selected []string) bool {
	jt := strings.ToLower(j.JobType)
	if jt == "" {
		return false
	}
	for _, sel := range selected {
		if strings.Contains(jt, strings.ToLower(sel)) {
			return true
		}
	}
	return false
}

func isApplicable(j domain.Job) bool {
	if j.ApplyYN == 1 {
		return true
	}
	for _, k := range []string{"isApplied", "is_applied"} {
		switch v := j.Extra[k].(type) {
		case float64:
			if v == 1 {
				return true
			}
		case int:
			if v == 1 {
				return true
			}
		case bool:
			if v {
				return true
			}
		}
	}
	return false
}
