package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/normalizer"
)

func TestNormalizeTotality(t *testing.T) {
	t.Run("nil input yields zero job", func(t *testing.T) {
		job := normalizer.Normalize(nil)
		assert.Equal(t, domain.Job{}, job)
		assert.Equal(t, 0, job.ID)
	})

	t.Run("empty input yields zero job", func(t *testing.T) {
		job := normalizer.Normalize(domain.RawJobPayload{})
		assert.Equal(t, domain.Job{}, job)
	})

	t.Run("garbage values coerce to defaults", func(t *testing.T) {
		job := normalizer.Normalize(domain.RawJobPayload{
			"id":       "not-a-number",
			"score":    []string{"nope"},
			"jobTitle": 42,
		})
		assert.Equal(t, 0, job.ID)
		assert.Equal(t, float64(0), job.Score)
		assert.Equal(t, "42", job.JobTitle)
	})
}

func TestNormalizeAliasPrecedence(t *testing.T) {
	t.Run("snake_case keys resolve", func(t *testing.T) {
		job := normalizer.Normalize(domain.RawJobPayload{
			"id":              float64(7),
			"company_name":    "네이버클라우드",
			"job_title":       "백엔드 개발자",
			"job_location":    "성남시 분당구",
			"match_score":     float64(92),
			"is_applied":      float64(1),
			"employment_type": "정규직",
		})
		assert.Equal(t, 7, job.ID)
		assert.Equal(t, "네이버클라우드", job.CompanyName)
		assert.Equal(t, "백엔드 개발자", job.JobTitle)
		assert.Equal(t, float64(92), job.Score)
		assert.Equal(t, 1, job.ApplyYN)
		assert.Equal(t, "정규직", job.EmploymentType)
	})

	t.Run("score prefers score over match_score over matchScore", func(t *testing.T) {
		job := normalizer.Normalize(domain.RawJobPayload{
			"score":       float64(88),
			"match_score": float64(50),
			"matchScore":  float64(10),
		})
		assert.Equal(t, float64(88), job.Score)

		job = normalizer.Normalize(domain.RawJobPayload{
			"match_score": float64(50),
			"matchScore":  float64(10),
		})
		assert.Equal(t, float64(50), job.Score)
	})

	t.Run("apply_yn prefers explicit flag then isApplied then is_applied", func(t *testing.T) {
		job := normalizer.Normalize(domain.RawJobPayload{
			"apply_yn":   float64(0),
			"isApplied":  float64(1),
			"is_applied": float64(1),
		})
		assert.Equal(t, 0, job.ApplyYN)

		job = normalizer.Normalize(domain.RawJobPayload{"isApplied": true})
		assert.Equal(t, 1, job.ApplyYN)

		job = normalizer.Normalize(domain.RawJobPayload{"is_applied": float64(1)})
		assert.Equal(t, 1, job.ApplyYN)
	})
}

func TestNormalizeExtraKeys(t *testing.T) {
	job := normalizer.Normalize(domain.RawJobPayload{
		"id":           float64(1),
		"posted_by":    "crawler-7",
		"match_score":  float64(70),
		"company_name": "두레이테크",
	})

	// Verbatim copies survive.
	assert.Equal(t, "crawler-7", job.Extra["posted_by"])
	assert.Equal(t, float64(70), job.Extra["match_score"])

	// snake_case keys grow camelCase aliases when the alias is not canonical.
	assert.Equal(t, "crawler-7", job.Extra["postedBy"])
	assert.Equal(t, float64(70), job.Extra["matchScore"])

	// The alias of company_name is a canonical field, so it must not shadow.
	_, exists := job.Extra["companyName"]
	assert.False(t, exists)
	assert.Equal(t, "두레이테크", job.CompanyName)
}

func TestNormalizeIdempotence(t *testing.T) {
	raw := domain.RawJobPayload{
		"id":           float64(3),
		"company_name": "미림중공업",
		"job_title":    "사내 시스템 개발자",
		"match_score":  float64(54),
		"is_applied":   float64(0),
		"deadline":     "2026-10-02",
		"crawl_batch":  "b-118",
	}

	first := normalizer.Normalize(raw)
	second := normalizer.Normalize(normalizer.AsRaw(first))
	assert.Equal(t, first, second)
}

func TestNormalizeAll(t *testing.T) {
	raws := []domain.RawJobPayload{
		{"id": float64(2), "jobTitle": "b"},
		{"id": float64(1), "jobTitle": "a"},
		nil,
	}

	jobs := normalizer.NormalizeAll(raws)
	assert.Len(t, jobs, 3)
	assert.Equal(t, 2, jobs[0].ID)
	assert.Equal(t, 1, jobs[1].ID)
	assert.Equal(t, domain.Job{}, jobs[2])
}
