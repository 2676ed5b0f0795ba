package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/query"
)

func scores(jobs []domain.Job) []float64 {
	out := make([]float64, len(jobs))
	for i, j := range jobs {
		out[i] = j.Score
	}
	return out
}

func TestSortByScore(t *testing.T) {
	jobs := []domain.Job{{ID: 1, Score: 70}, {ID: 2, Score: 95}, {ID: 3, Score: 80}}

	got := query.Sort(jobs, domain.SortByScore)
	assert.Equal(t, []float64{95, 80, 70}, scores(got))
	// Input untouched.
	assert.Equal(t, []float64{70, 95, 80}, scores(jobs))
}

func TestSortByApplyPriority(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, ApplyYN: 0, Score: 90},
		{ID: 2, ApplyYN: 1, Score: 60},
	}

	got := query.Sort(jobs, domain.SortByApply)
	assert.Equal(t, 2, got[0].ID, "applicable job leads despite lower score")
	assert.Equal(t, 1, got[1].ID)
}

func TestSortByDeadline(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, Deadline: "2024.03.01"},
		{ID: 2, Deadline: "2024-01-15"},
		{ID: 3}, // undated sorts last
	}

	got := query.Sort(jobs, domain.SortByDeadline)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestSortByRecent(t *testing.T) {
	jobs := []domain.Job{{ID: 11}, {ID: 43}, {ID: 7}}

	got := query.Sort(jobs, domain.SortByRecent)
	assert.Equal(t, []int{43, 11, 7}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortStability(t *testing.T) {
	// Equal scores keep their original relative order.
	jobs := []domain.Job{
		{ID: 1, Score: 80},
		{ID: 2, Score: 80},
		{ID: 3, Score: 90},
		{ID: 4, Score: 80},
	}

	got := query.Sort(jobs, domain.SortByScore)
	assert.Equal(t, []int{3, 1, 2, 4}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}
