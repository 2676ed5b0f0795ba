package query

import (
	"sort"

	"go-jobdash-backend/internal/domain"
)

// Sort orders a copy of the collection by the named strategy. The sort is
// stable: equal keys keep their original relative order. Unknown orders
// return the copy unchanged.
func Sort(jobs []domain.Job, order domain.SortOrder) []domain.Job {
	out := make([]domain.Job, len(jobs))
	copy(out, jobs)

	switch order {
	case domain.SortByScore:
		sort.SliceStable(out, func(a, b int) bool {
			return resolveScore(out[a]) > resolveScore(out[b])
		})
	case domain.SortByApply:
		// Applicable first, score breaks ties.
		sort.SliceStable(out, func(a, b int) bool {
			fa, fb := applyRank(out[a]), applyRank(out[b])
			if fa != fb {
				return fa > fb
			}
			return resolveScore(out[a]) > resolveScore(out[b])
		})
	case domain.SortByDeadline:
		sort.SliceStable(out, func(a, b int) bool {
			return deadlineKey(out[a]).Before(deadlineKey(out[b]))
		})
	case domain.SortByRecent:
		// Higher id means ingested later.
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].ID > out[b].ID
		})
	}
	return out
}

func applyRank(j domain.Job) int {
	if isApplicable(j) {
		return 1
	}
	return 0
}
