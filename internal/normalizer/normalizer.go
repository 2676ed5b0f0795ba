// Package normalizer reconciles the loosely-typed payloads returned by the
// scraping services into the canonical domain.Job. The remote side is
// inconsistent about field naming (snake_case in some paths, camelCase in
// others) and about which fields are present at all; everything downstream
// of this package sees exactly one shape.
package normalizer

import (
	"encoding/json"
	"strconv"
	"strings"

	"go-jobdash-backend/internal/domain"
)

// canonicalNames is the set of field names owned by domain.Job. Raw keys
// with these names feed the canonical fields; everything else lands in Extra.
var canonicalNames = map[string]struct{}{
	"id": {}, "score": {}, "reason": {}, "strength": {}, "weakness": {},
	"apply_yn": {}, "companyName": {}, "jobTitle": {}, "jobLocation": {},
	"companyType": {}, "url": {}, "deadline": {}, "employmentType": {},
	"jobType": {}, "jobSalary": {}, "createdAt": {},
}

// Normalize converts one raw posting into a canonical Job. It is total:
// any input, nil included, yields a valid Job with defaults filled in, and
// it is idempotent over its own output.
func Normalize(raw domain.RawJobPayload) domain.Job {
	job := domain.Job{}
	if len(raw) == 0 {
		return job
	}

	job.ID = toInt(pick(raw, "id", "job_id", "jobId"))
	job.Score = toFloat(pick(raw, "score", "match_score", "matchScore"))
	job.Reason = toString(pick(raw, "reason", "match_reason", "matchReason"))
	job.Strength = toString(pick(raw, "strength"))
	job.Weakness = toString(pick(raw, "weakness"))
	job.ApplyYN = applyFlag(pick(raw, "apply_yn", "isApplied", "is_applied"))
	job.CompanyName = toString(pick(raw, "companyName", "company_name", "company"))
	job.JobTitle = toString(pick(raw, "jobTitle", "job_title", "title"))
	job.JobLocation = toString(pick(raw, "jobLocation", "job_location", "location"))
	job.CompanyType = toString(pick(raw, "companyType", "company_type"))
	job.URL = toString(pick(raw, "url", "link"))
	job.Deadline = toString(pick(raw, "deadline", "due_date", "dueDate"))
	job.EmploymentType = toString(pick(raw, "employmentType", "employment_type"))
	job.JobType = toString(pick(raw, "jobType", "job_type"))
	job.JobSalary = toString(pick(raw, "jobSalary", "job_salary", "salary"))
	job.CreatedAt = toString(pick(raw, "createdAt", "created_at"))

	// Carry every non-canonical key verbatim, plus a camelCase alias for
	// snake_case keys so consumers may use either convention. Canonical
	// fields always win over aliases.
	extra := make(map[string]any)
	for k, v := range raw {
		if _, canonical := canonicalNames[k]; canonical {
			continue
		}
		extra[k] = v
	}
	for k, v := range raw {
		if !strings.Contains(k, "_") {
			continue
		}
		camel := snakeToCamel(k)
		if camel == k {
			continue
		}
		if _, canonical := canonicalNames[camel]; canonical {
			continue
		}
		if _, present := raw[camel]; present {
			continue
		}
		extra[camel] = v
	}
	if len(extra) > 0 {
		job.Extra = extra
	}
	return job
}

// NormalizeAll maps a raw batch one-to-one, preserving order.
func NormalizeAll(raws []domain.RawJobPayload) []domain.Job {
	jobs := make([]domain.Job, len(raws))
	for i, raw := range raws {
		jobs[i] = Normalize(raw)
	}
	return jobs
}

// AsRaw round-trips a Job back into payload form (canonical names only).
// Mainly useful for re-normalization and fixture building.
func AsRaw(j domain.Job) domain.RawJobPayload {
	raw := domain.RawJobPayload{
		"id":          j.ID,
		"score":       j.Score,
		"reason":      j.Reason,
		"strength":    j.Strength,
		"weakness":    j.Weakness,
		"apply_yn":    j.ApplyYN,
		"companyName": j.CompanyName,
		"jobTitle":    j.JobTitle,
		"jobLocation": j.JobLocation,
		"companyType": j.CompanyType,
		"url":         j.URL,
	}
	if j.Deadline != "" {
		raw["deadline"] = j.Deadline
	}
	if j.EmploymentType != "" {
		raw["employmentType"] = j.EmploymentType
	}
	if j.JobType != "" {
		raw["jobType"] = j.JobType
	}
	if j.JobSalary != "" {
		raw["jobSalary"] = j.JobSalary
	}
	if j.CreatedAt != "" {
		raw["createdAt"] = j.CreatedAt
	}
	for k, v := range j.Extra {
		if _, present := raw[k]; !present {
			raw[k] = v
		}
	}
	return raw
}

// pick returns the first present, non-nil value among keys.
func pick(raw domain.RawJobPayload, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func applyFlag(v any) int {
	switch t := v.(type) {
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		if toInt(v) != 0 {
			return 1
		}
		return 0
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func toInt(v any) int {
	return int(toFloat(v))
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// Whole numbers come back from JSON as float64; keep them clean.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 1 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
