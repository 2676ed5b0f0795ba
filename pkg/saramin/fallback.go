package saramin

import "go-jobdash-backend/internal/domain"

// Bundled fallback payloads, substituted when the remote service is
// unreachable so the dashboard always has something to render. The mixed
// snake_case/camelCase keys are deliberate: they exercise the same
// normalization path as live responses.

// FallbackJobs returns the static posting list.
func FallbackJobs() []domain.RawJobPayload {
	return []domain.RawJobPayload{
		{
			"id": 1, "company_name": "네이버클라우드", "job_title": "백엔드 개발자 (Go)",
			"job_location": "경기 성남시 분당구", "company_type": "대기업",
			"employment_type": "정규직", "job_type": "백엔드", "job_salary": "연봉 5,500만원",
			"url": "https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=48210001",
			"deadline": "2026.10.15", "match_score": 92, "is_applied": 1,
			"reason": "Go 기반 분산 시스템 경험이 공고 요구사항과 일치",
		},
		{
			"id": 2, "companyName": "두레이테크", "jobTitle": "플랫폼 엔지니어",
			"jobLocation": "서울 강남구", "companyType": "스타트업",
			"employmentType": "계약직 (전환형)", "jobType": "DevOps·인프라",
			"jobSalary": "연봉 4,200만원",
			"url": "https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=48210002",
			"deadline": "2026-09-30", "matchScore": 84, "isApplied": 0,
			"reason": "쿠버네티스 운영 경험 가점",
		},
		{
			"id": 3, "company_name": "한국전력공사", "job_title": "전산직 신입",
			"job_location": "전남 나주시", "company_type": "공기업",
			"employment_type": "정규직", "job_type": "시스템 운영",
			"job_salary": "회사내규에 따름",
			"url": "https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=48210003",
			"match_score": 61, "is_applied": 0,
		},
		{
			"id": 4, "companyName": "글로벌소프트코리아", "jobTitle": "데이터 엔지니어",
			"jobLocation": "서울 영등포구", "companyType": "외국계",
			"employmentType": "정규직", "jobType": "데이터", "jobSalary": "연봉 6,000만원",
			"url": "https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=48210004",
			"deadline": "2026.09.20", "score": 88, "apply_yn": 1,
			"strength": "Spark·Kafka 파이프라인 구축 이력",
		},
		{
			"id": 5, "company_name": "미림중공업", "job_title": "사내 시스템 개발자",
			"job_location": "울산 남구", "company_type": "중견기업",
			"employment_type": "계약직", "job_type": "풀스택",
			"job_salary": "연봉 3,600만원",
			"url": "https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=48210005",
			"deadline": "2026-10-02", "match_score": 54, "is_applied": 0,
			"weakness": "제조 도메인 경험 없음",
		},
	}
}

// FallbackRecommended returns the static recommendation list: the bundled
// postings above the recommendation score floor.
func FallbackRecommended() []domain.RawJobPayload {
	jobs := FallbackJobs()
	out := make([]domain.RawJobPayload, 0, len(jobs))
	for _, j := range jobs {
		score, _ := j["match_score"].(int)
		if s, ok := j["matchScore"].(int); ok {
			score = s
		}
		if s, ok := j["score"].(int); ok {
			score = s
		}
		if score >= 80 {
			out = append(out, j)
		}
	}
	return out
}

// FallbackMatching is the demo matching outcome.
func FallbackMatching() *MatchingResponse {
	return &MatchingResponse{
		Success:     true,
		MatchedJobs: FallbackRecommended(),
		Message:     "매칭 서비스에 연결할 수 없어 저장된 예시 결과를 표시합니다",
	}
}

// FallbackApply is the demo bulk-apply outcome.
func FallbackApply() *ApplyResponse {
	return &ApplyResponse{
		Success: true,
		Message: "지원 서비스에 연결할 수 없어 저장된 예시 결과를 표시합니다",
	}
}
