package query

import (
	"strconv"
	"strings"
)

// CompanyCategory groups company-type strings by literal substring match.
// The reserved "other" key matches postings that fall in no defined category.
type CompanyCategory struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Substrings []string `json:"substrings"`
}

const CategoryAll = "all"
const CategoryOther = "other"

// CompanyCategories mirrors the filter tabs of the dashboard. Substrings are
// matched case-insensitively against the posting's companyType string.
var CompanyCategories = []CompanyCategory{
	{Key: "large", Label: "대기업", Substrings: []string{"대기업", "major"}},
	{Key: "midsize", Label: "중견기업", Substrings: []string{"중견", "midsize"}},
	{Key: "small", Label: "중소기업", Substrings: []string{"중소", "small"}},
	{Key: "public", Label: "공기업·공공기관", Substrings: []string{"공기업", "공공", "public"}},
	{Key: "foreign", Label: "외국계", Substrings: []string{"외국계", "foreign"}},
	{Key: "startup", Label: "스타트업", Substrings: []string{"스타트업", "벤처", "startup", "venture"}},
}

func categoryByKey(key string) (CompanyCategory, bool) {
	for _, c := range CompanyCategories {
		if c.Key == key {
			return c, true
		}
	}
	return CompanyCategory{}, false
}

func matchesCategory(companyType string, c CompanyCategory) bool {
	lowered := strings.ToLower(companyType)
	for _, sub := range c.Substrings {
		if strings.Contains(lowered, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// matchesAnyCategory reports whether the company type falls in any defined
// category. Empty strings match none, so they count as "other".
func matchesAnyCategory(companyType string) bool {
	for _, c := range CompanyCategories {
		if matchesCategory(companyType, c) {
			return true
		}
	}
	return false
}

// employmentStem reduces a selected employment type to its fuzzy containment
// stem: picking 계약직 (contract) should match strings like "계약직 (1년)"
// or just "계약".
func employmentStem(selected string) string {
	stem := strings.TrimSuffix(strings.TrimSpace(selected), "직")
	if stem == "" {
		return selected
	}
	return stem
}

// SalaryBucket is one selectable annual-salary band, in units of 10,000 KRW.
// MaxManwon == 0 means unbounded above.
type SalaryBucket struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	MinManwon int    `json:"min_manwon"`
	MaxManwon int    `json:"max_manwon"`
}

var SalaryBuckets = []SalaryBucket{
	{Key: "under3000", Label: "~3,000만원", MinManwon: 0, MaxManwon: 3000},
	{Key: "3000-4000", Label: "3,000~4,000만원", MinManwon: 3000, MaxManwon: 4000},
	{Key: "4000-5000", Label: "4,000~5,000만원", MinManwon: 4000, MaxManwon: 5000},
	{Key: "over5000", Label: "5,000만원~", MinManwon: 5000, MaxManwon: 0},
	{Key: "negotiable", Label: "회사내규·협의", MinManwon: 0, MaxManwon: 0},
}

func salaryBucketByKey(key string) (SalaryBucket, bool) {
	for _, b := range SalaryBuckets {
		if b.Key == key {
			return b, true
		}
	}
	return SalaryBucket{}, false
}

// parseSalaryManwon extracts the first plausible annual figure (만원) from a
// free-text salary string like "연봉 3,500만원" or "3000~4000만원". Returns 0
// when nothing numeric is found, which the negotiable bucket treats as a hit.
func parseSalaryManwon(s string) int {
	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ',':
			// thousands separator inside a figure
		default:
			if digits.Len() >= 3 {
				n, _ := strconv.Atoi(digits.String())
				return n
			}
			digits.Reset()
		}
	}
	if digits.Len() >= 3 {
		n, _ := strconv.Atoi(digits.String())
		return n
	}
	return 0
}

func matchesSalaryBucket(jobSalary string, b SalaryBucket) bool {
	value := parseSalaryManwon(jobSalary)
	if b.Key == "negotiable" {
		return value == 0
	}
	if value == 0 {
		return false
	}
	if value < b.MinManwon {
		return false
	}
	if b.MaxManwon > 0 && value >= b.MaxManwon {
		return false
	}
	return true
}
