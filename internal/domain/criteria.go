package domain

// SortOrder names one of the list ordering strategies.
type SortOrder string

const (
	SortByScore    SortOrder = "score"
	SortByApply    SortOrder = "apply"
	SortByDeadline SortOrder = "deadline"
	SortByRecent   SortOrder = "recent"
)

// ValidSortOrder reports whether s is one of the known strategies.
func ValidSortOrder(s SortOrder) bool {
	switch s {
	case SortByScore, SortByApply, SortByDeadline, SortByRecent:
		return true
	}
	return false
}

// FilterCriteria is the full set of list predicates. Multi-select fields use
// OR semantics within the field, AND across fields.
type FilterCriteria struct {
	Keyword         string   `json:"keyword"`
	MinScore        float64  `json:"min_score" validate:"gte=0,lte=100"`
	EmploymentTypes []string `json:"employment_types"`
	CompanyType     string   `json:"company_type"`
	JobTypes        []string `json:"job_types"`
	SalaryRange     string   `json:"salary_range"`
	OnlyApplicable  bool     `json:"only_applicable"`
	HideExpired     bool     `json:"hide_expired"`
}

// DefaultCriteria returns the all-permissive starting state.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		CompanyType: "all",
		SalaryRange: "all",
	}
}

// CriteriaPatch is a partial update; nil fields are left untouched.
type CriteriaPatch struct {
	Keyword         *string   `json:"keyword"`
	MinScore        *float64  `json:"min_score" validate:"omitempty,gte=0,lte=100"`
	EmploymentTypes *[]string `json:"employment_types"`
	CompanyType     *string   `json:"company_type"`
	JobTypes        *[]string `json:"job_types"`
	SalaryRange     *string   `json:"salary_range"`
	OnlyApplicable  *bool     `json:"only_applicable"`
	HideExpired     *bool     `json:"hide_expired"`
}

// Apply merges the patch into c and returns the result.
func (p CriteriaPatch) Apply(c FilterCriteria) FilterCriteria {
	if p.Keyword != nil {
		c.Keyword = *p.Keyword
	}
	if p.MinScore != nil {
		c.MinScore = *p.MinScore
	}
	if p.EmploymentTypes != nil {
		c.EmploymentTypes = *p.EmploymentTypes
	}
	if p.CompanyType != nil {
		c.CompanyType = *p.CompanyType
	}
	if p.JobTypes != nil {
		c.JobTypes = *p.JobTypes
	}
	if p.SalaryRange != nil {
		c.SalaryRange = *p.SalaryRange
	}
	if p.OnlyApplicable != nil {
		c.OnlyApplicable = *p.OnlyApplicable
	}
	if p.HideExpired != nil {
		c.HideExpired = *p.HideExpired
	}
	return c
}
