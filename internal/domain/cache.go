package domain

import "time"

// Default time-to-live for wrapped cache entries.
const DefaultCacheTTL = 30 * time.Minute

// Cache key registry. The dashboard persists under a fixed, known set of
// keys so status reporting and clear-all can enumerate them.
const (
	KeyRecommendedJobs = "recommended-jobs-cache"
	KeyTestResult      = "test-result-cache"
	KeyAutoMatching    = "auto-matching-cache"
	KeyApplyResult     = "apply-result-cache"
	KeyScrollPosition  = "job-list-scroll-position"
	KeySortOrder       = "job-list-sort-order"
	KeyHideExpired     = "hide-expired-jobs"
	KeyBookmarks       = "saramin-bookmarked-jobs"
)

// CachedKeys lists every key the dashboard may write, raw-scalar keys
// included.
func CachedKeys() []string {
	return []string{
		KeyRecommendedJobs,
		KeyTestResult,
		KeyAutoMatching,
		KeyApplyResult,
		KeyScrollPosition,
		KeySortOrder,
		KeyHideExpired,
		KeyBookmarks,
	}
}

// UnwrappedKey reports whether key bypasses the timestamp envelope: scroll
// position, sort order, and the hide-expired flag are bare scalar strings,
// and bookmarks are a bare JSON array. None of them expire.
func UnwrappedKey(key string) bool {
	switch key {
	case KeyScrollPosition, KeySortOrder, KeyHideExpired, KeyBookmarks:
		return true
	}
	return false
}

// CacheStatus is a diagnostic, read-only view of one stored key.
type CacheStatus struct {
	Key        string `json:"key"`
	Exists     bool   `json:"exists"`
	SizeBytes  int    `json:"size_bytes"`
	Valid      bool   `json:"valid"`
	AgeSeconds int64  `json:"age_seconds"`
	Expired    bool   `json:"expired"`
	Raw        bool   `json:"raw"`
}

// CacheStore is the TTL persistence layer. Save and the raw variants never
// fail outward: a false return means the entry was not persisted and callers
// carry on without it.
type CacheStore interface {
	Save(key string, data any) bool
	Load(key string, ttl time.Duration, out any) bool
	SaveRaw(key, value string) bool
	LoadRaw(key string) (string, bool)
	Remove(key string)
	ClearAll(keys []string)
	Status(keys []string) []CacheStatus
	Available() bool
}
