package domain

import "context"

// BookmarkedJob is the subset of a posting kept when the user stars it.
// Bookmarks persist with no expiry until cleared by hand.
type BookmarkedJob struct {
	ID           int    `json:"id"`
	CompanyName  string `json:"companyName"`
	JobTitle     string `json:"jobTitle"`
	URL          string `json:"url"`
	Deadline     string `json:"deadline,omitempty"`
	BookmarkedAt string `json:"bookmarkedAt"`
}

type BookmarkUsecase interface {
	List(ctx context.Context) []BookmarkedJob
	Add(ctx context.Context, job Job) (*BookmarkedJob, error)
	Remove(ctx context.Context, url string) error
	Clear(ctx context.Context)
}
