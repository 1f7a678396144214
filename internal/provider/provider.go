package provider

import (
	"context"
	"fmt"
	"time"
)

// Cache is the subset of the shared response cache the clients need.
// The Redis wrapper in internal/infrastructure/cache satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	TTLJobSearch  = 1 * time.Hour
	TTLSalary     = 24 * time.Hour
	TTLCategories = 24 * time.Hour
	TTLCourses    = 24 * time.Hour
	TTLVideos     = 12 * time.Hour
)

type ProviderError struct {
	Provider  string
	Operation string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newProviderError(provider, operation string, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Operation: operation, Cause: cause}
}

type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	SalaryMin   *float64   `json:"salary_min,omitempty"`
	SalaryMax   *float64   `json:"salary_max,omitempty"`
	URL         string     `json:"url"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
}

type JobSearchResult struct {
	Jobs  []Job `json:"jobs"`
	Count int   `json:"count"`
}

type SalarySummary struct {
	Median *float64 `json:"median,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

type Category struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type Course struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Link        string   `json:"link"`
	Free        bool     `json:"free"`
}

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	Duration    string `json:"duration"`
	Free        bool   `json:"free"`
}

type JobClient interface {
	SearchJobs(ctx context.Context, query, location string, page, maxResults int) (JobSearchResult, error)
	SalaryStats(ctx context.Context, title, location string) (SalarySummary, error)
	Categories(ctx context.Context) ([]Category, error)
}

type CourseClient interface {
	SearchCourses(ctx context.Context, query string, maxResults int) ([]Course, error)
}

type VideoClient interface {
	SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error)
}
