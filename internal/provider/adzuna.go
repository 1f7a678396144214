package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api"

// AdzunaClient is the job-listings gateway. Every lookup goes through the
// shared response cache first; provider failures degrade to the zero result
// via a ProviderError the caller is expected to coerce.
type AdzunaClient struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
	cache   Cache
	logger  *log.Logger
}

type adzunaSearchResponse struct {
	Results []adzunaJob `json:"results"`
	Count   int         `json:"count"`
}

type adzunaJob struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	Created     string   `json:"created"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

type adzunaSalaryResponse struct {
	Median *float64 `json:"median"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

type adzunaCategoriesResponse struct {
	Results []struct {
		Tag   string `json:"tag"`
		Label string `json:"label"`
	} `json:"results"`
}

func NewAdzunaClient(appID, appKey string, cache Cache, logger *log.Logger) *AdzunaClient {
	return &AdzunaClient{
		baseURL: adzunaBaseURL,
		appID:   strings.TrimSpace(appID),
		appKey:  strings.TrimSpace(appKey),
		client:  newHTTPClient(),
		cache:   cache,
		logger:  logger,
	}
}

// NewAdzunaClientWithBaseURL exists for tests that point the client at a
// local HTTP server.
func NewAdzunaClientWithBaseURL(baseURL, appID, appKey string, cache Cache, logger *log.Logger) *AdzunaClient {
	c := NewAdzunaClient(appID, appKey, cache, logger)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

func (c *AdzunaClient) SearchJobs(ctx context.Context, query, location string, page, maxResults int) (JobSearchResult, error) {
	if c == nil {
		return JobSearchResult{Jobs: []Job{}}, newProviderError("adzuna", "search_jobs", fmt.Errorf("nil client"))
	}
	if page < 1 {
		page = 1
	}
	location = normalizeLocation(location)

	key := cacheKey("adzuna", "search_jobs", query, location, strconv.Itoa(page), strconv.Itoa(maxResults))
	var cached JobSearchResult
	if c.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d", c.baseURL, location, page)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("what", strings.TrimSpace(query))
	params.Set("results_per_page", strconv.Itoa(maxResults))

	var raw adzunaSearchResponse
	if err := getJSON(ctx, c.client, endpoint, params, &raw); err != nil {
		c.logf("SearchJobs error query=%q location=%s page=%d err=%v", query, location, page, err)
		return JobSearchResult{Jobs: []Job{}}, newProviderError("adzuna", "search_jobs", err)
	}

	result := JobSearchResult{Jobs: make([]Job, 0, len(raw.Results)), Count: raw.Count}
	for _, j := range raw.Results {
		result.Jobs = append(result.Jobs, Job{
			ID:          j.ID,
			Title:       j.Title,
			Company:     j.Company.DisplayName,
			Location:    j.Location.DisplayName,
			Description: j.Description,
			SalaryMin:   j.SalaryMin,
			SalaryMax:   j.SalaryMax,
			URL:         j.RedirectURL,
			PostedAt:    parseAdzunaTime(j.Created),
		})
	}

	c.cacheSet(ctx, key, result, TTLJobSearch)
	return result, nil
}

func (c *AdzunaClient) SalaryStats(ctx context.Context, title, location string) (SalarySummary, error) {
	if c == nil {
		return SalarySummary{}, newProviderError("adzuna", "salary_stats", fmt.Errorf("nil client"))
	}
	location = normalizeLocation(location)

	key := cacheKey("adzuna", "salary_stats", title, location)
	var cached SalarySummary
	if c.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/salary_stats", c.baseURL, location)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("title", strings.TrimSpace(title))

	var raw adzunaSalaryResponse
	if err := getJSON(ctx, c.client, endpoint, params, &raw); err != nil {
		c.logf("SalaryStats error title=%q location=%s err=%v", title, location, err)
		return SalarySummary{}, newProviderError("adzuna", "salary_stats", err)
	}

	summary := SalarySummary{Median: raw.Median, Min: raw.Min, Max: raw.Max}
	c.cacheSet(ctx, key, summary, TTLSalary)
	return summary, nil
}

func (c *AdzunaClient) Categories(ctx context.Context) ([]Category, error) {
	if c == nil {
		return []Category{}, newProviderError("adzuna", "categories", fmt.Errorf("nil client"))
	}

	key := cacheKey("adzuna", "categories")
	var cached []Category
	if c.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/jobs/us/categories", c.baseURL)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)

	var raw adzunaCategoriesResponse
	if err := getJSON(ctx, c.client, endpoint, params, &raw); err != nil {
		c.logf("Categories error err=%v", err)
		return []Category{}, newProviderError("adzuna", "categories", err)
	}

	out := make([]Category, 0, len(raw.Results))
	for _, r := range raw.Results {
		out = append(out, Category{Tag: r.Tag, Label: r.Label})
	}

	c.cacheSet(ctx, key, out, TTLCategories)
	return out, nil
}

func (c *AdzunaClient) cacheGet(ctx context.Context, key string, out any) bool {
	if c.cache == nil {
		return false
	}
	hit, err := c.cache.GetJSON(ctx, key, out)
	if err != nil {
		return false
	}
	return hit
}

func (c *AdzunaClient) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.cache == nil {
		return
	}
	_ = c.cache.SetJSON(ctx, key, value, ttl)
}

func (c *AdzunaClient) logf(format string, args ...any) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Printf("[Adzuna] "+format, args...)
}

func normalizeLocation(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return "us"
	}
	return location
}

func parseAdzunaTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

var _ JobClient = (*AdzunaClient)(nil)
