package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const courseraBaseURL = "https://api.coursera.org/api/courses.v1"

type CourseraClient struct {
	baseURL string
	client  *http.Client
	cache   Cache
	logger  *log.Logger
}

type courseraSearchResponse struct {
	Elements []struct {
		ID               string   `json:"id"`
		Name             string   `json:"name"`
		Slug             string   `json:"slug"`
		Description      string   `json:"description"`
		PrimaryLanguages []string `json:"primaryLanguages"`
	} `json:"elements"`
}

func NewCourseraClient(cache Cache, logger *log.Logger) *CourseraClient {
	return &CourseraClient{
		baseURL: courseraBaseURL,
		client:  newHTTPClient(),
		cache:   cache,
		logger:  logger,
	}
}

func NewCourseraClientWithBaseURL(baseURL string, cache Cache, logger *log.Logger) *CourseraClient {
	c := NewCourseraClient(cache, logger)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

func (c *CourseraClient) SearchCourses(ctx context.Context, query string, maxResults int) ([]Course, error) {
	if c == nil {
		return []Course{}, newProviderError("coursera", "search_courses", fmt.Errorf("nil client"))
	}

	key := cacheKey("coursera", "search_courses", query, strconv.Itoa(maxResults))
	var cached []Course
	if c.cache != nil {
		if hit, err := c.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	params := url.Values{}
	params.Set("q", "search")
	params.Set("query", strings.TrimSpace(query))
	params.Set("limit", strconv.Itoa(maxResults))
	params.Set("fields", "description,primaryLanguages,specializations,partnerIds")

	var raw courseraSearchResponse
	if err := getJSON(ctx, c.client, c.baseURL, params, &raw); err != nil {
		if c.logger != nil {
			c.logger.Printf("[Coursera] SearchCourses error query=%q err=%v", query, err)
		}
		return []Course{}, newProviderError("coursera", "search_courses", err)
	}

	courses := make([]Course, 0, len(raw.Elements))
	for _, e := range raw.Elements {
		courses = append(courses, Course{
			ID:          e.ID,
			Name:        e.Name,
			Slug:        e.Slug,
			Description: e.Description,
			Languages:   e.PrimaryLanguages,
			Link:        "https://www.coursera.org/learn/" + e.Slug,
			// Most Coursera courses are free to audit.
			Free: true,
		})
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, courses, TTLCourses)
	}
	return courses, nil
}

var _ CourseClient = (*CourseraClient)(nil)
