package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type memoryCache struct {
	entries map[string][]byte
	sets    int
	gets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func TestAdzunaSearchJobs(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if !strings.Contains(r.URL.Path, "/jobs/us/search/1") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("what"); got != "data analyst" {
			t.Errorf("unexpected what=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count": 1,
			"results": []map[string]any{{
				"id":          "123",
				"title":       "Data Analyst",
				"description": "SQL and Python",
				"company":     map[string]any{"display_name": "Acme"},
				"location":    map[string]any{"display_name": "Austin"},
			}},
		})
	}))
	defer srv.Close()

	cache := newMemoryCache()
	c := NewAdzunaClientWithBaseURL(srv.URL, "id", "key", cache, nil)

	res, err := c.SearchJobs(context.Background(), "data analyst", "", 1, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Count != 1 || len(res.Jobs) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Jobs[0].Company != "Acme" || res.Jobs[0].Location != "Austin" {
		t.Fatalf("unexpected job %+v", res.Jobs[0])
	}

	// Second identical call is served from cache without another request.
	res2, err := c.SearchJobs(context.Background(), "Data Analyst ", "US", 1, 10)
	if err != nil {
		t.Fatalf("unexpected err on cached call: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected a single upstream request, got %d", hits)
	}
	if len(res2.Jobs) != 1 {
		t.Fatalf("unexpected cached result %+v", res2)
	}
}

func TestAdzunaSearchJobsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewAdzunaClientWithBaseURL(srv.URL, "id", "key", newMemoryCache(), nil)

	res, err := c.SearchJobs(context.Background(), "python", "us", 1, 5)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Provider != "adzuna" || pe.Operation != "search_jobs" {
		t.Fatalf("unexpected provider error %+v", pe)
	}
	if res.Jobs == nil || len(res.Jobs) != 0 {
		t.Fatalf("expected empty non-nil jobs on failure, got %+v", res.Jobs)
	}
}

func TestAdzunaSalaryStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/jobs/us/salary_stats") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"median": 90000.0, "min": 60000.0, "max": 120000.0})
	}))
	defer srv.Close()

	c := NewAdzunaClientWithBaseURL(srv.URL, "id", "key", newMemoryCache(), nil)

	s, err := c.SalaryStats(context.Background(), "developer", "us")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Median == nil || *s.Median != 90000 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestAdzunaCategoriesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewAdzunaClientWithBaseURL(srv.URL, "id", "key", nil, nil)

	cats, err := c.Categories(context.Background())
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected no categories, got %v", cats)
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	a := cacheKey("adzuna", "search_jobs", "Data  Analyst", "US", "1", "10")
	b := cacheKey("adzuna", "search_jobs", " data analyst ", "us", "1", "10")
	if a != b {
		t.Fatalf("equivalent params should map to one key:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "providers:adzuna:search_jobs:") {
		t.Fatalf("unexpected key shape %s", a)
	}

	c := cacheKey("adzuna", "search_jobs", "data analyst", "us", "2", "10")
	if a == c {
		t.Fatalf("different params must not collide")
	}
}
