package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/provider"
)

type fakeJobClient struct {
	jobs      []provider.Job
	count     int
	salary    provider.SalarySummary
	searchErr error
	salaryErr error

	searchCalls int
}

func (f *fakeJobClient) SearchJobs(context.Context, string, string, int, int) (provider.JobSearchResult, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return provider.JobSearchResult{Jobs: []provider.Job{}}, f.searchErr
	}
	return provider.JobSearchResult{Jobs: f.jobs, Count: f.count}, nil
}

func (f *fakeJobClient) SalaryStats(context.Context, string, string) (provider.SalarySummary, error) {
	if f.salaryErr != nil {
		return provider.SalarySummary{}, f.salaryErr
	}
	return f.salary, nil
}

func (f *fakeJobClient) Categories(context.Context) ([]provider.Category, error) {
	return []provider.Category{}, nil
}

type fakeCourseClient struct {
	courses []provider.Course
	err     error
}

func (f *fakeCourseClient) SearchCourses(context.Context, string, int) ([]provider.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

type fakeVideoClient struct {
	videos []provider.Video
	err    error
}

func (f *fakeVideoClient) SearchVideos(context.Context, string, int) ([]provider.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

func ptrFloat(v float64) *float64 { return &v }

func TestBuildCareerAnalysis(t *testing.T) {
	jobs := &fakeJobClient{
		jobs: []provider.Job{
			{ID: "1", Title: "Data Analyst", Description: "Python and SQL experience, bachelor degree"},
			{ID: "2", Title: "Data Analyst", Description: "SQL and Docker, 3 years experience"},
		},
		count:  120,
		salary: provider.SalarySummary{Median: ptrFloat(85000), Min: ptrFloat(60000), Max: ptrFloat(110000)},
	}
	courses := &fakeCourseClient{courses: []provider.Course{{ID: "c1", Name: "SQL Basics"}}}
	videos := &fakeVideoClient{videos: []provider.Video{{ID: "v1", Title: "SQL in an hour"}}}

	uc := NewAnalysisUsecase(jobs, courses, videos, nil)
	analysis, err := uc.BuildCareerAnalysis(context.Background(), "Data Analyst")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if analysis.CareerTitle != "Data Analyst" {
		t.Fatalf("unexpected title %q", analysis.CareerTitle)
	}
	if analysis.MarketData.TotalJobs != 120 || analysis.MarketData.AverageSalary != 85000 {
		t.Fatalf("unexpected market data %+v", analysis.MarketData)
	}
	if analysis.MarketData.SalaryRange.Min != 60000 || analysis.MarketData.SalaryRange.Max != 110000 {
		t.Fatalf("unexpected salary range %+v", analysis.MarketData.SalaryRange)
	}

	skillCounts := map[string]int{}
	for _, f := range analysis.RequiredSkills {
		skillCounts[f.Name] = f.Count
	}
	if skillCounts["sql"] != 4 {
		// Both descriptions mention SQL, scanned over two pages.
		t.Fatalf("unexpected skill counts %v", skillCounts)
	}
	if skillCounts["python"] != 2 || skillCounts["docker"] != 2 {
		t.Fatalf("unexpected skill counts %v", skillCounts)
	}

	reqCounts := map[string]int{}
	for _, f := range analysis.CommonRequirements {
		reqCounts[f.Name] = f.Count
	}
	if reqCounts["experience"] != 2 || reqCounts["degree"] != 1 {
		t.Fatalf("unexpected requirement counts %v", reqCounts)
	}

	if len(analysis.LearningResources) == 0 {
		t.Fatalf("expected learning resource bundles")
	}
	for _, b := range analysis.LearningResources {
		if len(b.Courses) != 1 || len(b.Videos) != 1 {
			t.Fatalf("bundle %s missing resources: %+v", b.Skill, b)
		}
	}

	if len(analysis.SampleJobs) != 2 {
		t.Fatalf("expected 2 sample jobs, got %d", len(analysis.SampleJobs))
	}
}

func TestBuildCareerAnalysisDefaultTitle(t *testing.T) {
	uc := NewAnalysisUsecase(&fakeJobClient{}, &fakeCourseClient{}, &fakeVideoClient{}, nil)
	analysis, err := uc.BuildCareerAnalysis(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.CareerTitle != DefaultCareerTitle {
		t.Fatalf("expected default title, got %q", analysis.CareerTitle)
	}
}

func TestBuildCareerAnalysisProvidersDown(t *testing.T) {
	jobs := &fakeJobClient{
		searchErr: errors.New("upstream down"),
		salaryErr: errors.New("upstream down"),
	}
	courses := &fakeCourseClient{err: errors.New("upstream down")}
	videos := &fakeVideoClient{err: errors.New("upstream down")}

	uc := NewAnalysisUsecase(jobs, courses, videos, nil)
	analysis, err := uc.BuildCareerAnalysis(context.Background(), "developer")
	if err != nil {
		t.Fatalf("provider outage must not fail the analysis: %v", err)
	}
	if analysis.MarketData.TotalJobs != 0 || analysis.MarketData.AverageSalary != 0 {
		t.Fatalf("expected zero market data, got %+v", analysis.MarketData)
	}
	if len(analysis.RequiredSkills) != 0 {
		t.Fatalf("expected no skills, got %v", analysis.RequiredSkills)
	}
	if len(analysis.SampleJobs) != 0 {
		t.Fatalf("expected no sample jobs, got %v", analysis.SampleJobs)
	}
}

func TestExtractSkillsFromJobsPaging(t *testing.T) {
	jobs := &fakeJobClient{
		jobs: []provider.Job{{Description: "react and git"}},
	}
	uc := NewAnalysisUsecase(jobs, &fakeCourseClient{}, &fakeVideoClient{}, nil)

	got := uc.ExtractSkillsFromJobs(context.Background(), "frontend", "us", 3)
	if jobs.searchCalls != 3 {
		t.Fatalf("expected 3 page fetches, got %d", jobs.searchCalls)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %v", got)
	}
	for _, f := range got {
		if f.Count != 3 {
			t.Fatalf("expected count 3 per skill, got %+v", f)
		}
	}
}
