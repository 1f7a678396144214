package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/extract"
	"career-compass/internal/provider"
)

type fakeCategoryJobClient struct {
	fakeJobClient
	categories []provider.Category
}

func (f *fakeCategoryJobClient) Categories(context.Context) ([]provider.Category, error) {
	return f.categories, nil
}

func TestJobMarketData(t *testing.T) {
	jobs := &fakeJobClient{
		jobs:   []provider.Job{{ID: "1", Title: "Dev", Description: "python"}},
		count:  42,
		salary: provider.SalarySummary{Median: ptrFloat(75000)},
	}
	uc := NewMarketUsecase(jobs, fakeExtractor{frequencies: []extract.Frequency{{Name: "python", Count: 3}}}, nil)

	report, err := uc.JobMarketData(context.Background(), "", "us", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.TotalJobs != 42 || len(report.JobListings) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.SalaryInfo.Median == nil || *report.SalaryInfo.Median != 75000 {
		t.Fatalf("unexpected salary info %+v", report.SalaryInfo)
	}
	if len(report.ExtractedSkills) != 1 || report.ExtractedSkills[0].Name != "python" {
		t.Fatalf("unexpected skills %v", report.ExtractedSkills)
	}
}

func TestMarketTrends(t *testing.T) {
	jobs := &fakeCategoryJobClient{
		fakeJobClient: fakeJobClient{count: 7},
		categories: []provider.Category{
			{Tag: "it-jobs", Label: "IT Jobs"},
			{Tag: "engineering-jobs", Label: "Engineering Jobs"},
		},
	}
	uc := NewMarketUsecase(jobs, fakeExtractor{}, nil)

	report, err := uc.MarketTrends(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.TotalCategories != 2 || len(report.Trends) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Trends[0].Category != "IT Jobs" || report.Trends[0].JobCount != 7 {
		t.Fatalf("unexpected trend %+v", report.Trends[0])
	}
}

func TestSkillDemand(t *testing.T) {
	jobs := &fakeJobClient{
		jobs: []provider.Job{
			{Location: "Austin", Description: "sql and aws", SalaryMin: ptrFloat(60000), SalaryMax: ptrFloat(80000)},
			{Location: "Austin", Description: "aws only", SalaryMin: ptrFloat(90000), SalaryMax: ptrFloat(110000)},
			{Location: "", Description: "nothing"},
		},
		count: 3,
	}
	uc := NewMarketUsecase(jobs, fakeExtractor{}, nil)

	report, err := uc.SkillDemand(context.Background(), " Python ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Skill != "python" {
		t.Fatalf("expected normalized skill name, got %q", report.Skill)
	}
	// (70000 + 100000) / 2
	if report.AverageSalary != 85000 {
		t.Fatalf("unexpected average salary %v", report.AverageSalary)
	}
	if report.TopLocations["Austin"] != 2 || report.TopLocations["Unknown"] != 1 {
		t.Fatalf("unexpected locations %v", report.TopLocations)
	}

	relCounts := map[string]int{}
	for _, f := range report.RelatedSkills {
		relCounts[f.Name] = f.Count
	}
	if relCounts["aws"] != 2 || relCounts["sql"] != 1 {
		t.Fatalf("unexpected related skills %v", relCounts)
	}
	if len(report.SampleJobs) != 3 {
		t.Fatalf("unexpected sample jobs %d", len(report.SampleJobs))
	}
}

func TestSkillDemandProviderDown(t *testing.T) {
	jobs := &fakeJobClient{searchErr: errors.New("upstream down")}
	uc := NewMarketUsecase(jobs, fakeExtractor{}, nil)

	report, err := uc.SkillDemand(context.Background(), "")
	if err != nil {
		t.Fatalf("provider outage must not fail the report: %v", err)
	}
	if report.Skill != "python" {
		t.Fatalf("expected default skill, got %q", report.Skill)
	}
	if report.TotalJobs != 0 || len(report.SampleJobs) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}
