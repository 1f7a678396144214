package usecase

import (
	"context"
	"log"
	"math"
	"strings"

	"career-compass/internal/extract"
	"career-compass/internal/provider"
)

const (
	marketTrendCategories = 5
	demandSearchResults   = 50
	demandRelatedJobs     = 10
	demandTopLocations    = 5
	demandTopRelated      = 5
)

// relatedSkillVocabulary is the short vocabulary used when estimating which skills
// co-occur with the queried one.
var relatedSkillVocabulary = []string{"javascript", "sql", "aws", "docker", "react"}

type JobMarketReport struct {
	JobListings     []provider.Job         `json:"job_listings"`
	SalaryInfo      provider.SalarySummary `json:"salary_info"`
	ExtractedSkills []extract.Frequency    `json:"extracted_skills"`
	TotalJobs       int                    `json:"total_jobs"`
}

type MarketTrend struct {
	Category string `json:"category"`
	Tag      string `json:"tag"`
	JobCount int    `json:"job_count"`
}

type MarketTrendsReport struct {
	Trends          []MarketTrend `json:"trends"`
	TotalCategories int           `json:"total_categories"`
}

type SkillDemandReport struct {
	Skill         string              `json:"skill"`
	TotalJobs     int                 `json:"total_jobs"`
	AverageSalary float64             `json:"average_salary"`
	TopLocations  map[string]int      `json:"top_locations"`
	RelatedSkills []extract.Frequency `json:"related_skills"`
	SampleJobs    []provider.Job      `json:"sample_jobs"`
}

type MarketUsecase interface {
	JobMarketData(ctx context.Context, title, location string, maxResults int) (JobMarketReport, error)
	MarketTrends(ctx context.Context) (MarketTrendsReport, error)
	SkillDemand(ctx context.Context, skill string) (SkillDemandReport, error)
}

type Market struct {
	jobs      provider.JobClient
	extractor skillExtractor
	logger    *log.Logger
}

func NewMarketUsecase(jobs provider.JobClient, extractor skillExtractor, logger *log.Logger) *Market {
	return &Market{jobs: jobs, extractor: extractor, logger: logger}
}

func (u *Market) JobMarketData(ctx context.Context, title, location string, maxResults int) (JobMarketReport, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultCareerTitle
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	result := coerceJobSearch(u.jobs.SearchJobs(ctx, title, location, 1, maxResults))
	salary := coerceSalary(u.jobs.SalaryStats(ctx, title, location))
	skills := u.extractor.ExtractSkillsFromJobs(ctx, title, location, analysisSkillPages)

	listings := result.Jobs
	if len(listings) > demandRelatedJobs {
		listings = listings[:demandRelatedJobs]
	}

	return JobMarketReport{
		JobListings:     listings,
		SalaryInfo:      salary,
		ExtractedSkills: skills,
		TotalJobs:       result.Count,
	}, nil
}

func (u *Market) MarketTrends(ctx context.Context) (MarketTrendsReport, error) {
	categories, err := u.jobs.Categories(ctx)
	if err != nil {
		categories = []provider.Category{}
	}

	top := categories
	if len(top) > marketTrendCategories {
		top = top[:marketTrendCategories]
	}

	trends := make([]MarketTrend, 0, len(top))
	for _, cat := range top {
		result := coerceJobSearch(u.jobs.SearchJobs(ctx, cat.Label, "us", 1, 1))
		trends = append(trends, MarketTrend{
			Category: cat.Label,
			Tag:      cat.Tag,
			JobCount: result.Count,
		})
	}

	return MarketTrendsReport{Trends: trends, TotalCategories: len(categories)}, nil
}

func (u *Market) SkillDemand(ctx context.Context, skill string) (SkillDemandReport, error) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		skill = "python"
	}

	result := coerceJobSearch(u.jobs.SearchJobs(ctx, skill, "us", 1, demandSearchResults))

	var salaries []float64
	locations := extract.NewCounter()
	for _, job := range result.Jobs {
		if job.SalaryMin != nil && job.SalaryMax != nil {
			salaries = append(salaries, (*job.SalaryMin+*job.SalaryMax)/2)
		}
		loc := strings.TrimSpace(job.Location)
		if loc == "" {
			loc = "Unknown"
		}
		locations.Add(loc)
	}

	avgSalary := 0.0
	if len(salaries) > 0 {
		sum := 0.0
		for _, s := range salaries {
			sum += s
		}
		avgSalary = math.Round(sum/float64(len(salaries))*100) / 100
	}

	related := extract.NewCounter()
	sampled := result.Jobs
	if len(sampled) > demandRelatedJobs {
		sampled = sampled[:demandRelatedJobs]
	}
	for _, job := range sampled {
		desc := strings.ToLower(job.Description)
		for _, candidate := range relatedSkillVocabulary {
			if candidate != skill && strings.Contains(desc, candidate) {
				related.Add(candidate)
			}
		}
	}

	topLocations := map[string]int{}
	for _, f := range locations.TopN(demandTopLocations) {
		topLocations[f.Name] = f.Count
	}

	sample := result.Jobs
	if len(sample) > sampleJobCount {
		sample = sample[:sampleJobCount]
	}

	return SkillDemandReport{
		Skill:         skill,
		TotalJobs:     result.Count,
		AverageSalary: avgSalary,
		TopLocations:  topLocations,
		RelatedSkills: related.TopN(demandTopRelated),
		SampleJobs:    sample,
	}, nil
}

var _ MarketUsecase = (*Market)(nil)
