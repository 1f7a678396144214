package usecase

import (
	"context"
	"log"
	"strings"

	"career-compass/internal/extract"
	"career-compass/internal/provider"

	"golang.org/x/sync/errgroup"
)

// DefaultCareerTitle is substituted when a caller omits the title.
const DefaultCareerTitle = "Software Developer"

const (
	skillSearchPageSize    = 50
	analysisJobResults     = 20
	analysisSkillPages     = 2
	analysisTopSkills      = 5
	analysisResultsPerItem = 5
	requirementJobSample   = 10
	topSkillCount          = 20
	topRequirementCount    = 10
	sampleJobCount         = 5
)

type MarketData struct {
	TotalJobs     int         `json:"total_jobs"`
	AverageSalary float64     `json:"average_salary"`
	SalaryRange   SalaryRange `json:"salary_range"`
}

type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type SkillResourceBundle struct {
	Skill    string            `json:"skill"`
	JobCount int               `json:"job_count"`
	Courses  []provider.Course `json:"courses"`
	Videos   []provider.Video  `json:"videos"`
}

type CareerAnalysis struct {
	CareerTitle        string                `json:"career_title"`
	MarketData         MarketData            `json:"market_data"`
	RequiredSkills     []extract.Frequency   `json:"required_skills"`
	CommonRequirements []extract.Frequency   `json:"common_requirements"`
	LearningResources  []SkillResourceBundle `json:"learning_resources"`
	SampleJobs         []provider.Job        `json:"sample_jobs"`
}

type AnalysisUsecase interface {
	BuildCareerAnalysis(ctx context.Context, title string) (CareerAnalysis, error)
	ExtractSkillsFromJobs(ctx context.Context, title, location string, maxPages int) []extract.Frequency
}

type Analysis struct {
	jobs    provider.JobClient
	courses provider.CourseClient
	videos  provider.VideoClient
	logger  *log.Logger
}

func NewAnalysisUsecase(jobs provider.JobClient, courses provider.CourseClient, videos provider.VideoClient, logger *log.Logger) *Analysis {
	return &Analysis{jobs: jobs, courses: courses, videos: videos, logger: logger}
}

// ExtractSkillsFromJobs scans up to maxPages of job descriptions for the
// tech-skill vocabulary and returns the top 20 tokens by frequency, ties in
// first-seen order. Provider failures degrade to skipped pages, so the result
// is empty rather than an error when every page fails.
func (u *Analysis) ExtractSkillsFromJobs(ctx context.Context, title, location string, maxPages int) []extract.Frequency {
	counter := extract.NewCounter()

	for page := 1; page <= maxPages; page++ {
		result, err := u.jobs.SearchJobs(ctx, title, location, page, skillSearchPageSize)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Analysis] skill extraction page skipped title=%q page=%d err=%v", title, page, err)
			}
			continue
		}
		for _, job := range result.Jobs {
			counter.AddAll(extract.ScanSkills(job.Description))
		}
	}

	return counter.TopN(topSkillCount)
}

// BuildCareerAnalysis fans out to the three providers, waits for every
// branch, and merges the results into one report. The resource lookups run
// after skill extraction because they are keyed by the extracted skills;
// everything else is independent.
func (u *Analysis) BuildCareerAnalysis(ctx context.Context, title string) (CareerAnalysis, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultCareerTitle
	}

	var (
		jobResult provider.JobSearchResult
		salary    provider.SalarySummary
		skills    []extract.Frequency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobResult = coerceJobSearch(u.jobs.SearchJobs(gctx, title, "us", 1, analysisJobResults))
		return nil
	})
	g.Go(func() error {
		salary = coerceSalary(u.jobs.SalaryStats(gctx, title, "us"))
		return nil
	})
	g.Go(func() error {
		skills = u.ExtractSkillsFromJobs(gctx, title, "us", analysisSkillPages)
		return nil
	})
	if err := g.Wait(); err != nil {
		return CareerAnalysis{}, err
	}

	topSkills := skills
	if len(topSkills) > analysisTopSkills {
		topSkills = topSkills[:analysisTopSkills]
	}

	bundles := make([]SkillResourceBundle, len(topSkills))
	rg, rctx := errgroup.WithContext(ctx)
	for i, sf := range topSkills {
		bundles[i] = SkillResourceBundle{
			Skill:    sf.Name,
			JobCount: sf.Count,
			Courses:  []provider.Course{},
			Videos:   []provider.Video{},
		}
		rg.Go(func() error {
			if courses, err := u.courses.SearchCourses(rctx, sf.Name, analysisResultsPerItem); err == nil {
				bundles[i].Courses = courses
			}
			return nil
		})
		rg.Go(func() error {
			if videos, err := u.videos.SearchVideos(rctx, sf.Name, analysisResultsPerItem); err == nil {
				bundles[i].Videos = videos
			}
			return nil
		})
	}
	if err := rg.Wait(); err != nil {
		return CareerAnalysis{}, err
	}

	requirements := extract.NewCounter()
	reqJobs := jobResult.Jobs
	if len(reqJobs) > requirementJobSample {
		reqJobs = reqJobs[:requirementJobSample]
	}
	for _, job := range reqJobs {
		requirements.AddAll(extract.ScanRequirements(job.Description))
	}

	sample := jobResult.Jobs
	if len(sample) > sampleJobCount {
		sample = sample[:sampleJobCount]
	}

	return CareerAnalysis{
		CareerTitle:        title,
		MarketData:         marketDataFrom(jobResult.Count, salary),
		RequiredSkills:     skills,
		CommonRequirements: requirements.TopN(topRequirementCount),
		LearningResources:  bundles,
		SampleJobs:         sample,
	}, nil
}

// coerceJobSearch and coerceSalary implement the degrade-to-empty policy:
// the aggregation layer chooses to turn a ProviderError into a zero value
// instead of branching per provider.
func coerceJobSearch(result provider.JobSearchResult, err error) provider.JobSearchResult {
	if err != nil {
		return provider.JobSearchResult{Jobs: []provider.Job{}}
	}
	return result
}

func coerceSalary(summary provider.SalarySummary, err error) provider.SalarySummary {
	if err != nil {
		return provider.SalarySummary{}
	}
	return summary
}

func marketDataFrom(totalJobs int, salary provider.SalarySummary) MarketData {
	md := MarketData{TotalJobs: totalJobs}
	if salary.Median != nil {
		md.AverageSalary = *salary.Median
	}
	if salary.Min != nil {
		md.SalaryRange.Min = *salary.Min
	}
	if salary.Max != nil {
		md.SalaryRange.Max = *salary.Max
	}
	return md
}

var _ AnalysisUsecase = (*Analysis)(nil)
