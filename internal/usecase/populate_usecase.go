package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-compass/internal/extract"
	"career-compass/internal/provider"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const (
	populateSkillLimit      = 10
	populateResourceSkills  = 5
	populateCoursesPerSkill = 3
	populateLockTTL         = 2 * time.Minute

	seedFutureGrowth       = 15
	seedRequiredExperience = "2-5 years"
	defaultAverageSalary   = 70000
	defaultResourceHours   = 20
)

// ErrPopulateInProgress reports that another populate run already holds
// the lock for the same career title.
var ErrPopulateInProgress = errors.New("populate already in progress")

type PopulateSummary struct {
	CareerID       uuid.UUID `json:"career_id"`
	CareerTitle    string    `json:"career_title"`
	SkillsAdded    int       `json:"skills_added"`
	ResourcesAdded int       `json:"resources_added"`
}

// PopulateNotifier receives an event after a successful auto-populate run.
type PopulateNotifier interface {
	CareerPopulated(title string, skillsAdded, resourcesAdded int)
}

// populateCache is the slice of the shared cache the populate flow uses:
// a short-lived lock de-duplicating concurrent runs for one title, and
// provider-wide invalidation once the catalog has been refreshed. The
// Redis wrapper in internal/infrastructure/cache satisfies it.
type populateCache interface {
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	InvalidateProvider(ctx context.Context, provider string) error
}

type PopulateUsecase interface {
	AutoPopulateCareer(ctx context.Context, title string) (PopulateSummary, error)
}

// Populate reconciles extracted market signals against persisted records.
// Every write goes through a create-or-update primitive keyed by a unique
// field, so re-running for the same title converges instead of duplicating.
// The steps are not wrapped in one transaction: a failure partway leaves the
// earlier writes committed, and the caller reports the failure.
type Populate struct {
	jobs      provider.JobClient
	courses   provider.CourseClient
	extractor skillExtractor
	careers   repository.CareerPathRepository
	skills    repository.SkillRepository
	links     repository.CareerPathSkillRepository
	resources repository.LearningResourceRepository
	notifier  PopulateNotifier
	cache     populateCache
	logger    *log.Logger
}

type skillExtractor interface {
	ExtractSkillsFromJobs(ctx context.Context, title, location string, maxPages int) []extract.Frequency
}

func NewPopulateUsecase(
	jobs provider.JobClient,
	courses provider.CourseClient,
	extractor skillExtractor,
	careers repository.CareerPathRepository,
	skills repository.SkillRepository,
	links repository.CareerPathSkillRepository,
	resources repository.LearningResourceRepository,
	notifier PopulateNotifier,
	cache populateCache,
	logger *log.Logger,
) *Populate {
	return &Populate{
		jobs:      jobs,
		courses:   courses,
		extractor: extractor,
		careers:   careers,
		skills:    skills,
		links:     links,
		resources: resources,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
	}
}

func (u *Populate) AutoPopulateCareer(ctx context.Context, title string) (PopulateSummary, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultCareerTitle
	}

	unlock, err := u.acquireLock(ctx, title)
	if err != nil {
		return PopulateSummary{}, err
	}
	defer unlock()

	frequencies := u.extractor.ExtractSkillsFromJobs(ctx, title, "us", analysisSkillPages)
	salary := coerceSalary(u.jobs.SalaryStats(ctx, title, "us"))

	career, err := u.syncCareerPath(ctx, title, salary)
	if err != nil {
		return PopulateSummary{}, fmt.Errorf("sync career path: %w", err)
	}

	skillsAdded, err := u.syncSkills(ctx, career, frequencies, populateSkillLimit)
	if err != nil {
		return PopulateSummary{}, fmt.Errorf("sync skills: %w", err)
	}

	resourcesAdded, err := u.syncLearningResources(ctx, frequencies, populateResourceSkills, populateCoursesPerSkill)
	if err != nil {
		return PopulateSummary{}, fmt.Errorf("sync learning resources: %w", err)
	}

	if u.logger != nil {
		u.logger.Printf("[Populate] career populated title=%q skills=%d resources=%d", title, skillsAdded, resourcesAdded)
	}
	if u.notifier != nil {
		u.notifier.CareerPopulated(career.Title, skillsAdded, resourcesAdded)
	}
	if u.cache != nil {
		// Cached listings predate the refresh; drop them so the next
		// analysis re-reads the upstream.
		_ = u.cache.InvalidateProvider(ctx, "adzuna")
	}

	return PopulateSummary{
		CareerID:       career.ID,
		CareerTitle:    career.Title,
		SkillsAdded:    skillsAdded,
		ResourcesAdded: resourcesAdded,
	}, nil
}

// acquireLock de-duplicates concurrent runs for one title. A cache
// outage degrades to running unlocked, matching the cache wrapper's
// bypass behavior everywhere else.
func (u *Populate) acquireLock(ctx context.Context, title string) (func(), error) {
	if u.cache == nil {
		return func() {}, nil
	}

	key := "populate:lock:" + strings.ToLower(title)
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", populateLockTTL)
	if err != nil {
		return func() {}, nil
	}
	if !ok {
		return nil, ErrPopulateInProgress
	}
	return func() { _ = u.cache.Delete(ctx, key) }, nil
}

// syncCareerPath is create-or-update by title. A new row gets the seed
// growth and experience values; an existing row only has its average salary
// refreshed.
func (u *Populate) syncCareerPath(ctx context.Context, title string, salary provider.SalarySummary) (repository.CareerPath, error) {
	avg := float64(defaultAverageSalary)
	if salary.Median != nil {
		avg = *salary.Median
	}

	return u.careers.UpsertByTitle(ctx, repository.CareerPathUpsert{
		Title:              title,
		Description:        fmt.Sprintf("Career path for %s based on market data", title),
		AverageSalary:      avg,
		FutureGrowth:       seedFutureGrowth,
		RequiredExperience: seedRequiredExperience,
	})
}

func (u *Populate) syncSkills(ctx context.Context, career repository.CareerPath, frequencies []extract.Frequency, limit int) (int, error) {
	if len(frequencies) > limit {
		frequencies = frequencies[:limit]
	}

	added := 0
	for _, f := range frequencies {
		skill, err := u.skills.GetOrCreate(ctx,
			extract.Capitalize(f.Name),
			"Technical",
			fmt.Sprintf("Skill extracted from %s job market", career.Title),
		)
		if err != nil {
			return added, err
		}

		proficiency := proficiencyFromFrequency(f.Count)
		if err := u.links.Upsert(ctx, career.ID, skill.ID, proficiency, proficiency >= 4); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func (u *Populate) syncLearningResources(ctx context.Context, frequencies []extract.Frequency, limit, coursesPerSkill int) (int, error) {
	if len(frequencies) > limit {
		frequencies = frequencies[:limit]
	}

	added := 0
	for _, f := range frequencies {
		courses, err := u.courses.SearchCourses(ctx, f.Name, coursesPerSkill)
		if err != nil {
			// Provider outage degrades to no resources for this skill.
			continue
		}

		skill, found, err := u.skills.GetByName(ctx, extract.Capitalize(f.Name))
		if err != nil {
			return added, err
		}
		if !found {
			// Resources hang off skills synced in the previous step.
			continue
		}

		for _, course := range courses {
			err := u.resources.UpsertByTitle(ctx, repository.LearningResourceUpsert{
				Title:          course.Name,
				Description:    course.Description,
				ResourceType:   "course",
				URL:            course.Link,
				SkillID:        skill.ID,
				Difficulty:     "beginner",
				EstimatedHours: defaultResourceHours,
				Free:           course.Free,
			})
			if err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}

// proficiencyFromFrequency buckets a raw mention count into [3,5].
func proficiencyFromFrequency(frequency int) int {
	p := frequency / 10
	if p < 3 {
		return 3
	}
	if p > 5 {
		return 5
	}
	return p
}

var _ PopulateUsecase = (*Populate)(nil)
