package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"career-compass/internal/extract"
	"career-compass/internal/provider"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type fakeExtractor struct {
	frequencies []extract.Frequency
}

func (f fakeExtractor) ExtractSkillsFromJobs(context.Context, string, string, int) []extract.Frequency {
	return f.frequencies
}

type fakeCareerRepo struct {
	byTitle map[string]repository.CareerPath
	upserts []repository.CareerPathUpsert
}

func newFakeCareerRepo() *fakeCareerRepo {
	return &fakeCareerRepo{byTitle: map[string]repository.CareerPath{}}
}

func (f *fakeCareerRepo) List(context.Context) ([]repository.CareerPath, error) {
	out := make([]repository.CareerPath, 0, len(f.byTitle))
	for _, p := range f.byTitle {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCareerRepo) GetByID(_ context.Context, id uuid.UUID) (repository.CareerPath, bool, error) {
	for _, p := range f.byTitle {
		if p.ID == id {
			return p, true, nil
		}
	}
	return repository.CareerPath{}, false, nil
}

func (f *fakeCareerRepo) GetByTitle(_ context.Context, title string) (repository.CareerPath, bool, error) {
	p, ok := f.byTitle[title]
	return p, ok, nil
}

func (f *fakeCareerRepo) UpsertByTitle(_ context.Context, in repository.CareerPathUpsert) (repository.CareerPath, error) {
	f.upserts = append(f.upserts, in)
	if p, ok := f.byTitle[in.Title]; ok {
		avg := in.AverageSalary
		p.AverageSalary = &avg
		f.byTitle[in.Title] = p
		return p, nil
	}
	avg := in.AverageSalary
	p := repository.CareerPath{
		ID:                 uuid.New(),
		Title:              in.Title,
		Description:        in.Description,
		AverageSalary:      &avg,
		FutureGrowth:       in.FutureGrowth,
		RequiredExperience: in.RequiredExperience,
	}
	f.byTitle[in.Title] = p
	return p, nil
}

func (f *fakeCareerRepo) Create(ctx context.Context, in repository.CareerPathUpsert) (repository.CareerPath, error) {
	return f.UpsertByTitle(ctx, in)
}

func (f *fakeCareerRepo) Update(context.Context, repository.CareerPath) error { return nil }
func (f *fakeCareerRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeSkillRepo struct {
	byName map[string]repository.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{byName: map[string]repository.Skill{}}
}

func (f *fakeSkillRepo) List(context.Context, string) ([]repository.Skill, error) { return nil, nil }

func (f *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Skill, bool, error) {
	for _, s := range f.byName {
		if s.ID == id {
			return s, true, nil
		}
	}
	return repository.Skill{}, false, nil
}

func (f *fakeSkillRepo) GetByName(_ context.Context, name string) (repository.Skill, bool, error) {
	s, ok := f.byName[name]
	return s, ok, nil
}

func (f *fakeSkillRepo) GetOrCreate(_ context.Context, name, category, description string) (repository.Skill, error) {
	if s, ok := f.byName[name]; ok {
		return s, nil
	}
	s := repository.Skill{ID: uuid.New(), Name: name, Category: category, Description: description}
	f.byName[name] = s
	return s, nil
}

func (f *fakeSkillRepo) Create(ctx context.Context, name, category, description string) (repository.Skill, error) {
	return f.GetOrCreate(ctx, name, category, description)
}

func (f *fakeSkillRepo) Update(context.Context, repository.Skill) error { return nil }
func (f *fakeSkillRepo) Delete(context.Context, uuid.UUID) error        { return nil }

type linkRecord struct {
	skillName   string
	proficiency int
	isCore      bool
}

type fakeLinkRepo struct {
	skills    *fakeSkillRepo
	links     map[uuid.UUID]linkRecord
	upsertErr error
}

func newFakeLinkRepo(skills *fakeSkillRepo) *fakeLinkRepo {
	return &fakeLinkRepo{skills: skills, links: map[uuid.UUID]linkRecord{}}
}

func (f *fakeLinkRepo) Upsert(_ context.Context, _ uuid.UUID, skillID uuid.UUID, proficiency int, isCore bool) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	name := ""
	for n, s := range f.skills.byName {
		if s.ID == skillID {
			name = n
		}
	}
	f.links[skillID] = linkRecord{skillName: name, proficiency: proficiency, isCore: isCore}
	return nil
}

func (f *fakeLinkRepo) ListByCareerPath(context.Context, uuid.UUID) ([]repository.CareerPathSkill, error) {
	return nil, nil
}

type fakeResourceRepo struct {
	upserts []repository.LearningResourceUpsert
}

func (f *fakeResourceRepo) List(context.Context, string) ([]repository.LearningResource, error) {
	return nil, nil
}

func (f *fakeResourceRepo) ListBySkill(context.Context, uuid.UUID) ([]repository.LearningResource, error) {
	return nil, nil
}

func (f *fakeResourceRepo) GetByID(context.Context, uuid.UUID) (repository.LearningResource, bool, error) {
	return repository.LearningResource{}, false, nil
}

func (f *fakeResourceRepo) UpsertByTitle(_ context.Context, in repository.LearningResourceUpsert) error {
	f.upserts = append(f.upserts, in)
	return nil
}

func (f *fakeResourceRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakePopulateCache struct {
	held        bool
	setErr      error
	locks       []string
	releases    []string
	invalidated []string
}

func (f *fakePopulateCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	if f.setErr != nil {
		return false, f.setErr
	}
	if f.held {
		return false, nil
	}
	f.locks = append(f.locks, key)
	return true, nil
}

func (f *fakePopulateCache) Delete(_ context.Context, key string) error {
	f.releases = append(f.releases, key)
	return nil
}

func (f *fakePopulateCache) InvalidateProvider(_ context.Context, provider string) error {
	f.invalidated = append(f.invalidated, provider)
	return nil
}

type fakeNotifier struct {
	title          string
	skillsAdded    int
	resourcesAdded int
	calls          int
}

func (f *fakeNotifier) CareerPopulated(title string, skillsAdded, resourcesAdded int) {
	f.calls++
	f.title = title
	f.skillsAdded = skillsAdded
	f.resourcesAdded = resourcesAdded
}

func TestAutoPopulateCareer(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)
	resources := &fakeResourceRepo{}
	notifier := &fakeNotifier{}

	uc := NewPopulateUsecase(
		&fakeJobClient{salary: provider.SalarySummary{Median: ptrFloat(92000)}},
		&fakeCourseClient{courses: []provider.Course{
			{ID: "c1", Name: "Course A", Link: "https://example.com/a", Free: true},
			{ID: "c2", Name: "Course B", Link: "https://example.com/b"},
		}},
		fakeExtractor{frequencies: []extract.Frequency{
			{Name: "sql", Count: 42},
			{Name: "python", Count: 38},
		}},
		careers, skills, links, resources, notifier, nil, nil,
	)

	summary, err := uc.AutoPopulateCareer(context.Background(), "Data Analyst")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if summary.CareerTitle != "Data Analyst" {
		t.Fatalf("unexpected title %q", summary.CareerTitle)
	}
	if summary.SkillsAdded != 2 {
		t.Fatalf("expected 2 skills added, got %d", summary.SkillsAdded)
	}
	if summary.ResourcesAdded != 4 {
		t.Fatalf("expected 4 resources added, got %d", summary.ResourcesAdded)
	}

	career, ok := careers.byTitle["Data Analyst"]
	if !ok {
		t.Fatalf("career path not persisted")
	}
	if career.AverageSalary == nil || *career.AverageSalary != 92000 {
		t.Fatalf("expected provider median as salary, got %+v", career.AverageSalary)
	}

	var sqlLink, pyLink *linkRecord
	for _, l := range links.links {
		l := l
		switch l.skillName {
		case "Sql":
			sqlLink = &l
		case "Python":
			pyLink = &l
		}
	}
	if sqlLink == nil || pyLink == nil {
		t.Fatalf("expected Sql and Python links, got %+v", links.links)
	}
	// Mention counts bucket into proficiency: 42 -> 4 (core), 38 -> 3.
	if sqlLink.proficiency != 4 || !sqlLink.isCore {
		t.Fatalf("unexpected sql link %+v", sqlLink)
	}
	if pyLink.proficiency != 3 || pyLink.isCore {
		t.Fatalf("unexpected python link %+v", pyLink)
	}

	for _, r := range resources.upserts {
		if r.ResourceType != "course" || r.Difficulty != "beginner" {
			t.Fatalf("unexpected resource %+v", r)
		}
		if r.SkillID == uuid.Nil {
			t.Fatalf("resource not linked to a skill: %+v", r)
		}
	}

	if notifier.calls != 1 || notifier.title != "Data Analyst" || notifier.skillsAdded != 2 || notifier.resourcesAdded != 4 {
		t.Fatalf("unexpected notification %+v", notifier)
	}
}

func TestAutoPopulateCareerIdempotent(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)

	uc := NewPopulateUsecase(
		&fakeJobClient{},
		&fakeCourseClient{},
		fakeExtractor{frequencies: []extract.Frequency{{Name: "python", Count: 12}}},
		careers, skills, links, &fakeResourceRepo{}, nil, nil, nil,
	)

	first, err := uc.AutoPopulateCareer(context.Background(), "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.AutoPopulateCareer(context.Background(), "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err on rerun: %v", err)
	}

	if first.CareerID != second.CareerID {
		t.Fatalf("rerun must converge on the same career path")
	}
	if len(careers.byTitle) != 1 || len(skills.byName) != 1 || len(links.links) != 1 {
		t.Fatalf("rerun duplicated records: careers=%d skills=%d links=%d",
			len(careers.byTitle), len(skills.byName), len(links.links))
	}
}

func TestAutoPopulateCareerPartialFailure(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)
	links.upsertErr = errors.New("db down")

	uc := NewPopulateUsecase(
		&fakeJobClient{},
		&fakeCourseClient{},
		fakeExtractor{frequencies: []extract.Frequency{{Name: "sql", Count: 40}}},
		careers, skills, links, &fakeResourceRepo{}, nil, nil, nil,
	)

	_, err := uc.AutoPopulateCareer(context.Background(), "Data Analyst")
	if err == nil || !strings.Contains(err.Error(), "sync skills") {
		t.Fatalf("expected sync skills error, got %v", err)
	}

	// Earlier writes stay committed; the run is at-least-once, not atomic.
	if len(careers.byTitle) != 1 {
		t.Fatalf("career path write should survive the later failure")
	}
}

func TestAutoPopulateCareerLockAndInvalidation(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)
	pc := &fakePopulateCache{}

	uc := NewPopulateUsecase(
		&fakeJobClient{},
		&fakeCourseClient{},
		fakeExtractor{frequencies: []extract.Frequency{{Name: "python", Count: 12}}},
		careers, skills, links, &fakeResourceRepo{}, nil, pc, nil,
	)

	if _, err := uc.AutoPopulateCareer(context.Background(), "Data Analyst"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(pc.locks) != 1 || pc.locks[0] != "populate:lock:data analyst" {
		t.Fatalf("unexpected lock keys %v", pc.locks)
	}
	if len(pc.releases) != 1 || pc.releases[0] != pc.locks[0] {
		t.Fatalf("lock not released: %v", pc.releases)
	}
	if len(pc.invalidated) != 1 || pc.invalidated[0] != "adzuna" {
		t.Fatalf("expected adzuna invalidation, got %v", pc.invalidated)
	}
}

func TestAutoPopulateCareerAlreadyRunning(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)
	pc := &fakePopulateCache{held: true}

	uc := NewPopulateUsecase(
		&fakeJobClient{},
		&fakeCourseClient{},
		fakeExtractor{frequencies: []extract.Frequency{{Name: "python", Count: 12}}},
		careers, skills, links, &fakeResourceRepo{}, nil, pc, nil,
	)

	_, err := uc.AutoPopulateCareer(context.Background(), "Data Analyst")
	if !errors.Is(err, ErrPopulateInProgress) {
		t.Fatalf("expected ErrPopulateInProgress, got %v", err)
	}
	if len(careers.byTitle) != 0 || len(skills.byName) != 0 {
		t.Fatalf("held lock must prevent writes")
	}
	if len(pc.invalidated) != 0 {
		t.Fatalf("held lock must not invalidate the provider cache")
	}
}

func TestAutoPopulateCareerCacheOutageRunsUnlocked(t *testing.T) {
	skills := newFakeSkillRepo()
	careers := newFakeCareerRepo()
	links := newFakeLinkRepo(skills)
	pc := &fakePopulateCache{setErr: errors.New("redis down")}

	uc := NewPopulateUsecase(
		&fakeJobClient{},
		&fakeCourseClient{},
		fakeExtractor{frequencies: []extract.Frequency{{Name: "python", Count: 12}}},
		careers, skills, links, &fakeResourceRepo{}, nil, pc, nil,
	)

	if _, err := uc.AutoPopulateCareer(context.Background(), "Data Analyst"); err != nil {
		t.Fatalf("cache outage must not block the run: %v", err)
	}
	if len(careers.byTitle) != 1 {
		t.Fatalf("expected the run to proceed unlocked")
	}
}

func TestProficiencyFromFrequency(t *testing.T) {
	cases := map[int]int{5: 3, 29: 3, 30: 3, 45: 4, 100: 5}
	for freq, want := range cases {
		if got := proficiencyFromFrequency(freq); got != want {
			t.Fatalf("proficiencyFromFrequency(%d) = %d, want %d", freq, got, want)
		}
	}
}

var (
	_ repository.CareerPathRepository       = (*fakeCareerRepo)(nil)
	_ repository.SkillRepository            = (*fakeSkillRepo)(nil)
	_ repository.CareerPathSkillRepository  = (*fakeLinkRepo)(nil)
	_ repository.LearningResourceRepository = (*fakeResourceRepo)(nil)
)
