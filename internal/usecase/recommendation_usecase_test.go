package usecase

import (
	"context"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type fakeProgressRepo struct {
	completed int
}

func (f fakeProgressRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserProgress, error) {
	return nil, nil
}
func (f fakeProgressRepo) CountCompletedByUserID(context.Context, uuid.UUID) (int, error) {
	return f.completed, nil
}
func (f fakeProgressRepo) Upsert(_ context.Context, p repository.UserProgress) (repository.UserProgress, error) {
	return p, nil
}

func TestGenerateRecommendations(t *testing.T) {
	ctx := context.Background()

	careers := newFakeCareerRepo()
	path, _ := careers.UpsertByTitle(ctx, repository.CareerPathUpsert{Title: "Data Analyst"})

	pyID, sqlID := uuid.New(), uuid.New()
	links := &fakeLinkRepoWithRows{rows: []repository.CareerPathSkill{
		{CareerPathID: path.ID, SkillID: pyID, SkillName: "Python", ProficiencyLevel: 3, IsCore: true},
		{CareerPathID: path.ID, SkillID: sqlID, SkillName: "Sql", ProficiencyLevel: 3, IsCore: true},
	}}

	demo := demoUser()
	held := &fakeUserSkillRepo{items: []repository.UserSkill{
		{ID: uuid.New(), UserID: demo.ID, SkillID: pyID, SkillName: "Python", ProficiencyLevel: 5},
	}}
	recs := &fakeRecommendationRepo{}

	uc := NewRecommendationUsecase(fakeUserRepo{demo: demo}, recs, held, fakeProgressRepo{}, careers, links)

	items, err := uc.GenerateRecommendations(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(items))
	}
	// Python fully met, Sql missing: half of the core points.
	if items[0].MatchPercentage != 50 {
		t.Fatalf("expected 50%% match, got %v", items[0].MatchPercentage)
	}
	if len(items[0].SkillGaps) != 1 || items[0].SkillGaps[0] != "Sql" {
		t.Fatalf("unexpected gaps %v", items[0].SkillGaps)
	}
	if items[0].CareerPathTitle != "Data Analyst" {
		t.Fatalf("unexpected title %q", items[0].CareerPathTitle)
	}
	if len(recs.created) != 1 || recs.created[0].UserID != demo.ID {
		t.Fatalf("recommendation not persisted for demo user: %+v", recs.created)
	}
}

type fakeLinkRepoWithRows struct {
	rows []repository.CareerPathSkill
}

func (f *fakeLinkRepoWithRows) Upsert(context.Context, uuid.UUID, uuid.UUID, int, bool) error {
	return nil
}
func (f *fakeLinkRepoWithRows) ListByCareerPath(context.Context, uuid.UUID) ([]repository.CareerPathSkill, error) {
	return f.rows, nil
}

func TestDashboardUsername(t *testing.T) {
	demo := demoUser()
	held := &fakeUserSkillRepo{items: []repository.UserSkill{
		{ID: uuid.New(), SkillID: uuid.New(), SkillName: "Python", ProficiencyLevel: 3},
	}}

	uc := NewRecommendationUsecase(fakeUserRepo{demo: demo}, &fakeRecommendationRepo{}, held, fakeProgressRepo{completed: 2}, newFakeCareerRepo(), &fakeLinkRepoWithRows{})

	summary, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.Username != "demo" {
		t.Fatalf("expected username from email local part, got %q", summary.Username)
	}
	if summary.SkillsCount != 1 || summary.CompletedResources != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
