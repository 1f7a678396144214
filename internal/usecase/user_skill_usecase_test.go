package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	demo user.User
	err  error
}

func (f fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (f fakeUserRepo) CreateUser(context.Context, user.User) error         { return nil }
func (f fakeUserRepo) GetUserByID(context.Context, uuid.UUID) (user.User, error) {
	return f.demo, f.err
}
func (f fakeUserRepo) GetUserByEmail(context.Context, string) (user.User, error) {
	return f.demo, f.err
}
func (f fakeUserRepo) GetOrCreateDemo(context.Context) (user.User, error) { return f.demo, f.err }

type fakeUserSkillRepo struct {
	items     []repository.UserSkill
	upserts   []repository.UserSkill
	deleteErr error
}

func (f *fakeUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return f.items, nil
}
func (f *fakeUserSkillRepo) CountByUserID(context.Context, uuid.UUID) (int, error) {
	return len(f.items), nil
}
func (f *fakeUserSkillRepo) SkillExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
func (f *fakeUserSkillRepo) Upsert(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	us.ID = uuid.New()
	f.upserts = append(f.upserts, us)
	return us, nil
}
func (f *fakeUserSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return f.deleteErr
}

type fakeRecommendationRepo struct {
	recs    []repository.Recommendation
	created []repository.Recommendation
}

func (f *fakeRecommendationRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Recommendation, error) {
	return f.recs, nil
}
func (f *fakeRecommendationRepo) Create(_ context.Context, rec repository.Recommendation) (repository.Recommendation, error) {
	rec.ID = uuid.New()
	f.created = append(f.created, rec)
	return rec, nil
}

func demoUser() user.User {
	return user.User{ID: uuid.New(), Email: user.DemoEmail}
}

func TestAddUserSkill(t *testing.T) {
	skillID := uuid.New()
	catalog := newFakeSkillRepo()
	catalog.byName["Python"] = repository.Skill{ID: skillID, Name: "Python"}
	skills := &fakeUserSkillRepo{}

	uc := NewUserSkillUsecase(fakeUserRepo{demo: demoUser()}, skills, catalog, &fakeRecommendationRepo{}, newFakeCareerRepo())

	item, err := uc.AddUserSkill(context.Background(), AddUserSkillInput{
		SkillID:          skillID,
		ProficiencyLevel: 4,
		YearsExperience:  2.5,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.SkillName != "Python" || item.ProficiencyLevel != 4 {
		t.Fatalf("unexpected item %+v", item)
	}
	if len(skills.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(skills.upserts))
	}
}

func TestAddUserSkillValidation(t *testing.T) {
	uc := NewUserSkillUsecase(fakeUserRepo{demo: demoUser()}, &fakeUserSkillRepo{}, newFakeSkillRepo(), &fakeRecommendationRepo{}, newFakeCareerRepo())

	_, err := uc.AddUserSkill(context.Background(), AddUserSkillInput{SkillID: uuid.Nil, ProficiencyLevel: 3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil skill id, got %v", err)
	}

	_, err = uc.AddUserSkill(context.Background(), AddUserSkillInput{SkillID: uuid.New(), ProficiencyLevel: 6})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}

	_, err = uc.AddUserSkill(context.Background(), AddUserSkillInput{SkillID: uuid.New(), ProficiencyLevel: 3})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound for unknown skill, got %v", err)
	}
}

func TestRemoveUserSkillNotFound(t *testing.T) {
	skills := &fakeUserSkillRepo{deleteErr: repository.ErrUserSkillNotFound}
	uc := NewUserSkillUsecase(fakeUserRepo{demo: demoUser()}, skills, newFakeSkillRepo(), &fakeRecommendationRepo{}, newFakeCareerRepo())

	err := uc.RemoveUserSkill(context.Background(), uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillGaps(t *testing.T) {
	careers := newFakeCareerRepo()
	path, _ := careers.UpsertByTitle(context.Background(), repository.CareerPathUpsert{
		Title: "Data Analyst", AverageSalary: 80000,
	})

	recs := &fakeRecommendationRepo{recs: []repository.Recommendation{
		{ID: uuid.New(), CareerPathID: path.ID, MatchPercentage: 72.5, SkillGaps: []string{"Sql"}},
		{ID: uuid.New(), CareerPathID: uuid.New(), MatchPercentage: 10, SkillGaps: nil},
	}}

	uc := NewUserSkillUsecase(fakeUserRepo{demo: demoUser()}, &fakeUserSkillRepo{}, newFakeSkillRepo(), recs, careers)

	gaps, err := uc.SkillGaps(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// The second recommendation points at a deleted career path and is skipped.
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap item, got %d", len(gaps))
	}
	if gaps[0].CareerPath.Title != "Data Analyst" || gaps[0].MatchPercentage != 72.5 {
		t.Fatalf("unexpected gap item %+v", gaps[0])
	}
	if len(gaps[0].SkillGaps) != 1 || gaps[0].SkillGaps[0] != "Sql" {
		t.Fatalf("unexpected gaps %v", gaps[0].SkillGaps)
	}
}
