package usecase

import (
	"context"
	"errors"

	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidInput            = errors.New("invalid input")
)

type AddUserSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
	YearsExperience  float64
}

type UserSkillItem struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  float64   `json:"years_experience"`
}

type SkillGapItem struct {
	CareerPath      CareerPathItem `json:"career_path"`
	MatchPercentage float64        `json:"match_percentage"`
	SkillGaps       []string       `json:"skill_gaps"`
}

// UserSkillUsecase manages the demo profile's skill inventory. Every
// operation resolves the shared demo user first, so the surface needs
// no authentication.
type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, in AddUserSkillInput) (UserSkillItem, error)
	RemoveUserSkill(ctx context.Context, skillID uuid.UUID) error
	SkillGaps(ctx context.Context) ([]SkillGapItem, error)
}

type UserSkill struct {
	users           user.Repository
	skills          repository.UserSkillRepository
	catalog         repository.SkillRepository
	recommendations repository.RecommendationRepository
	careers         repository.CareerPathRepository
}

func NewUserSkillUsecase(
	users user.Repository,
	skills repository.UserSkillRepository,
	catalog repository.SkillRepository,
	recommendations repository.RecommendationRepository,
	careers repository.CareerPathRepository,
) *UserSkill {
	return &UserSkill{users: users, skills: skills, catalog: catalog, recommendations: recommendations, careers: careers}
}

func (u *UserSkill) ListUserSkills(ctx context.Context) ([]UserSkillItem, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	items, err := u.skills.FindByUserID(ctx, demo.ID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, userSkillItem(it))
	}
	return out, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, in AddUserSkillInput) (UserSkillItem, error) {
	if in.SkillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if !isValidProficiency(in.ProficiencyLevel) {
		return UserSkillItem{}, ErrInvalidProficiencyLevel
	}
	if in.YearsExperience < 0 {
		return UserSkillItem{}, ErrInvalidInput
	}

	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}

	skill, ok, err := u.catalog.GetByID(ctx, in.SkillID)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	if !ok {
		return UserSkillItem{}, ErrSkillNotFound
	}

	saved, err := u.skills.Upsert(ctx, repository.UserSkill{
		UserID:           demo.ID,
		SkillID:          in.SkillID,
		SkillName:        skill.Name,
		ProficiencyLevel: in.ProficiencyLevel,
		YearsExperience:  in.YearsExperience,
	})
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	return userSkillItem(saved), nil
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}

	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return ErrInternal
	}

	if err := u.skills.Delete(ctx, demo.ID, skillID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

// SkillGaps reports, per stored recommendation, which skills the demo
// profile is still missing for that career path.
func (u *UserSkill) SkillGaps(ctx context.Context) ([]SkillGapItem, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	recs, err := u.recommendations.FindByUserID(ctx, demo.ID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillGapItem, 0, len(recs))
	for _, rec := range recs {
		path, ok, err := u.careers.GetByID(ctx, rec.CareerPathID)
		if err != nil {
			return nil, ErrInternal
		}
		if !ok {
			continue
		}
		gaps := rec.SkillGaps
		if gaps == nil {
			gaps = []string{}
		}
		out = append(out, SkillGapItem{
			CareerPath:      careerPathItem(path),
			MatchPercentage: rec.MatchPercentage,
			SkillGaps:       gaps,
		})
	}
	return out, nil
}

func userSkillItem(us repository.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.SkillName,
		ProficiencyLevel: us.ProficiencyLevel,
		YearsExperience:  us.YearsExperience,
	}
}

func isValidProficiency(v int) bool {
	return v >= 1 && v <= 5
}

var _ UserSkillUsecase = (*UserSkill)(nil)
