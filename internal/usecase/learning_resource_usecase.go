package usecase

import (
	"context"
	"strings"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type LearningResourceItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ResourceType   string    `json:"resource_type"`
	URL            string    `json:"url"`
	SkillID        uuid.UUID `json:"skill_id"`
	SkillName      string    `json:"skill_name"`
	Difficulty     string    `json:"difficulty"`
	EstimatedHours int       `json:"estimated_hours"`
	Free           bool      `json:"free"`
}

type LearningResourceUsecase interface {
	ListLearningResources(ctx context.Context, search string, skillID uuid.UUID) ([]LearningResourceItem, error)
	GetLearningResource(ctx context.Context, id uuid.UUID) (LearningResourceItem, error)
}

type LearningResource struct {
	repo repository.LearningResourceRepository
}

func NewLearningResourceUsecase(repo repository.LearningResourceRepository) *LearningResource {
	return &LearningResource{repo: repo}
}

func (u *LearningResource) ListLearningResources(ctx context.Context, search string, skillID uuid.UUID) ([]LearningResourceItem, error) {
	var (
		items []repository.LearningResource
		err   error
	)
	if skillID != uuid.Nil {
		items, err = u.repo.ListBySkill(ctx, skillID)
	} else {
		items, err = u.repo.List(ctx, strings.TrimSpace(search))
	}
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]LearningResourceItem, 0, len(items))
	for _, it := range items {
		out = append(out, learningResourceItem(it))
	}
	return out, nil
}

func (u *LearningResource) GetLearningResource(ctx context.Context, id uuid.UUID) (LearningResourceItem, error) {
	if id == uuid.Nil {
		return LearningResourceItem{}, ErrInvalidInput
	}
	found, ok, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return LearningResourceItem{}, ErrInternal
	}
	if !ok {
		return LearningResourceItem{}, ErrNotFound
	}
	return learningResourceItem(found), nil
}

func learningResourceItem(r repository.LearningResource) LearningResourceItem {
	return LearningResourceItem{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		ResourceType:   r.ResourceType,
		URL:            r.URL,
		SkillID:        r.SkillID,
		SkillName:      r.SkillName,
		Difficulty:     r.Difficulty,
		EstimatedHours: r.EstimatedHours,
		Free:           r.Free,
	}
}

var _ LearningResourceUsecase = (*LearningResource)(nil)
