package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type SkillItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type SkillInput struct {
	Name        string
	Category    string
	Description string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, search string) ([]SkillItem, error)
	GetSkill(ctx context.Context, id uuid.UUID) (SkillItem, error)
	CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (SkillItem, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context, search string) ([]SkillItem, error) {
	items, err := u.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, skillItem(it))
	}
	return out, nil
}

func (u *Skill) GetSkill(ctx context.Context, id uuid.UUID) (SkillItem, error) {
	if id == uuid.Nil {
		return SkillItem{}, ErrInvalidInput
	}
	found, ok, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return SkillItem{}, ErrInternal
	}
	if !ok {
		return SkillItem{}, ErrNotFound
	}
	return skillItem(found), nil
}

func (u *Skill) CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, name, strings.TrimSpace(in.Category), strings.TrimSpace(in.Description))
	if err != nil {
		return SkillItem{}, ErrInternal
	}
	return skillItem(created), nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (SkillItem, error) {
	if id == uuid.Nil {
		return SkillItem{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	current, ok, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return SkillItem{}, ErrInternal
	}
	if !ok {
		return SkillItem{}, ErrNotFound
	}

	current.Name = name
	current.Category = strings.TrimSpace(in.Category)
	current.Description = strings.TrimSpace(in.Description)
	if err := u.repo.Update(ctx, current); err != nil {
		return SkillItem{}, ErrInternal
	}
	return skillItem(current), nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}

func skillItem(s repository.Skill) SkillItem {
	return SkillItem{ID: s.ID, Name: s.Name, Category: s.Category, Description: s.Description}
}

var _ SkillUsecase = (*Skill)(nil)
