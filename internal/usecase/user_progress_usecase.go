package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type UpsertProgressInput struct {
	ResourceID         uuid.UUID
	ProgressPercentage int
	Completed          bool
}

type UserProgressItem struct {
	ID                 uuid.UUID  `json:"id"`
	ResourceID         uuid.UUID  `json:"resource_id"`
	ResourceTitle      string     `json:"resource_title"`
	ProgressPercentage int        `json:"progress_percentage"`
	Completed          bool       `json:"completed"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
}

type UserProgressUsecase interface {
	ListProgress(ctx context.Context) ([]UserProgressItem, error)
	UpsertProgress(ctx context.Context, in UpsertProgressInput) (UserProgressItem, error)
}

type UserProgressUC struct {
	users     user.Repository
	progress  repository.UserProgressRepository
	resources repository.LearningResourceRepository
}

func NewUserProgressUsecase(
	users user.Repository,
	progress repository.UserProgressRepository,
	resources repository.LearningResourceRepository,
) *UserProgressUC {
	return &UserProgressUC{users: users, progress: progress, resources: resources}
}

func (u *UserProgressUC) ListProgress(ctx context.Context) ([]UserProgressItem, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	items, err := u.progress.FindByUserID(ctx, demo.ID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserProgressItem, 0, len(items))
	for _, it := range items {
		out = append(out, userProgressItem(it))
	}
	return out, nil
}

func (u *UserProgressUC) UpsertProgress(ctx context.Context, in UpsertProgressInput) (UserProgressItem, error) {
	if in.ResourceID == uuid.Nil {
		return UserProgressItem{}, ErrInvalidInput
	}
	if in.ProgressPercentage < 0 || in.ProgressPercentage > 100 {
		return UserProgressItem{}, ErrInvalidInput
	}

	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return UserProgressItem{}, ErrInternal
	}

	resource, ok, err := u.resources.GetByID(ctx, in.ResourceID)
	if err != nil {
		return UserProgressItem{}, ErrInternal
	}
	if !ok {
		return UserProgressItem{}, ErrNotFound
	}

	saved, err := u.progress.Upsert(ctx, repository.UserProgress{
		UserID:             demo.ID,
		ResourceID:         in.ResourceID,
		ResourceTitle:      resource.Title,
		ProgressPercentage: in.ProgressPercentage,
		Completed:          in.Completed,
	})
	if err != nil {
		return UserProgressItem{}, ErrInternal
	}
	return userProgressItem(saved), nil
}

func userProgressItem(p repository.UserProgress) UserProgressItem {
	return UserProgressItem{
		ID:                 p.ID,
		ResourceID:         p.ResourceID,
		ResourceTitle:      p.ResourceTitle,
		ProgressPercentage: p.ProgressPercentage,
		Completed:          p.Completed,
		StartedAt:          p.StartedAt,
		CompletedAt:        p.CompletedAt,
	}
}

var _ UserProgressUsecase = (*UserProgressUC)(nil)
