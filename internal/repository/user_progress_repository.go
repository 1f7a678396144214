package repository

import (
	"context"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type UserProgress struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ResourceID         uuid.UUID
	ResourceTitle      string
	ProgressPercentage int
	Completed          bool
	StartedAt          time.Time
	CompletedAt        *time.Time
}

type UserProgressRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserProgress, error)
	CountCompletedByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	Upsert(ctx context.Context, p UserProgress) (UserProgress, error)
}

type PostgresUserProgressRepository struct {
	db database.DB
}

func NewPostgresUserProgressRepository(db database.DB) *PostgresUserProgressRepository {
	return &PostgresUserProgressRepository{db: db}
}

func (r *PostgresUserProgressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserProgress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT up.id, up.user_id, up.resource_id, lr.title, up.progress_percentage, up.completed, up.started_at, up.completed_at
		 FROM user_progress up
		 JOIN learning_resources lr ON lr.id = up.resource_id
		 WHERE up.user_id = $1
		 ORDER BY up.started_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserProgress, 0)
	for rows.Next() {
		var p UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.ResourceID, &p.ResourceTitle, &p.ProgressPercentage, &p.Completed, &p.StartedAt, &p.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserProgressRepository) CountCompletedByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_progress WHERE user_id = $1 AND completed`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresUserProgressRepository) Upsert(ctx context.Context, p UserProgress) (UserProgress, error) {
	var completedAt *time.Time
	if p.Completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO user_progress (id, user_id, resource_id, progress_percentage, completed, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, resource_id) DO UPDATE SET
			progress_percentage = EXCLUDED.progress_percentage,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at
		 RETURNING id, started_at`,
		uuid.New(), p.UserID, p.ResourceID, p.ProgressPercentage, p.Completed, completedAt,
	)
	if err := row.Scan(&p.ID, &p.StartedAt); err != nil {
		return UserProgress{}, err
	}
	p.CompletedAt = completedAt
	return p, nil
}

var _ UserProgressRepository = (*PostgresUserProgressRepository)(nil)
