package repository

import (
	"context"
	"strings"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type LearningResource struct {
	ID             uuid.UUID
	Title          string
	Description    string
	ResourceType   string
	URL            string
	SkillID        uuid.UUID
	SkillName      string
	Difficulty     string
	EstimatedHours int
	Free           bool
}

type LearningResourceUpsert struct {
	Title          string
	Description    string
	ResourceType   string
	URL            string
	SkillID        uuid.UUID
	Difficulty     string
	EstimatedHours int
	Free           bool
}

type LearningResourceRepository interface {
	List(ctx context.Context, search string) ([]LearningResource, error)
	ListBySkill(ctx context.Context, skillID uuid.UUID) ([]LearningResource, error)
	GetByID(ctx context.Context, id uuid.UUID) (LearningResource, bool, error)
	UpsertByTitle(ctx context.Context, in LearningResourceUpsert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresLearningResourceRepository struct {
	db database.DB
}

func NewPostgresLearningResourceRepository(db database.DB) *PostgresLearningResourceRepository {
	return &PostgresLearningResourceRepository{db: db}
}

const learningResourceColumns = `lr.id, lr.title, lr.description, lr.resource_type, lr.url, lr.skill_id, s.name, lr.difficulty, lr.estimated_hours, lr.free`

func (r *PostgresLearningResourceRepository) List(ctx context.Context, search string) ([]LearningResource, error) {
	query := `SELECT ` + learningResourceColumns + ` FROM learning_resources lr JOIN skills s ON s.id = lr.skill_id`
	args := []any{}
	search = strings.TrimSpace(search)
	if search != "" {
		query += ` WHERE lr.title ILIKE $1 OR s.name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY lr.title ASC`

	return r.queryResources(ctx, query, args...)
}

func (r *PostgresLearningResourceRepository) ListBySkill(ctx context.Context, skillID uuid.UUID) ([]LearningResource, error) {
	query := `SELECT ` + learningResourceColumns + ` FROM learning_resources lr JOIN skills s ON s.id = lr.skill_id WHERE lr.skill_id = $1 ORDER BY lr.title ASC`
	return r.queryResources(ctx, query, skillID)
}

func (r *PostgresLearningResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (LearningResource, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+learningResourceColumns+` FROM learning_resources lr JOIN skills s ON s.id = lr.skill_id WHERE lr.id = $1`,
		id,
	)
	var it LearningResource
	if err := row.Scan(&it.ID, &it.Title, &it.Description, &it.ResourceType, &it.URL, &it.SkillID, &it.SkillName, &it.Difficulty, &it.EstimatedHours, &it.Free); err != nil {
		if isNoRows(err) {
			return LearningResource{}, false, nil
		}
		return LearningResource{}, false, err
	}
	return it, true, nil
}

func (r *PostgresLearningResourceRepository) UpsertByTitle(ctx context.Context, in LearningResourceUpsert) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO learning_resources (id, title, description, resource_type, url, skill_id, difficulty, estimated_hours, free)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (title) DO UPDATE SET
			description = EXCLUDED.description,
			resource_type = EXCLUDED.resource_type,
			url = EXCLUDED.url,
			skill_id = EXCLUDED.skill_id,
			difficulty = EXCLUDED.difficulty,
			estimated_hours = EXCLUDED.estimated_hours,
			free = EXCLUDED.free`,
		uuid.New(),
		strings.TrimSpace(in.Title),
		in.Description,
		in.ResourceType,
		in.URL,
		in.SkillID,
		in.Difficulty,
		in.EstimatedHours,
		in.Free,
	)
	return err
}

func (r *PostgresLearningResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM learning_resources WHERE id = $1`, id)
	return err
}

func (r *PostgresLearningResourceRepository) queryResources(ctx context.Context, query string, args ...any) ([]LearningResource, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LearningResource, 0)
	for rows.Next() {
		var it LearningResource
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.ResourceType, &it.URL, &it.SkillID, &it.SkillName, &it.Difficulty, &it.EstimatedHours, &it.Free); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ LearningResourceRepository = (*PostgresLearningResourceRepository)(nil)
