package repository

import (
	"context"
	"strings"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
}

type SkillRepository interface {
	List(ctx context.Context, search string) ([]Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, bool, error)
	GetByName(ctx context.Context, name string) (Skill, bool, error)
	GetOrCreate(ctx context.Context, name, category, description string) (Skill, error)
	Create(ctx context.Context, name, category, description string) (Skill, error)
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context, search string) ([]Skill, error) {
	query := `SELECT id, name, category, description FROM skills`
	args := []any{}
	search = strings.TrimSpace(search)
	if search != "" {
		query += ` WHERE name ILIKE $1 OR category ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (Skill, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, category, description FROM skills WHERE id = $1`, id)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) GetByName(ctx context.Context, name string) (Skill, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, category, description FROM skills WHERE name = $1`, strings.TrimSpace(name))
	return scanSkill(row)
}

func (r *PostgresSkillRepository) GetOrCreate(ctx context.Context, name, category, description string) (Skill, error) {
	name = strings.TrimSpace(name)

	_, _ = r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category, description) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, category, description,
	)

	s, found, err := r.GetByName(ctx, name)
	if err != nil {
		return Skill{}, err
	}
	if !found {
		return r.Create(ctx, name, category, description)
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, name, category, description string) (Skill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category, description) VALUES ($1, $2, $3, $4)`,
		id, strings.TrimSpace(name), category, description,
	)
	if err != nil {
		return Skill{}, err
	}
	return Skill{ID: id, Name: strings.TrimSpace(name), Category: category, Description: description}, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s Skill) error {
	_, err := r.db.Exec(ctx,
		`UPDATE skills SET name = $2, category = $3, description = $4 WHERE id = $1`,
		s.ID, strings.TrimSpace(s.Name), s.Category, s.Description,
	)
	return err
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}

func scanSkill(row database.Row) (Skill, bool, error) {
	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description); err != nil {
		if isNoRows(err) {
			return Skill{}, false, nil
		}
		return Skill{}, false, err
	}
	return s, true, nil
}

var _ SkillRepository = (*PostgresSkillRepository)(nil)
