package repository

import (
	"context"
	"strings"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type CareerPath struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	AverageSalary      *float64
	FutureGrowth       float64
	RequiredExperience string
}

type CareerPathUpsert struct {
	Title              string
	Description        string
	AverageSalary      float64
	FutureGrowth       float64
	RequiredExperience string
}

type CareerPathRepository interface {
	List(ctx context.Context) ([]CareerPath, error)
	GetByID(ctx context.Context, id uuid.UUID) (CareerPath, bool, error)
	GetByTitle(ctx context.Context, title string) (CareerPath, bool, error)
	UpsertByTitle(ctx context.Context, in CareerPathUpsert) (CareerPath, error)
	Create(ctx context.Context, in CareerPathUpsert) (CareerPath, error)
	Update(ctx context.Context, p CareerPath) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCareerPathRepository struct {
	db database.DB
}

func NewPostgresCareerPathRepository(db database.DB) *PostgresCareerPathRepository {
	return &PostgresCareerPathRepository{db: db}
}

const careerPathColumns = `id, title, description, average_salary, future_growth, required_experience`

func (r *PostgresCareerPathRepository) List(ctx context.Context) ([]CareerPath, error) {
	rows, err := r.db.Query(ctx, `SELECT `+careerPathColumns+` FROM career_paths ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerPath, 0)
	for rows.Next() {
		var p CareerPath
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.AverageSalary, &p.FutureGrowth, &p.RequiredExperience); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerPathRepository) GetByID(ctx context.Context, id uuid.UUID) (CareerPath, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+careerPathColumns+` FROM career_paths WHERE id = $1`, id)
	return scanCareerPath(row)
}

func (r *PostgresCareerPathRepository) GetByTitle(ctx context.Context, title string) (CareerPath, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+careerPathColumns+` FROM career_paths WHERE title = $1`, strings.TrimSpace(title))
	return scanCareerPath(row)
}

// UpsertByTitle creates the career path with the full seed values, or, when a
// row with the title already exists, refreshes average_salary only and leaves
// the other fields untouched.
func (r *PostgresCareerPathRepository) UpsertByTitle(ctx context.Context, in CareerPathUpsert) (CareerPath, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO career_paths (id, title, description, average_salary, future_growth, required_experience)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (title) DO UPDATE SET
			average_salary = EXCLUDED.average_salary,
			updated_at = now()
		 RETURNING `+careerPathColumns,
		uuid.New(),
		strings.TrimSpace(in.Title),
		in.Description,
		in.AverageSalary,
		in.FutureGrowth,
		in.RequiredExperience,
	)

	p, _, err := scanCareerPath(row)
	return p, err
}

func (r *PostgresCareerPathRepository) Create(ctx context.Context, in CareerPathUpsert) (CareerPath, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO career_paths (id, title, description, average_salary, future_growth, required_experience)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, strings.TrimSpace(in.Title), in.Description, in.AverageSalary, in.FutureGrowth, in.RequiredExperience,
	)
	if err != nil {
		return CareerPath{}, err
	}
	avg := in.AverageSalary
	return CareerPath{
		ID:                 id,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		AverageSalary:      &avg,
		FutureGrowth:       in.FutureGrowth,
		RequiredExperience: in.RequiredExperience,
	}, nil
}

func (r *PostgresCareerPathRepository) Update(ctx context.Context, p CareerPath) error {
	_, err := r.db.Exec(ctx,
		`UPDATE career_paths SET title = $2, description = $3, average_salary = $4, future_growth = $5, required_experience = $6, updated_at = now()
		 WHERE id = $1`,
		p.ID, strings.TrimSpace(p.Title), p.Description, p.AverageSalary, p.FutureGrowth, p.RequiredExperience,
	)
	return err
}

func (r *PostgresCareerPathRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM career_paths WHERE id = $1`, id)
	return err
}

func scanCareerPath(row database.Row) (CareerPath, bool, error) {
	var p CareerPath
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.AverageSalary, &p.FutureGrowth, &p.RequiredExperience); err != nil {
		if isNoRows(err) {
			return CareerPath{}, false, nil
		}
		return CareerPath{}, false, err
	}
	return p, true, nil
}

var _ CareerPathRepository = (*PostgresCareerPathRepository)(nil)
