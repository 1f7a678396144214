package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	YearsExperience  float64
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error)
	Upsert(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, us.proficiency_level, us.years_of_experience
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.ProficiencyLevel, &us.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_skills WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresUserSkillRepository) SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us UserSkill) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_of_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
			proficiency_level = EXCLUDED.proficiency_level,
			years_of_experience = EXCLUDED.years_of_experience
		 RETURNING id`,
		uuid.New(), us.UserID, us.SkillID, us.ProficiencyLevel, us.YearsExperience,
	)
	if err := row.Scan(&us.ID); err != nil {
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`, userID, skillID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

var _ UserSkillRepository = (*PostgresUserSkillRepository)(nil)
