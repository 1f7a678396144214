package repository

import (
	"context"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type CareerPathSkill struct {
	CareerPathID     uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	IsCore           bool
}

type CareerPathSkillRepository interface {
	Upsert(ctx context.Context, careerPathID, skillID uuid.UUID, proficiencyLevel int, isCore bool) error
	ListByCareerPath(ctx context.Context, careerPathID uuid.UUID) ([]CareerPathSkill, error)
}

type PostgresCareerPathSkillRepository struct {
	db database.DB
}

func NewPostgresCareerPathSkillRepository(db database.DB) *PostgresCareerPathSkillRepository {
	return &PostgresCareerPathSkillRepository{db: db}
}

// Upsert is keyed by (career_path_id, skill_id); re-running with the same
// values leaves a single link row.
func (r *PostgresCareerPathSkillRepository) Upsert(ctx context.Context, careerPathID, skillID uuid.UUID, proficiencyLevel int, isCore bool) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO career_path_skills (id, career_path_id, skill_id, proficiency_level, is_core)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (career_path_id, skill_id) DO UPDATE SET
			proficiency_level = EXCLUDED.proficiency_level,
			is_core = EXCLUDED.is_core`,
		uuid.New(), careerPathID, skillID, proficiencyLevel, isCore,
	)
	return err
}

func (r *PostgresCareerPathSkillRepository) ListByCareerPath(ctx context.Context, careerPathID uuid.UUID) ([]CareerPathSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cps.career_path_id, cps.skill_id, s.name, cps.proficiency_level, cps.is_core
		 FROM career_path_skills cps
		 JOIN skills s ON s.id = cps.skill_id
		 WHERE cps.career_path_id = $1
		 ORDER BY cps.proficiency_level DESC, s.name ASC`,
		careerPathID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerPathSkill, 0)
	for rows.Next() {
		var it CareerPathSkill
		if err := rows.Scan(&it.CareerPathID, &it.SkillID, &it.SkillName, &it.ProficiencyLevel, &it.IsCore); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ CareerPathSkillRepository = (*PostgresCareerPathSkillRepository)(nil)
