package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type Recommendation struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CareerPathID    uuid.UUID
	CareerPathTitle string
	MatchPercentage float64
	SkillGaps       []string
	GeneratedAt     time.Time
}

type RecommendationRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Recommendation, error)
	Create(ctx context.Context, rec Recommendation) (Recommendation, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Recommendation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rec.id, rec.user_id, rec.career_path_id, cp.title, rec.match_percentage, rec.skill_gaps, rec.generated_at
		 FROM recommendations rec
		 JOIN career_paths cp ON cp.id = rec.career_path_id
		 WHERE rec.user_id = $1
		 ORDER BY rec.match_percentage DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Recommendation, 0)
	for rows.Next() {
		var rec Recommendation
		var gaps []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CareerPathID, &rec.CareerPathTitle, &rec.MatchPercentage, &gaps, &rec.GeneratedAt); err != nil {
			return nil, err
		}
		if len(gaps) > 0 {
			_ = json.Unmarshal(gaps, &rec.SkillGaps)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) Create(ctx context.Context, rec Recommendation) (Recommendation, error) {
	rec.ID = uuid.New()
	rec.GeneratedAt = time.Now().UTC()

	gaps, err := json.Marshal(rec.SkillGaps)
	if err != nil {
		return Recommendation{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO recommendations (id, user_id, career_path_id, match_percentage, skill_gaps, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.UserID, rec.CareerPathID, rec.MatchPercentage, gaps, rec.GeneratedAt,
	)
	if err != nil {
		return Recommendation{}, err
	}
	return rec, nil
}

var _ RecommendationRepository = (*PostgresRecommendationRepository)(nil)
