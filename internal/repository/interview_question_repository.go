package repository

import (
	"context"
	"strings"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	ID           uuid.UUID
	CareerPathID uuid.UUID
	Question     string
	QuestionType string
	SampleAnswer string
	Tips         string
	Difficulty   string
}

type PracticeQuestion struct {
	ID              uuid.UUID
	Question        string
	QuestionType    string
	Difficulty      string
	CareerPathTitle string
}

type InterviewQuestionRepository interface {
	ListByCareerPath(ctx context.Context, careerPathID uuid.UUID) ([]InterviewQuestion, error)
	ListRandom(ctx context.Context, limit int) ([]PracticeQuestion, error)
	Create(ctx context.Context, q InterviewQuestion) (InterviewQuestion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresInterviewQuestionRepository struct {
	db database.DB
}

func NewPostgresInterviewQuestionRepository(db database.DB) *PostgresInterviewQuestionRepository {
	return &PostgresInterviewQuestionRepository{db: db}
}

func (r *PostgresInterviewQuestionRepository) ListByCareerPath(ctx context.Context, careerPathID uuid.UUID) ([]InterviewQuestion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, career_path_id, question, question_type, sample_answer, tips, difficulty
		 FROM interview_questions WHERE career_path_id = $1 ORDER BY question_type ASC, question ASC`,
		careerPathID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InterviewQuestion, 0)
	for rows.Next() {
		var q InterviewQuestion
		if err := rows.Scan(&q.ID, &q.CareerPathID, &q.Question, &q.QuestionType, &q.SampleAnswer, &q.Tips, &q.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInterviewQuestionRepository) ListRandom(ctx context.Context, limit int) ([]PracticeQuestion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT q.id, q.question, q.question_type, q.difficulty, p.title
		 FROM interview_questions q
		 JOIN career_paths p ON p.id = q.career_path_id
		 ORDER BY random() LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PracticeQuestion, 0, limit)
	for rows.Next() {
		var q PracticeQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.QuestionType, &q.Difficulty, &q.CareerPathTitle); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInterviewQuestionRepository) Create(ctx context.Context, q InterviewQuestion) (InterviewQuestion, error) {
	q.ID = uuid.New()
	q.Question = strings.TrimSpace(q.Question)
	_, err := r.db.Exec(ctx,
		`INSERT INTO interview_questions (id, career_path_id, question, question_type, sample_answer, tips, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, q.CareerPathID, q.Question, q.QuestionType, q.SampleAnswer, q.Tips, q.Difficulty,
	)
	if err != nil {
		return InterviewQuestion{}, err
	}
	return q, nil
}

func (r *PostgresInterviewQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM interview_questions WHERE id = $1`, id)
	return err
}

var _ InterviewQuestionRepository = (*PostgresInterviewQuestionRepository)(nil)
