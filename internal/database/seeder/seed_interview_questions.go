package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type InterviewQuestionsSeeder struct{}

func (InterviewQuestionsSeeder) Name() string { return "interview_questions" }

func (InterviewQuestionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "interview_questions", "id", "career_path_id", "question", "question_type", "sample_answer", "difficulty"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Path     string
		Question string
	}{
		{Path: "Full Stack Developer", Question: "Explain the difference between frontend and backend."},
		{Path: "Backend Developer", Question: "What is REST API and why is it used?"},
		{Path: "Data Scientist", Question: "What is overfitting in machine learning?"},
		{Path: "Machine Learning Engineer", Question: "Explain bias vs variance tradeoff."},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO interview_questions (id, career_path_id, question, question_type, sample_answer, difficulty)
			 SELECT gen_random_uuid(), p.id, $2, 'technical', 'Sample answer for interview preparation.', 'beginner'
			 FROM career_paths p
			 WHERE p.title = $1
			   AND NOT EXISTS (SELECT 1 FROM interview_questions q WHERE q.question = $2)`,
			it.Path,
			it.Question,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
