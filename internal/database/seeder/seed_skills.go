package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "description", "created_at"); err != nil {
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
		Name        string
		Category    string
		Description string
	}{
		{Name: "Python", Category: "programming", Description: "General purpose programming language"},
		{Name: "JavaScript", Category: "programming", Description: "Web development language"},
		{Name: "React", Category: "web_dev", Description: "Frontend library"},
		{Name: "Django", Category: "web_dev", Description: "Backend framework"},
		{Name: "Machine Learning", Category: "ai_ml", Description: "ML concepts and algorithms"},
		{Name: "SQL", Category: "databases", Description: "Database querying language"},
		{Name: "AWS", Category: "cloud_devops", Description: "Cloud computing platform"},
		{Name: "Git", Category: "tools", Description: "Version control system"},
		{Name: "Communication", Category: "soft_skills", Description: "Professional communication skills"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, description)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
			it.Description,
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
