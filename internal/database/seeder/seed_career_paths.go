package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type CareerPathsSeeder struct{}

func (CareerPathsSeeder) Name() string { return "career_paths" }

func (CareerPathsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_paths", "id", "title", "description", "future_growth", "required_experience"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_path_skills", "id", "career_path_id", "skill_id", "proficiency_level", "is_core"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	paths := []struct {
		Title       string
		Description string
	}{
		{Title: "Full Stack Developer", Description: "Frontend and backend development"},
		{Title: "Backend Developer", Description: "Server-side application development"},
		{Title: "Data Scientist", Description: "Data analysis and machine learning"},
		{Title: "Machine Learning Engineer", Description: "Production ML systems"},
	}

	for _, p := range paths {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO career_paths (id, title, description, future_growth, required_experience)
			 VALUES (gen_random_uuid(), $1, $2, 20, '1-3 years')
			 ON CONFLICT (title) DO NOTHING`,
			p.Title,
			p.Description,
		)
		if err != nil {
			return err
		}
	}

	links := []struct {
		Path   string
		Skill  string
		Level  int
		IsCore bool
	}{
		{Path: "Full Stack Developer", Skill: "JavaScript", Level: 4, IsCore: true},
		{Path: "Full Stack Developer", Skill: "React", Level: 4, IsCore: true},
		{Path: "Full Stack Developer", Skill: "SQL", Level: 3, IsCore: false},
		{Path: "Backend Developer", Skill: "Python", Level: 4, IsCore: true},
		{Path: "Backend Developer", Skill: "Django", Level: 4, IsCore: true},
		{Path: "Backend Developer", Skill: "SQL", Level: 4, IsCore: true},
		{Path: "Data Scientist", Skill: "Python", Level: 4, IsCore: true},
		{Path: "Data Scientist", Skill: "Machine Learning", Level: 4, IsCore: true},
		{Path: "Data Scientist", Skill: "SQL", Level: 3, IsCore: false},
		{Path: "Machine Learning Engineer", Skill: "Python", Level: 5, IsCore: true},
		{Path: "Machine Learning Engineer", Skill: "Machine Learning", Level: 5, IsCore: true},
		{Path: "Machine Learning Engineer", Skill: "AWS", Level: 3, IsCore: false},
	}

	for _, l := range links {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO career_path_skills (id, career_path_id, skill_id, proficiency_level, is_core)
			 SELECT gen_random_uuid(), p.id, s.id, $3, $4
			 FROM career_paths p, skills s
			 WHERE p.title = $1 AND s.name = $2
			 ON CONFLICT (career_path_id, skill_id) DO NOTHING`,
			l.Path,
			l.Skill,
			l.Level,
			l.IsCore,
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
