package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type LearningResourcesSeeder struct{}

func (LearningResourcesSeeder) Name() string { return "learning_resources" }

func (LearningResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "learning_resources", "id", "title", "description", "resource_type", "url", "skill_id", "difficulty", "estimated_hours", "free"); err != nil {
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
		Title       string
		Description string
		URL         string
		Skill       string
	}{
		{Title: "Python Basics", Description: "Learn Python from scratch", URL: "https://www.coursera.org/learn/python", Skill: "Python"},
		{Title: "React Basics", Description: "Introduction to React", URL: "https://www.coursera.org/learn/front-end-react", Skill: "React"},
		{Title: "Django Fundamentals", Description: "Backend development with Django", URL: "https://www.coursera.org/learn/django-for-everybody", Skill: "Django"},
		{Title: "Machine Learning Basics", Description: "Introduction to Machine Learning", URL: "https://www.coursera.org/learn/machine-learning", Skill: "Machine Learning"},
		{Title: "Data Science Basics", Description: "Introduction to data science concepts", URL: "https://www.coursera.org/learn/what-is-datascience", Skill: "Machine Learning"},
		{Title: "Git & GitHub Essentials", Description: "Version control with Git and GitHub", URL: "https://www.udemy.com/course/git-and-github-crash-course/", Skill: "Git"},
		{Title: "SQL for Beginners", Description: "Learn SQL for data analysis", URL: "https://www.coursera.org/learn/sql-for-data-science", Skill: "SQL"},
		{Title: "AWS Cloud Practitioner Essentials", Description: "Introduction to AWS cloud services", URL: "https://explore.skillbuilder.aws/learn/course/134/aws-cloud-practitioner-essentials", Skill: "AWS"},
		{Title: "Communication Skills", Description: "Improve professional communication skills", URL: "https://www.coursera.org/learn/wharton-communication-skills", Skill: "Communication"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO learning_resources (id, title, description, resource_type, url, skill_id, difficulty, estimated_hours, free)
			 SELECT gen_random_uuid(), $1, $2, 'course', $3, s.id, 'beginner', 10, true
			 FROM skills s WHERE s.name = $4
			 ON CONFLICT (title) DO NOTHING`,
			it.Title,
			it.Description,
			it.URL,
			it.Skill,
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
