package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		CareerPathsSeeder{},
		LearningResourcesSeeder{},
		InterviewQuestionsSeeder{},
	}
}
