package usecase

import (
	"context"
	"strings"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type CareerPathItem struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	AverageSalary      *float64  `json:"average_salary"`
	FutureGrowth       float64   `json:"future_growth"`
	RequiredExperience string    `json:"required_experience"`
}

type CareerPathSkillItem struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	IsCore           bool      `json:"is_core"`
}

type InterviewQuestionItem struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	QuestionType string    `json:"question_type"`
	SampleAnswer string    `json:"sample_answer"`
	Tips         string    `json:"tips"`
	Difficulty   string    `json:"difficulty"`
}

type CareerPathDetail struct {
	CareerPathItem
	RequiredSkills     []CareerPathSkillItem   `json:"required_skills"`
	InterviewQuestions []InterviewQuestionItem `json:"interview_questions"`
}

type CareerPathInput struct {
	Title              string
	Description        string
	AverageSalary      float64
	FutureGrowth       float64
	RequiredExperience string
}

type CareerPathUsecase interface {
	ListCareerPaths(ctx context.Context) ([]CareerPathItem, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (CareerPathDetail, error)
	CreateCareerPath(ctx context.Context, in CareerPathInput) (CareerPathItem, error)
	UpdateCareerPath(ctx context.Context, id uuid.UUID, in CareerPathInput) (CareerPathItem, error)
	DeleteCareerPath(ctx context.Context, id uuid.UUID) error
}

type CareerPathUC struct {
	careers   repository.CareerPathRepository
	links     repository.CareerPathSkillRepository
	questions repository.InterviewQuestionRepository
}

func NewCareerPathUsecase(
	careers repository.CareerPathRepository,
	links repository.CareerPathSkillRepository,
	questions repository.InterviewQuestionRepository,
) *CareerPathUC {
	return &CareerPathUC{careers: careers, links: links, questions: questions}
}

func (u *CareerPathUC) ListCareerPaths(ctx context.Context) ([]CareerPathItem, error) {
	items, err := u.careers.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]CareerPathItem, 0, len(items))
	for _, it := range items {
		out = append(out, careerPathItem(it))
	}
	return out, nil
}

// GetCareerPath returns the path with its linked skills and interview
// questions, mirroring the detail view of the read API.
func (u *CareerPathUC) GetCareerPath(ctx context.Context, id uuid.UUID) (CareerPathDetail, error) {
	if id == uuid.Nil {
		return CareerPathDetail{}, ErrInvalidInput
	}
	path, ok, err := u.careers.GetByID(ctx, id)
	if err != nil {
		return CareerPathDetail{}, ErrInternal
	}
	if !ok {
		return CareerPathDetail{}, ErrNotFound
	}

	links, err := u.links.ListByCareerPath(ctx, id)
	if err != nil {
		return CareerPathDetail{}, ErrInternal
	}
	questions, err := u.questions.ListByCareerPath(ctx, id)
	if err != nil {
		return CareerPathDetail{}, ErrInternal
	}

	detail := CareerPathDetail{
		CareerPathItem:     careerPathItem(path),
		RequiredSkills:     make([]CareerPathSkillItem, 0, len(links)),
		InterviewQuestions: make([]InterviewQuestionItem, 0, len(questions)),
	}
	for _, l := range links {
		detail.RequiredSkills = append(detail.RequiredSkills, CareerPathSkillItem{
			SkillID:          l.SkillID,
			SkillName:        l.SkillName,
			ProficiencyLevel: l.ProficiencyLevel,
			IsCore:           l.IsCore,
		})
	}
	for _, q := range questions {
		detail.InterviewQuestions = append(detail.InterviewQuestions, interviewQuestionItem(q))
	}
	return detail, nil
}

func (u *CareerPathUC) CreateCareerPath(ctx context.Context, in CareerPathInput) (CareerPathItem, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return CareerPathItem{}, ErrInvalidInput
	}

	created, err := u.careers.Create(ctx, repository.CareerPathUpsert{
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		AverageSalary:      in.AverageSalary,
		FutureGrowth:       in.FutureGrowth,
		RequiredExperience: strings.TrimSpace(in.RequiredExperience),
	})
	if err != nil {
		return CareerPathItem{}, ErrInternal
	}
	return careerPathItem(created), nil
}

func (u *CareerPathUC) UpdateCareerPath(ctx context.Context, id uuid.UUID, in CareerPathInput) (CareerPathItem, error) {
	if id == uuid.Nil {
		return CareerPathItem{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return CareerPathItem{}, ErrInvalidInput
	}

	current, ok, err := u.careers.GetByID(ctx, id)
	if err != nil {
		return CareerPathItem{}, ErrInternal
	}
	if !ok {
		return CareerPathItem{}, ErrNotFound
	}

	salary := in.AverageSalary
	current.Title = title
	current.Description = strings.TrimSpace(in.Description)
	current.AverageSalary = &salary
	current.FutureGrowth = in.FutureGrowth
	current.RequiredExperience = strings.TrimSpace(in.RequiredExperience)
	if err := u.careers.Update(ctx, current); err != nil {
		return CareerPathItem{}, ErrInternal
	}
	return careerPathItem(current), nil
}

func (u *CareerPathUC) DeleteCareerPath(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.careers.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}

func careerPathItem(p repository.CareerPath) CareerPathItem {
	return CareerPathItem{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		AverageSalary:      p.AverageSalary,
		FutureGrowth:       p.FutureGrowth,
		RequiredExperience: p.RequiredExperience,
	}
}

func interviewQuestionItem(q repository.InterviewQuestion) InterviewQuestionItem {
	return InterviewQuestionItem{
		ID:           q.ID,
		Question:     q.Question,
		QuestionType: q.QuestionType,
		SampleAnswer: q.SampleAnswer,
		Tips:         q.Tips,
		Difficulty:   q.Difficulty,
	}
}

var _ CareerPathUsecase = (*CareerPathUC)(nil)
