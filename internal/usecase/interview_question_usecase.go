package usecase

import (
	"context"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const practiceSessionSize = 10

type PracticeQuestionItem struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Difficulty   string    `json:"difficulty"`
	QuestionType string    `json:"question_type"`
	CareerPath   string    `json:"career_path"`
}

type PracticeSession struct {
	TotalQuestions int                    `json:"total_questions"`
	Questions      []PracticeQuestionItem `json:"questions"`
}

type InterviewQuestionUsecase interface {
	ListQuestions(ctx context.Context, careerPathID uuid.UUID) ([]InterviewQuestionItem, error)
	PracticeSession(ctx context.Context) (PracticeSession, error)
}

type InterviewQuestionUC struct {
	repo repository.InterviewQuestionRepository
}

func NewInterviewQuestionUsecase(repo repository.InterviewQuestionRepository) *InterviewQuestionUC {
	return &InterviewQuestionUC{repo: repo}
}

func (u *InterviewQuestionUC) ListQuestions(ctx context.Context, careerPathID uuid.UUID) ([]InterviewQuestionItem, error) {
	if careerPathID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.ListByCareerPath(ctx, careerPathID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]InterviewQuestionItem, 0, len(items))
	for _, it := range items {
		out = append(out, interviewQuestionItem(it))
	}
	return out, nil
}

// PracticeSession draws a random set of questions across all career paths.
func (u *InterviewQuestionUC) PracticeSession(ctx context.Context) (PracticeSession, error) {
	items, err := u.repo.ListRandom(ctx, practiceSessionSize)
	if err != nil {
		return PracticeSession{}, ErrInternal
	}

	questions := make([]PracticeQuestionItem, 0, len(items))
	for _, it := range items {
		questions = append(questions, PracticeQuestionItem{
			ID:           it.ID,
			Question:     it.Question,
			Difficulty:   it.Difficulty,
			QuestionType: it.QuestionType,
			CareerPath:   it.CareerPathTitle,
		})
	}
	return PracticeSession{TotalQuestions: len(questions), Questions: questions}, nil
}

var _ InterviewQuestionUsecase = (*InterviewQuestionUC)(nil)
