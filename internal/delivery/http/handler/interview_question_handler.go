package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InterviewQuestionHandler struct {
	uc usecase.InterviewQuestionUsecase
}

func NewInterviewQuestionHandler(uc usecase.InterviewQuestionUsecase) *InterviewQuestionHandler {
	return &InterviewQuestionHandler{uc: uc}
}

func (h *InterviewQuestionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/interview-questions")
	grp.Get("/", h.List)
	grp.Get("/practice-session", h.PracticeSession)
}

func (h *InterviewQuestionHandler) List(c fiber.Ctx) error {
	careerPathID, err := uuid.Parse(c.Query("career_path_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	items, err := h.uc.ListQuestions(c.Context(), careerPathID)
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *InterviewQuestionHandler) PracticeSession(c fiber.Ctx) error {
	session, err := h.uc.PracticeSession(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, session)
}
