package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/recommendations")
	grp.Get("/", h.List)
	grp.Post("/generate", h.Generate)

	r.Get("/dashboard", h.Dashboard)
}

func (h *RecommendationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListRecommendations(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) Generate(c fiber.Ctx) error {
	items, err := h.uc.GenerateRecommendations(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusCreated, "Recommendations generated successfully", items)
}

func (h *RecommendationHandler) Dashboard(c fiber.Ctx) error {
	summary, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
