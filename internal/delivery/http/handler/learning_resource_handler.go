package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type LearningResourceHandler struct {
	uc usecase.LearningResourceUsecase
}

func NewLearningResourceHandler(uc usecase.LearningResourceUsecase) *LearningResourceHandler {
	return &LearningResourceHandler{uc: uc}
}

func (h *LearningResourceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/learning-resources")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
}

func (h *LearningResourceHandler) List(c fiber.Ctx) error {
	var skillID uuid.UUID
	if raw := c.Query("skill_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		skillID = parsed
	}

	items, err := h.uc.ListLearningResources(c.Context(), c.Query("search"), skillID)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *LearningResourceHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	item, err := h.uc.GetLearningResource(c.Context(), id)
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}
