package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserProgressHandler struct {
	uc usecase.UserProgressUsecase
}

type upsertProgressRequest struct {
	ResourceID         uuid.UUID `json:"resource_id"`
	ProgressPercentage int       `json:"progress_percentage"`
	Completed          bool      `json:"completed"`
}

func NewUserProgressHandler(uc usecase.UserProgressUsecase) *UserProgressHandler {
	return &UserProgressHandler{uc: uc}
}

func (h *UserProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/user-progress")
	grp.Get("/", h.List)
	grp.Post("/", h.Upsert)
}

func (h *UserProgressHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProgress(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *UserProgressHandler) Upsert(c fiber.Ctx) error {
	var req upsertProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	saved, err := h.uc.UpsertProgress(c.Context(), usecase.UpsertProgressInput{
		ResourceID:         req.ResourceID,
		ProgressPercentage: req.ProgressPercentage,
		Completed:          req.Completed,
	})
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved)
}
