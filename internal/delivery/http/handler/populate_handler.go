package handler

import (
	"errors"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PopulateHandler struct {
	uc usecase.PopulateUsecase
}

type populateRequest struct {
	Title string `json:"title"`
}

func NewPopulateHandler(uc usecase.PopulateUsecase) *PopulateHandler {
	return &PopulateHandler{uc: uc}
}

func (h *PopulateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/careers/populate", h.Populate)
}

func (h *PopulateHandler) Populate(c fiber.Ctx) error {
	var req populateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	summary, err := h.uc.AutoPopulateCareer(c.Context(), req.Title)
	if err != nil {
		if errors.Is(err, usecase.ErrPopulateInProgress) {
			return response.Error(c, fiber.StatusConflict, response.MessageConflict, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError,
			map[string]any{"error": err.Error()})
	}
	return response.Success(c, fiber.StatusOK, "Career populated successfully", summary)
}
