package handler

import (
	"net/url"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/careers/analysis/:title", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	title := c.Params("title")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}

	report, err := h.uc.BuildCareerAnalysis(c.Context(), title)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}
