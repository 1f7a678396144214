package handler

import (
	"strconv"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarketHandler struct {
	uc usecase.MarketUsecase
}

func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

func (h *MarketHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/market")
	grp.Get("/jobs", h.Jobs)
	grp.Get("/trends", h.Trends)
	grp.Get("/skill-demand", h.SkillDemand)
}

func (h *MarketHandler) Jobs(c fiber.Ctx) error {
	maxResults := 0
	if raw := c.Query("max_results"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		maxResults = v
	}

	report, err := h.uc.JobMarketData(c.Context(), c.Query("title"), c.Query("location"), maxResults)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *MarketHandler) Trends(c fiber.Ctx) error {
	report, err := h.uc.MarketTrends(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *MarketHandler) SkillDemand(c fiber.Ctx) error {
	report, err := h.uc.SkillDemand(c.Context(), c.Query("skill"))
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}
