package handler

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache cachePinger
}

func NewHealthHandler(db database.DB, cache cachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	checks := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	healthy := true
	if h.db == nil {
		checks["database"] = "unavailable"
		healthy = false
	} else if err := h.db.Ping(c.Context()); err != nil {
		checks["database"] = "unavailable"
		healthy = false
	}

	// Cache failures are non-fatal: the provider layer degrades to
	// direct upstream calls.
	if h.cache == nil {
		checks["cache"] = "unavailable"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		checks["cache"] = "unavailable"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
