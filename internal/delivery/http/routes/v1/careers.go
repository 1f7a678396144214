package v1

import (
	"github.com/gofiber/fiber/v3"
)

// registerCareers mounts the live market surface. Analysis and market
// lookups hit upstream providers and require an authenticated caller;
// populate is open so the catalog can be refreshed by tooling.
func registerCareers(r fiber.Router, h Handlers) {
	if h.Populate != nil {
		h.Populate.RegisterRoutes(r)
	}

	if h.AuthMW == nil {
		return
	}
	protected := r.Group("", h.AuthMW.Middleware())
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(protected)
	}
	if h.Market != nil {
		h.Market.RegisterRoutes(protected)
	}
}
