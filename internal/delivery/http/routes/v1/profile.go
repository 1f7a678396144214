package v1

import (
	"github.com/gofiber/fiber/v3"
)

// registerProfile mounts the demo-profile surface: skill inventory,
// learning progress, and stored recommendations.
func registerProfile(r fiber.Router, h Handlers) {
	if h.UserSkills != nil {
		h.UserSkills.RegisterRoutes(r)
	}
	if h.UserProgress != nil {
		h.UserProgress.RegisterRoutes(r)
	}
	if h.Recommendations != nil {
		h.Recommendations.RegisterRoutes(r)
	}
}
