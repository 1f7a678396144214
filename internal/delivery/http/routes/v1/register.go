package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API surface mounts.
type Handlers struct {
	Auth               *handler.AuthHandler
	Skills             *handler.SkillHandler
	CareerPaths        *handler.CareerPathHandler
	LearningResources  *handler.LearningResourceHandler
	InterviewQuestions *handler.InterviewQuestionHandler
	UserSkills         *handler.UserSkillHandler
	UserProgress       *handler.UserProgressHandler
	Recommendations    *handler.RecommendationHandler
	Analysis           *handler.AnalysisHandler
	Populate           *handler.PopulateHandler
	Market             *handler.MarketHandler
	AuthMW             *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	registerCatalog(r, h)
	registerProfile(r, h)
	registerCareers(r, h)
}

// registerCatalog mounts the open reference-data surface.
func registerCatalog(r fiber.Router, h Handlers) {
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.CareerPaths != nil {
		h.CareerPaths.RegisterRoutes(r)
	}
	if h.LearningResources != nil {
		h.LearningResources.RegisterRoutes(r)
	}
	if h.InterviewQuestions != nil {
		h.InterviewQuestions.RegisterRoutes(r)
	}
}
