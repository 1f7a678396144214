package app

import (
	"fmt"
	"log"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, mounts middleware and routes, and
// starts the websocket hub. The returned cleanup closes the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, container)

	go container.Hub.Run()

	return &App{Fiber: f, Container: container}, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, container *Container) {
	if app == nil || container == nil {
		return
	}

	h := container.Handlers
	registry := &routes.Registry{
		Health: h.Health,
		WS:     h.WS,
		V1: v1.Handlers{
			Auth:               h.Auth,
			Skills:             h.Skills,
			CareerPaths:        h.CareerPaths,
			LearningResources:  h.LearningResources,
			InterviewQuestions: h.InterviewQuestions,
			UserSkills:         h.UserSkills,
			UserProgress:       h.UserProgress,
			Recommendations:    h.Recommendations,
			Analysis:           h.Analysis,
			Populate:           h.Populate,
			Market:             h.Market,
			AuthMW:             h.AuthMW,
		},
	}
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
