package app

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/provider"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"
)

// Container owns every long-lived dependency and the wiring between
// layers: config -> db/cache -> providers -> repositories -> usecases
// -> handlers.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Handlers Handlers
}

// Handlers is the full HTTP surface the container produces.
type Handlers struct {
	Health             *handler.HealthHandler
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
	WS                 *ws.Handler
	AuthMW             *middleware.AuthMiddleware
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	adzuna := provider.NewAdzunaClient(cfg.Providers.AdzunaAppID, cfg.Providers.AdzunaAppKey, redisCache, logger)
	coursera := provider.NewCourseraClient(redisCache, logger)
	youtube := provider.NewYouTubeClient(cfg.Providers.YouTubeAPIKey, redisCache, logger)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	careerRepo := repository.NewPostgresCareerPathRepository(db)
	linkRepo := repository.NewPostgresCareerPathSkillRepository(db)
	resourceRepo := repository.NewPostgresLearningResourceRepository(db)
	questionRepo := repository.NewPostgresInterviewQuestionRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	progressRepo := repository.NewPostgresUserProgressRepository(db)
	recommendationRepo := repository.NewPostgresRecommendationRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	analysisUC := usecase.NewAnalysisUsecase(adzuna, coursera, youtube, logger)
	populateUC := usecase.NewPopulateUsecase(adzuna, coursera, analysisUC,
		careerRepo, skillRepo, linkRepo, resourceRepo, notifier, redisCache, logger)
	marketUC := usecase.NewMarketUsecase(adzuna, analysisUC, logger)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	careerUC := usecase.NewCareerPathUsecase(careerRepo, linkRepo, questionRepo)
	resourceUC := usecase.NewLearningResourceUsecase(resourceRepo)
	questionUC := usecase.NewInterviewQuestionUsecase(questionRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userRepo, userSkillRepo, skillRepo, recommendationRepo, careerRepo)
	progressUC := usecase.NewUserProgressUsecase(userRepo, progressRepo, resourceRepo)
	recommendationUC := usecase.NewRecommendationUsecase(userRepo, recommendationRepo, userSkillRepo, progressRepo, careerRepo, linkRepo)

	handlers := Handlers{
		Health:             handler.NewHealthHandler(db, redisCache),
		Auth:               handler.NewAuthHandler(authUC),
		Skills:             handler.NewSkillHandler(skillUC),
		CareerPaths:        handler.NewCareerPathHandler(careerUC),
		LearningResources:  handler.NewLearningResourceHandler(resourceUC),
		InterviewQuestions: handler.NewInterviewQuestionHandler(questionUC),
		UserSkills:         handler.NewUserSkillHandler(userSkillUC),
		UserProgress:       handler.NewUserProgressHandler(progressUC),
		Recommendations:    handler.NewRecommendationHandler(recommendationUC),
		Analysis:           handler.NewAnalysisHandler(analysisUC),
		Populate:           handler.NewPopulateHandler(populateUC),
		Market:             handler.NewMarketHandler(marketUC),
		WS:                 ws.NewHandler(hub, logger),
		AuthMW:             middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Handlers: handlers,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
