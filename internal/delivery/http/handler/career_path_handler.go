package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CareerPathHandler struct {
	uc usecase.CareerPathUsecase
}

type careerPathRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	AverageSalary      float64 `json:"average_salary"`
	FutureGrowth       float64 `json:"future_growth"`
	RequiredExperience string  `json:"required_experience"`
}

func NewCareerPathHandler(uc usecase.CareerPathUsecase) *CareerPathHandler {
	return &CareerPathHandler{uc: uc}
}

func (h *CareerPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-paths")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *CareerPathHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCareerPaths(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

// Get returns the detail view: the path plus its required skills and
// interview questions.
func (h *CareerPathHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.GetCareerPath(c.Context(), id)
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}

func (h *CareerPathHandler) Create(c fiber.Ctx) error {
	var req careerPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateCareerPath(c.Context(), careerPathInput(req))
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Career path created successfully", created)
}

func (h *CareerPathHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req careerPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateCareerPath(c.Context(), id, careerPathInput(req))
	if err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CareerPathHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteCareerPath(c.Context(), id); err != nil {
		return mapCrudError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func careerPathInput(req careerPathRequest) usecase.CareerPathInput {
	return usecase.CareerPathInput{
		Title:              req.Title,
		Description:        req.Description,
		AverageSalary:      req.AverageSalary,
		FutureGrowth:       req.FutureGrowth,
		RequiredExperience: req.RequiredExperience,
	}
}
