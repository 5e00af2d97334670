package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"
)

type ApplicationHandler struct {
	uc   *usecase.ApplicationUsecase
	auth *middleware.AuthMiddleware
}

type applyRequest struct {
	JobID     string `json:"job_id"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company_name"`
	ApplyLink string `json:"apply_link"`
	Source    string `json:"source"`
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, auth *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, auth: auth}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Apply, h.auth.Middleware())
	r.Get("/applications", h.List, h.auth.Middleware())
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, created, err := h.uc.Apply(c.Context(), userID, usecase.ApplyInput{
		JobID:     req.JobID,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		ApplyLink: req.ApplyLink,
		Source:    req.Source,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrMissingJobFields) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return err
	}

	status := fiber.StatusCreated
	if !created {
		status = fiber.StatusOK
	}
	return response.Success(c, status, response.MessageOK, app)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}
