package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"
)

const maxResumeSize = 8 << 20

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/parse-resume", h.Parse)
}

func (h *ResumeHandler) Parse(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if fileHeader.Size > maxResumeSize {
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, nil)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxResumeSize))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}

	parsed, err := h.uc.Parse(c.Context(), fileHeader.Filename, content)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyUpload) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, parsed)
}
