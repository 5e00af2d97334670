package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/user"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"
)

type AuthHandler struct {
	uc   *usecase.AuthUsecase
	auth *middleware.AuthMiddleware
}

type signupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc *usecase.AuthUsecase, auth *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{uc: uc, auth: auth}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/signin", h.Signin)
	r.Get("/auth/me", h.Me, h.auth.Middleware())
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Signup(c.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AuthHandler) Signin(c fiber.Ctx) error {
	var req signinRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Signin(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	me, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, me)
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrEmptyName),
		errors.Is(err, usecase.ErrWeakPassword):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, user.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return err
	}
}
