package handler

import (
	"errors"

	"therapist-match/internal/delivery/http/dto"
	"therapist-match/internal/delivery/http/middleware"
	"therapist-match/internal/domain/profile"
	"therapist-match/internal/pkg/response"
	"therapist-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profiles/me", h.Fetch)
	r.Put("/profiles/me", h.Submit)
}

func (h *ProfileHandler) Submit(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Submit(c.Context(), userID, req.ToForm())
	if err != nil {
		return mapProfileError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Fetch(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Fetch(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func mapProfileError(err error) error {
	var ve *profile.ValidationError
	if errors.As(err, &ve) {
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), nil, err)
	}
	if errors.Is(err, profile.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
}
