package handler

import (
	"errors"

	"therapist-match/internal/delivery/http/dto"
	"therapist-match/internal/delivery/http/middleware"
	"therapist-match/internal/domain/matching"
	"therapist-match/internal/pkg/response"
	"therapist-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TherapistHandler struct {
	directory usecase.TherapistDirectory
}

func NewTherapistHandler(directory usecase.TherapistDirectory) *TherapistHandler {
	return &TherapistHandler{directory: directory}
}

func (h *TherapistHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/therapists", h.List)
}

func (h *TherapistHandler) List(c fiber.Ctx) error {
	therapists, err := h.directory.ListTherapists(c.Context())
	if err != nil {
		var upstream *matching.UpstreamError
		if errors.As(err, &upstream) {
			return middleware.NewAppError(fiber.StatusBadGateway, "Therapist directory unavailable", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTherapistListResponse(therapists))
}
