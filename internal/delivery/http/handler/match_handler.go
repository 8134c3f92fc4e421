package handler

import (
	"errors"

	"therapist-match/internal/delivery/http/dto"
	"therapist-match/internal/delivery/http/middleware"
	"therapist-match/internal/domain/matching"
	"therapist-match/internal/domain/profile"
	"therapist-match/internal/pkg/response"
	"therapist-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/matches", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	outcome, err := h.uc.Match(c.Context(), userID, req.Needs)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewMatchListResponse(outcome.RequestID, outcome.Matches))
}

// Upstream, parse, and shape failures present identically to the caller: the
// pipeline aborts and the reply's message is surfaced as a 502.
func mapMatchError(err error) error {
	var ve *profile.ValidationError
	if errors.As(err, &ve) {
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), nil, err)
	}
	if errors.Is(err, profile.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	}
	if errors.Is(err, matching.ErrEmptyDirectory) {
		return middleware.NewAppError(fiber.StatusNotFound, "No therapists found in the database", nil, err)
	}

	var upstream *matching.UpstreamError
	var shape *matching.ShapeError
	if errors.As(err, &upstream) || errors.As(err, &shape) || errors.Is(err, matching.ErrParse) {
		return middleware.NewAppError(fiber.StatusBadGateway, "Failed to find matches: "+err.Error(), nil, err)
	}

	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
}
