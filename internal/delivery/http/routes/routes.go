package routes

import (
	"therapist-match/internal/delivery/http/handler"
	"therapist-match/internal/delivery/http/middleware"
	"therapist-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Therapist *handler.TherapistHandler
	Match     *handler.MatchHandler
	AuthMw    *middleware.AuthMiddleware
	WS        *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	protected := v1.Group("", r.AuthMw.Middleware())
	r.Auth.RegisterProtectedRoutes(protected.Group("/auth"))
	r.Profile.RegisterRoutes(protected)
	r.Therapist.RegisterRoutes(protected)
	r.Match.RegisterRoutes(protected)

	if r.WS != nil {
		app.Get("/ws/matches", r.WS.HandleMatchesWS)
	}
}
