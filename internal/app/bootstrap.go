package app

import (
	"fmt"
	"log"
	"strings"

	"therapist-match/internal/config"
	"therapist-match/internal/delivery/http/handler"
	"therapist-match/internal/delivery/http/middleware"
	"therapist-match/internal/delivery/http/routes"
	"therapist-match/internal/pkg/jwt"
	"therapist-match/internal/usecase"
	"therapist-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	profileUC := usecase.NewProfileUsecase(container.Profiles)
	authUC := usecase.NewAuthUsecase(container.Sessions, jwtSvc, cfg.JWT.AccessExpiresIn)
	matchUC := usecase.NewMatcher(
		container.Profiles,
		container.Directory,
		container.Chat,
		container.Notifier,
		cfg.LiveBackend(),
		cfg.Matching.FallbackDelay,
		logger,
	)

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(),
		Auth:      handler.NewAuthHandler(authUC),
		Profile:   handler.NewProfileHandler(profileUC),
		Therapist: handler.NewTherapistHandler(container.Directory),
		Match:     handler.NewMatchHandler(matchUC),
		AuthMw:    middleware.NewAuthMiddleware(jwtSvc),
		WS:        ws.NewHandler(container.Hub, logger),
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	registry.Register(f)

	cleanup := func() error { return container.Close() }
	return &App{Fiber: f, Container: container}, cleanup, nil
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
