package app

import (
	"context"
	"log"
	"time"

	"therapist-match/internal/config"
	"therapist-match/internal/database"
	"therapist-match/internal/database/migration"
	dbpostgres "therapist-match/internal/database/postgres"
	"therapist-match/internal/infrastructure/cache"
	"therapist-match/internal/infrastructure/directory"
	"therapist-match/internal/infrastructure/llm"
	"therapist-match/internal/infrastructure/memory"
	"therapist-match/internal/infrastructure/persistence/postgres"
	"therapist-match/internal/usecase"
	"therapist-match/internal/ws"
)

// Container owns the picked implementations behind the usecase ports.
// Storage selection: Postgres when DB_* is configured, the hosted directory
// service in live mode, in-memory otherwise.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB       database.DB
	Sessions usecase.SessionStore
	Hub      *ws.Hub

	Profiles  usecase.ProfileStore
	Directory usecase.TherapistDirectory
	Chat      usecase.ChatCompleter
	Notifier  usecase.MatchNotifier

	redisSessions *cache.RedisSessions
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	switch {
	case cfg.Database.Configured():
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}

		c.DB = db
		c.Profiles = postgres.NewProfileRepository(db)
		c.Directory = postgres.NewTherapistRepository(db)
		logger.Printf("[App] storage | backend=postgres host=%s", cfg.Database.DBHost)

	case cfg.LiveBackend():
		client := directory.NewClient(cfg.Matching.DirectoryURL, cfg.Matching.DirectoryAPIKey, logger)
		c.Profiles = client
		c.Directory = client
		logger.Printf("[App] storage | backend=directory url=%s", cfg.Matching.DirectoryURL)

	default:
		c.Profiles = memory.NewProfileStore()
		c.Directory = memory.NewDemoDirectory()
		logger.Printf("[App] storage | backend=memory mode=demo")
	}

	c.redisSessions = cache.NewRedisSessions(cfg.Redis, logger)
	if c.redisSessions.Available() {
		c.Sessions = c.redisSessions
	} else {
		c.Sessions = memory.NewSessionStore()
	}

	if cfg.LiveBackend() {
		c.Chat = llm.NewClient(llm.Config{
			BaseURL: cfg.Matching.GroqBaseURL,
			APIKey:  cfg.Matching.GroqAPIKey,
			Model:   cfg.Matching.Model,
		}, logger)
	}

	c.Hub = ws.NewHub(logger)
	c.Notifier = ws.NewNotifier(c.Hub)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redisSessions != nil {
		_ = c.redisSessions.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
