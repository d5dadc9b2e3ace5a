package server

import (
	"backend-sendit/internal/ascent"
	"backend-sendit/internal/auth"
	"backend-sendit/internal/catalog"
	"backend-sendit/internal/config"
	"backend-sendit/internal/session"
	"backend-sendit/internal/social"
	"backend-sendit/internal/stats"
	"backend-sendit/internal/storage"
	"backend-sendit/internal/training"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	catalogSvc := catalog.NewService(s.DB)
	catalogClient := catalog.NewClient(s.Cfg.CatalogBaseURL, s.Redis)

	var generator training.Generator
	if g := training.NewOpenAIGenerator(s.Cfg.OpenAIAPIKey, s.Cfg.OpenAIModel); g != nil {
		generator = g
	}

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB), jwtMiddleware)
	catalog.RegisterRoutes(s.App.Group("/catalog"), catalogSvc, catalogClient, jwtMiddleware)
	ascent.RegisterRoutes(s.App.Group("/ascents"), ascent.NewService(s.DB), jwtMiddleware)
	session.RegisterRoutes(s.App.Group("/sessions"), session.NewService(s.DB, catalogSvc), jwtMiddleware)
	stats.RegisterRoutes(s.App.Group("/stats"), stats.NewService(s.DB), jwtMiddleware)
	social.RegisterRoutes(s.App.Group("/social"), social.NewService(s.DB), jwtMiddleware)
	training.RegisterRoutes(s.App.Group("/training"), training.NewService(s.DB, generator), jwtMiddleware)
	storage.RegisterRoutes(s.App.Group("/storage"), storage.NewService(s.DB), jwtMiddleware)
}
