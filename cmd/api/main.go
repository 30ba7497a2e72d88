package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ruanwillians/indoorTv-core/internal/application/usecase"
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
	"github.com/ruanwillians/indoorTv-core/internal/infrastructure/cache"
	"github.com/ruanwillians/indoorTv-core/internal/infrastructure/encryption"
	"github.com/ruanwillians/indoorTv-core/internal/infrastructure/postgres"
	httpRouter "github.com/ruanwillians/indoorTv-core/internal/interfaces/http"
	"github.com/ruanwillians/indoorTv-core/pkg/config"
	"github.com/ruanwillians/indoorTv-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Composición explícita del grafo: cada servicio recibe sus capacidades
	// por constructor, sin contenedor de inyección.
	hasher := encryption.NewBcryptHasher(cfg.Hash.BcryptCost)
	companyRepo := postgres.NewCompanyRepository(pool)

	var userRepo repository.UserRepository = postgres.NewUserRepository(pool, hasher)
	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, caché desactivado")
	}
	if rdb != nil {
		defer rdb.Close()
		userRepo = cache.NewCachingUserRepository(rdb, time.Duration(cfg.Redis.TTLMinutes)*time.Minute, userRepo)
	}

	userSvc := usecase.NewUserService(userRepo, companyRepo)
	companySvc := usecase.NewCompanyService(companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "indoorTv Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserSvc:    userSvc,
		CompanySvc: companySvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
