package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	_ "github.com/jhoicas/saas-backend/docs"
	"github.com/jhoicas/saas-backend/internal/application/auth"
	"github.com/jhoicas/saas-backend/internal/application/usecase"
	"github.com/jhoicas/saas-backend/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/saas-backend/internal/interfaces/http"
	"github.com/jhoicas/saas-backend/pkg/config"
	"github.com/jhoicas/saas-backend/pkg/logger"
	"github.com/jhoicas/saas-backend/pkg/password"
)

// @title        SaaS Backend API
// @version      1.0.0
// @description  Dashboards, settings Shopify y autenticación por empresa.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Un único pool para todo el proceso; los handlers lo comparten.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	hasher, err := password.New(cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de bcrypt")
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, hasher, log.Component("auth"))
	settingsUC := usecase.NewSettingsUseCase(companyRepo)
	dashboardUC := usecase.NewDashboardUseCase(companyRepo, dashboardRepo)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:          cfg.App.Name,
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: !cfg.CORS.AllowsAll(),
		Logger:           log.Component("http"),
	})

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SaaS Backend API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		Logger:      log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
