package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/saas-backend/internal/application/auth"
	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/application/usecase"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	Logger      zerolog.Logger
}

// Router registra las rutas de la API. No hay rutas protegidas: la API no maneja sesiones.
func Router(app fiber.Router, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Backend running!"})
	})

	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Logger)
	app.Get("/dashboard/:companyId", dashboardHandler.Get)

	settings := app.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Logger)
	settings.Get("/:companyId", settingsHandler.Get)
	settings.Post("/:companyId", settingsHandler.Update)
}
