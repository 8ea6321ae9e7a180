package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/rs/zerolog"
)

// ServerConfig parámetros de la app Fiber.
type ServerConfig struct {
	AppName          string
	AllowOrigins     string // lista separada por coma o "*"
	// AllowCredentials debe ser false cuando AllowOrigins es "*": Fiber no permite credenciales con origen comodín.
	AllowCredentials bool
	Logger           zerolog.Logger
}

// NewApp crea la app Fiber con los middlewares comunes: recover, request id y CORS.
func NewApp(cfg ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: errorHandler(cfg.Logger),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.AllowCredentials,
	}))
	return app
}

// errorHandler formatea los errores que llegan a Fiber (rutas inexistentes, panics recuperados) como ErrorResponse.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = "ROUTE_NOT_FOUND"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return respondError(c, log, err)
	}
}
