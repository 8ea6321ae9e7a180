package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/rs/zerolog"
)

type apiError struct {
	status  int
	code    string
	message string
}

// errorTable traduce errores de dominio a respuestas HTTP. El orden importa: se usa el primero que matchea.
var errorTable = []struct {
	target error
	resp   apiError
}{
	{domain.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "empresa no encontrada"}},
	{domain.ErrEmailAlreadyExists, apiError{fiber.StatusBadRequest, "EMAIL_EXISTS", "el email ya está registrado"}},
	{domain.ErrInvalidInput, apiError{fiber.StatusBadRequest, "VALIDATION", "entrada inválida"}},
	{domain.ErrInvalidCredentials, apiError{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "email o contraseña inválidos"}},
	{domain.ErrUnauthorized, apiError{fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado"}},
	{domain.ErrCompanyCreationFailed, apiError{fiber.StatusInternalServerError, "COMPANY_CREATION_FAILED", "no se pudo crear la empresa"}},
	{domain.ErrUserCreationFailed, apiError{fiber.StatusInternalServerError, "USER_CREATION_FAILED", "no se pudo crear el usuario"}},
	{domain.ErrAccountMisconfigured, apiError{fiber.StatusInternalServerError, "ACCOUNT_MISCONFIGURED", "la cuenta no tiene contraseña configurada"}},
	{domain.ErrVerificationFailed, apiError{fiber.StatusInternalServerError, "VERIFICATION_FAILED", "error verificando la contraseña"}},
}

var internalError = apiError{fiber.StatusInternalServerError, "INTERNAL", "error interno"}

func mapError(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return internalError
}

// respondError escribe el ErrorResponse correspondiente. Los 5xx se registran con el error completo;
// al cliente solo le llega el mensaje corto.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	resp := mapError(err)
	if resp.status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(resp.code)
	}
	return c.Status(resp.status).JSON(dto.ErrorResponse{Code: resp.code, Message: resp.message})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
