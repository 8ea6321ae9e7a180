package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/saas-backend/internal/application/auth"
	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/rs/zerolog"
)

// AuthHandler maneja signup y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Signup godoc
// @Summary      Registrar empresa y usuario
// @Description  Crea la empresa y luego su primer usuario. Si el usuario falla se intenta borrar la empresa.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, companyName"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		if res.Orphaned() {
			h.log.Warn().Str("company_id", res.CompanyID).Msg("signup dejó una empresa sin usuario")
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AuthResponse{UserID: res.UserID, CompanyID: res.CompanyID})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
