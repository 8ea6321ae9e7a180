package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/application/usecase"
	"github.com/rs/zerolog"
)

// SettingsHandler credenciales Shopify por empresa.
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log zerolog.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Obtener settings de la empresa
// @Tags         settings
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /settings/{companyId} [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	id, ok := companyIDParam(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "companyId debe ser un entero positivo")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar credenciales Shopify
// @Description  Reemplaza shop_domain, access_token y api_key. api_secret se acepta pero no se guarda.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        companyId  path  int                        true  "ID de la empresa"
// @Param        body       body  dto.UpdateSettingsRequest  true  "shopify"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /settings/{companyId} [post]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	id, ok := companyIDParam(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "companyId debe ser un entero positivo")
	}
	var in dto.UpdateSettingsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
