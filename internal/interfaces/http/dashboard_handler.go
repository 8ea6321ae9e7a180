package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/saas-backend/internal/application/usecase"
	"github.com/rs/zerolog"
)

// DashboardHandler maneja el dashboard por empresa.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve nombre de la empresa y el último snapshot de dashboard_data.
// GET /dashboard/:companyId
//
// @Summary      Dashboard de la empresa
// @Tags         dashboard
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/{companyId} [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
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
