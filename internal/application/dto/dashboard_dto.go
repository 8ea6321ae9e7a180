package dto

import "encoding/json"

// DashboardResponse respuesta de GET /dashboard/{companyId}.
// Data es el último snapshot de dashboard_data tal cual se guardó; null si no hay ninguno.
type DashboardResponse struct {
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
}
