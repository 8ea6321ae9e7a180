package entity

import (
	"encoding/json"
	"time"
)

// DashboardData snapshot JSON del dashboard de una empresa. El contenido es opaco para el backend.
type DashboardData struct {
	ID        int64
	CompanyID int64
	Data      json.RawMessage
	CreatedAt time.Time
}
