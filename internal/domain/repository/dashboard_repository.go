package repository

import (
	"context"

	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// DashboardRepository lectura de snapshots de dashboard_data.
type DashboardRepository interface {
	// GetLatestByCompany devuelve el snapshot más reciente o nil, nil si la empresa no tiene datos.
	GetLatestByCompany(ctx context.Context, companyID int64) (*entity.DashboardData, error)
}
