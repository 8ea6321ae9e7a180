package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
	"github.com/jhoicas/saas-backend/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo lectura de dashboard_data sobre PostgreSQL.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el repositorio.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetLatestByCompany devuelve la fila más reciente de la empresa (data_json puede ser NULL).
func (r *DashboardRepo) GetLatestByCompany(ctx context.Context, companyID int64) (*entity.DashboardData, error) {
	query := `
		SELECT id, company_id, data_json, created_at
		FROM dashboard_data
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	var (
		d   entity.DashboardData
		raw []byte
	)
	err := r.pool.QueryRow(ctx, query, companyID).Scan(&d.ID, &d.CompanyID, &raw, &d.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dashboard data: %w", err)
	}
	d.Data = raw
	return &d, nil
}
