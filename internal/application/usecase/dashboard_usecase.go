package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/repository"
)

// DashboardUseCase arma el dashboard de una empresa: nombre + último snapshot JSON.
type DashboardUseCase struct {
	companyRepo   repository.CompanyRepository
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(companyRepo repository.CompanyRepository, dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{companyRepo: companyRepo, dashboardRepo: dashboardRepo}
}

// Get devuelve domain.ErrNotFound si la empresa no existe. Una empresa sin snapshot devuelve Data nil.
func (uc *DashboardUseCase) Get(ctx context.Context, companyID int64) (*dto.DashboardResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.DashboardResponse{
		CompanyID: strconv.FormatInt(company.ID, 10),
		Name:      company.Name,
	}
	snapshot, err := uc.dashboardRepo.GetLatestByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if snapshot != nil && len(snapshot.Data) > 0 {
		out.Data = snapshot.Data
	}
	return out, nil
}
