package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
	"github.com/jhoicas/saas-backend/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de las credenciales Shopify de una empresa.
type SettingsUseCase struct {
	repo repository.CompanyRepository
}

// NewSettingsUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingsUseCase(repo repository.CompanyRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los settings de la empresa o domain.ErrNotFound.
func (uc *SettingsUseCase) Get(ctx context.Context, companyID int64) (*dto.SettingsResponse, error) {
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(company), nil
}

// Update reemplaza shop_domain, api_key y access_token (los omitidos quedan en NULL).
// api_secret no tiene columna en companies y se descarta.
func (uc *SettingsUseCase) Update(ctx context.Context, companyID int64, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.Shopify == nil {
		return nil, domain.ErrInvalidInput
	}
	creds := entity.ShopifyCredentials{
		ShopDomain:  in.Shopify.ShopDomain,
		APIKey:      in.Shopify.APIKey,
		AccessToken: in.Shopify.AccessToken,
	}
	company, err := uc.repo.UpdateShopifyCredentials(ctx, companyID, creds)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(company), nil
}

func toSettingsResponse(c *entity.Company) *dto.SettingsResponse {
	creds := c.Credentials()
	return &dto.SettingsResponse{
		CompanyID: strconv.FormatInt(c.ID, 10),
		Name:      c.Name,
		Shopify: dto.ShopifyCredentials{
			ShopDomain:  creds.ShopDomain,
			AccessToken: creds.AccessToken,
			APIKey:      creds.APIKey,
		},
		CreatedAt: c.CreatedAt,
	}
}
