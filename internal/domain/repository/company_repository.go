package repository

import (
	"context"

	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create inserta la empresa y completa ID y CreatedAt con los valores asignados por el store.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve nil, nil si la empresa no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// UpdateShopifyCredentials reemplaza las credenciales y devuelve la fila actualizada.
	// Devuelve nil, nil si ninguna fila fue afectada.
	UpdateShopifyCredentials(ctx context.Context, id int64, creds entity.ShopifyCredentials) (*entity.Company, error)
	Delete(ctx context.Context, id int64) error
}
