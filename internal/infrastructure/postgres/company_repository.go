package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
	"github.com/jhoicas/saas-backend/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, shopify_domain, api_key, access_token, created_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create inserta la empresa; id y created_at los asigna la base de datos.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, shopify_domain, api_key, access_token)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		company.Name, company.ShopifyDomain, company.APIKey, company.AccessToken,
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// UpdateShopifyCredentials reemplaza shopify_domain, api_key y access_token (NULL si vienen vacíos).
func (r *CompanyRepo) UpdateShopifyCredentials(ctx context.Context, id int64, creds entity.ShopifyCredentials) (*entity.Company, error) {
	query := `
		UPDATE companies SET shopify_domain = $2, api_key = $3, access_token = $4
		WHERE id = $1
		RETURNING ` + companyColumns
	c, err := scanCompany(r.pool.QueryRow(ctx, query, id, creds.ShopDomain, creds.APIKey, creds.AccessToken))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company credentials: %w", err)
	}
	return c, nil
}

// Delete elimina una empresa por ID. Devuelve domain.ErrNotFound si no existía.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete company %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.ShopifyDomain, &c.APIKey, &c.AccessToken, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
