package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// memCompanies repositorio de empresas en memoria.
type memCompanies struct {
	rows map[int64]entity.Company
	err  error
}

func newMemCompanies(companies ...entity.Company) *memCompanies {
	m := &memCompanies{rows: make(map[int64]entity.Company)}
	for _, c := range companies {
		m.rows[c.ID] = c
	}
	return m
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	return errors.New("no usado")
}

func (m *memCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCompanies) UpdateShopifyCredentials(_ context.Context, id int64, creds entity.ShopifyCredentials) (*entity.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	c.ShopifyDomain, c.APIKey, c.AccessToken = creds.ShopDomain, creds.APIKey, creds.AccessToken
	m.rows[id] = c
	return &c, nil
}

func (m *memCompanies) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

// memDashboards snapshots por empresa.
type memDashboards map[int64]json.RawMessage

func (m memDashboards) GetLatestByCompany(_ context.Context, companyID int64) (*entity.DashboardData, error) {
	data, ok := m[companyID]
	if !ok {
		return nil, nil
	}
	return &entity.DashboardData{ID: 1, CompanyID: companyID, Data: data, CreatedAt: time.Now()}, nil
}

func strPtr(s string) *string { return &s }
