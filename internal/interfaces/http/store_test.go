package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// memStore simula las tablas companies, users y dashboard_data, incluida la constraint UNIQUE(email).
type memStore struct {
	mu             sync.Mutex
	nextCompanyID  int64
	nextUserID     int64
	companies      map[int64]entity.Company
	users          map[string]entity.User
	dashboards     map[int64]json.RawMessage
	failUserCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		companies:  make(map[int64]entity.Company),
		users:      make(map[string]entity.User),
		dashboards: make(map[int64]json.RawMessage),
	}
}

func (s *memStore) counts() (companies, users int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.companies), len(s.users)
}

func (s *memStore) addCompany(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCompanyID++
	s.companies[s.nextCompanyID] = entity.Company{ID: s.nextCompanyID, Name: name, CreatedAt: time.Now().UTC()}
	return s.nextCompanyID
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCompanyID++
	c.ID = r.s.nextCompanyID
	c.CreatedAt = time.Now().UTC()
	r.s.companies[c.ID] = *c
	return nil
}

func (r memCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCompanyRepo) UpdateShopifyCredentials(_ context.Context, id int64, creds entity.ShopifyCredentials) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	c.ShopifyDomain, c.APIKey, c.AccessToken = creds.ShopDomain, creds.APIKey, creds.AccessToken
	r.s.companies[id] = c
	return &c, nil
}

func (r memCompanyRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, id)
	return nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUserCreate {
		return errors.New("insert user: connection reset")
	}
	if _, exists := r.s.users[u.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.s.nextUserID++
	u.ID = r.s.nextUserID
	u.CreatedAt = time.Now().UTC()
	r.s.users[u.Email] = *u
	return nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type memDashboardRepo struct{ s *memStore }

func (r memDashboardRepo) GetLatestByCompany(_ context.Context, companyID int64) (*entity.DashboardData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	data, ok := r.s.dashboards[companyID]
	if !ok {
		return nil, nil
	}
	return &entity.DashboardData{ID: 1, CompanyID: companyID, Data: data}, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
