package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// MockUserRepository implementación testify/mock de repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockCompanyRepository implementación testify/mock de repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateShopifyCredentials(ctx context.Context, id int64, creds entity.ShopifyCredentials) (*entity.Company, error) {
	args := m.Called(ctx, id, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// assignCompanyID simula el RETURNING id del INSERT.
func assignCompanyID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*entity.Company).ID = id
	}
}

func assignUserID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = id
	}
}
