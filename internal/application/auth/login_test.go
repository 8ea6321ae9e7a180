package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

func TestLogin(t *testing.T) {
	f := newSignupFixture(t)
	ctx := context.Background()

	hash, err := f.hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	f.users.On("GetByEmail", ctx, testEmail).Return(&entity.User{ID: 9, CompanyID: 5, Email: testEmail, PasswordHash: hash}, nil)
	f.users.On("GetByEmail", ctx, "nadie@acme.test").Return(nil, nil)
	f.users.On("GetByEmail", ctx, "sinhash@acme.test").Return(&entity.User{ID: 10, CompanyID: 5, Email: "sinhash@acme.test"}, nil)
	f.users.On("GetByEmail", ctx, "corrupto@acme.test").Return(&entity.User{ID: 11, CompanyID: 5, PasswordHash: "$2a$10$corrupto"}, nil)
	f.users.On("GetByEmail", ctx, "caido@acme.test").Return(nil, errors.New("connection refused"))

	t.Run("credenciales correctas", func(t *testing.T) {
		out, err := f.uc.Login(ctx, dto.LoginRequest{Email: testEmail, Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "9", out.UserID)
		assert.Equal(t, "5", out.CompanyID)
	})

	t.Run("password incorrecta", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: testEmail, Password: "otra"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("email inexistente es indistinguible", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "nadie@acme.test", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("usuario sin hash", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "sinhash@acme.test", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrAccountMisconfigured)
	})

	t.Run("hash mal formado", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "corrupto@acme.test", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrVerificationFailed)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("error del store", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "caido@acme.test", Password: "x"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
