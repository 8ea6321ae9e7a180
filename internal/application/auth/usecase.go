package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/repository"
	"github.com/jhoicas/saas-backend/pkg/password"
	"github.com/rs/zerolog"
)

// PasswordHasher puerto del hasher de credenciales (implementado por pkg/password).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare devuelve password.ErrMismatch si no coincide y otro error si el hash es inválido.
	Compare(plain, hashed string) error
}

var _ PasswordHasher = (*password.Hasher)(nil)

// AuthUseCase casos de uso de autenticación: signup (empresa + usuario) y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	hasher      PasswordHasher
	log         zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	hasher PasswordHasher,
	log zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, hasher: hasher, log: log}
}

// Login verifica email/password y devuelve los IDs del usuario y su empresa.
// Email inexistente y password incorrecta devuelven el mismo error para no permitir enumeración.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		uc.log.Error().Int64("user_id", user.ID).Msg("usuario sin password_hash")
		return nil, domain.ErrAccountMisconfigured
	}

	if err := uc.hasher.Compare(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("verificación de password")
		return nil, fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}

	return &dto.AuthResponse{
		UserID:    formatID(user.ID),
		CompanyID: formatID(user.CompanyID),
	}, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
