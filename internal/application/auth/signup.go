package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/saas-backend/internal/application/dto"
	"github.com/jhoicas/saas-backend/internal/domain"
	"github.com/jhoicas/saas-backend/internal/domain/entity"
	"github.com/jhoicas/saas-backend/pkg/password"
)

// SignupStage etapa alcanzada por el registro.
type SignupStage string

const (
	StageStart          SignupStage = "start"
	StageCompanyCreated SignupStage = "company_created"
	StageUserCreated    SignupStage = "user_created"
	StageRolledBack     SignupStage = "rolled_back"
)

// SignupResult resultado del registro. Se devuelve también junto a un error para que el llamador
// pueda saber si quedó una empresa huérfana (CompensationAttempted && !CompensationSucceeded).
type SignupResult struct {
	UserID                string
	CompanyID             string
	Stage                 SignupStage
	CompensationAttempted bool
	CompensationSucceeded bool
}

// Orphaned informa si la empresa creada quedó sin usuario.
func (r SignupResult) Orphaned() bool {
	return r.CompensationAttempted && !r.CompensationSucceeded
}

// Signup crea la empresa y luego su primer usuario.
//
// No hay transacción compartida entre los dos INSERT: si el usuario falla se intenta borrar
// la empresa (acción compensatoria). Si ese DELETE también falla la empresa queda huérfana;
// se registra en el log y se informa en SignupResult, pero el error devuelto es siempre
// domain.ErrUserCreationFailed.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (SignupResult, error) {
	res := SignupResult{Stage: StageStart}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return res, fmt.Errorf("verificar email: %w", err)
	}
	if existing != nil {
		return res, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return res, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return res, fmt.Errorf("hash password: %w", err)
	}

	company := &entity.Company{Name: in.CompanyName}
	if err := uc.companyRepo.Create(ctx, company); err != nil || company.ID == 0 {
		uc.log.Error().Err(orNoRow(err)).Str("company_name", in.CompanyName).Msg("crear empresa en signup")
		return res, fmt.Errorf("%w: %v", domain.ErrCompanyCreationFailed, orNoRow(err))
	}
	res.Stage = StageCompanyCreated
	res.CompanyID = formatID(company.ID)

	user := &entity.User{
		CompanyID:    company.ID,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil || user.ID == 0 {
		cause := orNoRow(err)
		uc.log.Error().Err(cause).Int64("company_id", company.ID).Msg("crear usuario en signup")
		uc.compensate(ctx, company.ID, &res)
		return res, fmt.Errorf("%w: %v", domain.ErrUserCreationFailed, cause)
	}

	res.Stage = StageUserCreated
	res.UserID = formatID(user.ID)
	uc.log.Info().Int64("company_id", company.ID).Int64("user_id", user.ID).Msg("signup completado")
	return res, nil
}

// compensate borra la empresa recién creada. Su error nunca se propaga.
// Se desacopla de la cancelación del request: si el cliente corta la conexión igual se intenta.
func (uc *AuthUseCase) compensate(ctx context.Context, companyID int64, res *SignupResult) {
	res.CompensationAttempted = true
	if err := uc.companyRepo.Delete(context.WithoutCancel(ctx), companyID); err != nil {
		uc.log.Warn().Err(err).Int64("company_id", companyID).Msg("compensación fallida: empresa sin usuario")
		return
	}
	res.CompensationSucceeded = true
	res.Stage = StageRolledBack
	uc.log.Info().Int64("company_id", companyID).Msg("empresa eliminada tras fallo al crear usuario")
}

var errNoRowReturned = errors.New("el insert no devolvió fila")

func orNoRow(err error) error {
	if err != nil {
		return err
	}
	return errNoRowReturned
}
