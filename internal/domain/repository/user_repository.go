package repository

import (
	"context"

	"github.com/jhoicas/saas-backend/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create inserta el usuario y completa ID y CreatedAt.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail busca por coincidencia exacta; nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
