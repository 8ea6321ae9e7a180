package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("email o contraseña inválidos")

	// Fallos del registro en dos pasos (empresa y luego usuario).
	ErrCompanyCreationFailed = errors.New("no se pudo crear la empresa")
	ErrUserCreationFailed    = errors.New("no se pudo crear el usuario")

	// Fallos internos del login; nunca se exponen como 401.
	ErrAccountMisconfigured = errors.New("la cuenta no tiene contraseña configurada")
	ErrVerificationFailed   = errors.New("error verificando la contraseña")
)
