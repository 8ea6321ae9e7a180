// Package password hashea y verifica contraseñas con bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost costo usado en producción si la configuración no indica otro.
const DefaultCost = 12

var (
	// ErrMismatch la contraseña no corresponde al hash almacenado.
	ErrMismatch = errors.New("password: la contraseña no coincide")
	// ErrTooLong bcrypt solo procesa los primeros 72 bytes; se rechaza en vez de truncar.
	ErrTooLong = errors.New("password: supera 72 bytes")
)

// Hasher genera hashes bcrypt con salt aleatorio por contraseña.
type Hasher struct {
	cost int
}

// New construye el hasher. cost 0 usa bcrypt.DefaultCost.
func New(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password: costo bcrypt fuera de rango (%d-%d): %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost devuelve el costo configurado.
func (h *Hasher) Cost() int { return h.cost }

// Hash devuelve el hash bcrypt codificado como string (incluye costo y salt).
// Dos llamadas con la misma contraseña nunca producen el mismo resultado.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("generar hash: %w", err)
	}
	return string(hash), nil
}

// Compare recalcula el hash con el salt embebido en hashed y compara en tiempo constante.
// Devuelve ErrMismatch si la contraseña no coincide y otro error si el hash está mal formado.
func (h *Hasher) Compare(plain, hashed string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("comparar hash: %w", err)
	}
}

// Verify informa si plain corresponde a hashed. Hashes mal formados devuelven false.
func (h *Hasher) Verify(plain, hashed string) bool {
	return h.Compare(plain, hashed) == nil
}
