package entity

import "time"

// User representa un usuario del sistema (pertenece a exactamente una Company).
type User struct {
	ID           int64
	CompanyID    int64
	Email        string // único en toda la tabla users
	PasswordHash string // bcrypt; vacío si la fila no tiene password_hash
	CreatedAt    time.Time
}
