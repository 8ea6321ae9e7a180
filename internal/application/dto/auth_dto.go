package dto

// SignupRequest entrada para registro: crea la empresa y su primer usuario.
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	CompanyName string `json:"companyName" validate:"required,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de login y signup. Los IDs se devuelven como string.
type AuthResponse struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
}
