package dto

import "time"

// ShopifyCredentials bloque shopify de settings. api_secret se acepta pero no se persiste.
type ShopifyCredentials struct {
	ShopDomain  *string `json:"shop_domain" validate:"omitempty,max=255"`
	AccessToken *string `json:"access_token" validate:"omitempty,max=512"`
	APIKey      *string `json:"api_key" validate:"omitempty,max=255"`
	APISecret   *string `json:"api_secret,omitempty" validate:"omitempty,max=512"`
}

// UpdateSettingsRequest entrada de POST /settings/{companyId}.
type UpdateSettingsRequest struct {
	Shopify *ShopifyCredentials `json:"shopify" validate:"required"`
}

// SettingsResponse salida de GET y POST /settings/{companyId}.
type SettingsResponse struct {
	CompanyID string             `json:"company_id"`
	Name      string             `json:"name"`
	Shopify   ShopifyCredentials `json:"shopify"`
	CreatedAt time.Time          `json:"created_at"`
}
