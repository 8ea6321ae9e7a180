package entity

import "time"

// Company representa una organización/tenant del sistema.
// Los campos de integración Shopify son opcionales (NULL hasta que se configuran en settings).
type Company struct {
	ID            int64 // asignado por la base de datos
	Name          string
	ShopifyDomain *string
	APIKey        *string
	AccessToken   *string
	CreatedAt     time.Time
}

// ShopifyCredentials agrupa las credenciales de Shopify guardadas en companies.
type ShopifyCredentials struct {
	ShopDomain  *string
	APIKey      *string
	AccessToken *string
}

// Credentials devuelve las credenciales Shopify actuales de la empresa.
func (c *Company) Credentials() ShopifyCredentials {
	return ShopifyCredentials{
		ShopDomain:  c.ShopifyDomain,
		APIKey:      c.APIKey,
		AccessToken: c.AccessToken,
	}
}
