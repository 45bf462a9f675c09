package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Listing representa un anuncio de espacio de armazenagem publicado por una Company.
type Listing struct {
	ID           int64
	CompanyID    int64
	Title        string
	Description  string
	Location     string // dirección compuesta, ver ComposeLocation
	Price        decimal.Decimal
	Type         string
	Country      string
	Address      string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	TaxID        string // CNPJ
	ImagePath    string // vacío = sin imagen principal (NULL en la tabla)
}

// MaxListingPrice mayor precio representable en NUMERIC(14,2).
var MaxListingPrice = decimal.RequireFromString("999999999999.99")

// ValidListingPrice informa si el precio (ya redondeado a centavos) es no negativo y cabe en la columna.
func ValidListingPrice(price decimal.Decimal) bool {
	return !price.IsNegative() && price.LessThanOrEqual(MaxListingPrice)
}

// ComposeLocation arma la dirección legible a partir del desglose.
// Formato: "endereço, bairro, cidade - estado, cep, país".
func ComposeLocation(address, neighborhood, city, state, postalCode, country string) string {
	return fmt.Sprintf("%s, %s, %s - %s, %s, %s", address, neighborhood, city, state, postalCode, country)
}

// ListingDraft es el anuncio parcial que vive en la sesión entre la etapa 1 y la finalización.
type ListingDraft struct {
	Title       string          `json:"titulo"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Type        string          `json:"tipo"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Expired informa si el borrador superó el ttl. ttl <= 0 significa sin vencimiento.
func (d *ListingDraft) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(d.CreatedAt) > ttl
}
