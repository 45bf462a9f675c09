package repository

import (
	"context"

	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ListingFilter filtros conjuntivos para la búsqueda de anuncios. Campos vacíos/nil no filtran.
type ListingFilter struct {
	Query    string // subcadena en título o descripción
	City     string // subcadena en cidade
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ListingRepository define el puerto de persistencia para Listing (DIP).
type ListingRepository interface {
	// Create persiste el anuncio y asigna listing.ID.
	Create(ctx context.Context, listing *entity.Listing) error
	// GetByID devuelve (nil, nil) si el anuncio no existe.
	GetByID(ctx context.Context, id int64) (*entity.Listing, error)
	Search(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Listing, error)
}
