package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

// ListingUseCase consultas de anuncios: búsqueda del dashboard, detalle y perfil.
type ListingUseCase struct {
	repo repository.ListingRepository
}

// NewListingUseCase construye el caso de uso con el puerto de persistencia.
func NewListingUseCase(repo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{repo: repo}
}

// Search aplica los filtros opcionales del dashboard. Cotas de precio que no
// se pueden interpretar como número se ignoran.
func (uc *ListingUseCase) Search(ctx context.Context, in dto.ListingSearchRequest) (*dto.ListingListResponse, error) {
	filter := repository.ListingFilter{
		Query:    strings.TrimSpace(in.Query),
		City:     strings.TrimSpace(in.City),
		MinPrice: parsePrice(in.MinPrice),
		MaxPrice: parsePrice(in.MaxPrice),
	}
	list, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toListingListResponse(list), nil
}

// GetByID obtiene un anuncio. Devuelve (nil, nil) si no existe.
func (uc *ListingUseCase) GetByID(ctx context.Context, id int64) (*dto.ListingResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return ToListingResponse(l), nil
}

// ListByCompany anuncios publicados por la empresa, para el perfil.
func (uc *ListingUseCase) ListByCompany(ctx context.Context, companyID int64) (*dto.ListingListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toListingListResponse(list), nil
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return nil
	}
	return &d
}

func toListingListResponse(list []*entity.Listing) *dto.ListingListResponse {
	items := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *ToListingResponse(l))
	}
	return &dto.ListingListResponse{Items: items, Total: len(items)}
}

// ToListingResponse convierte la entidad en DTO de salida.
func ToListingResponse(l *entity.Listing) *dto.ListingResponse {
	if l == nil {
		return nil
	}
	return &dto.ListingResponse{
		ID:           l.ID,
		CompanyID:    l.CompanyID,
		Title:        l.Title,
		Description:  l.Description,
		Location:     l.Location,
		Price:        l.Price,
		Type:         l.Type,
		Country:      l.Country,
		Address:      l.Address,
		Neighborhood: l.Neighborhood,
		City:         l.City,
		State:        l.State,
		PostalCode:   l.PostalCode,
		TaxID:        l.TaxID,
		ImagePath:    l.ImagePath,
	}
}
