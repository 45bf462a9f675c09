package listing

import (
	"context"
	"fmt"

	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

// SheetUseCase genera la ficha PDF pública de un anuncio.
type SheetUseCase struct {
	listingRepo repository.ListingRepository
	companyRepo repository.CompanyRepository
	generator   ListingSheetGenerator
}

// NewSheetUseCase construye el caso de uso inyectando sus dependencias.
func NewSheetUseCase(
	listingRepo repository.ListingRepository,
	companyRepo repository.CompanyRepository,
	generator ListingSheetGenerator,
) *SheetUseCase {
	return &SheetUseCase{listingRepo: listingRepo, companyRepo: companyRepo, generator: generator}
}

// DownloadSheet devuelve los bytes del PDF y un nombre de archivo sugerido.
// domain.ErrNotFound si el anuncio no existe.
func (uc *SheetUseCase) DownloadSheet(ctx context.Context, listingID int64) (pdfBytes []byte, filename string, err error) {
	l, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener anuncio: %w", err)
	}
	if l == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, l.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", fmt.Errorf("ficha: empresa %d del anuncio %d: %w", l.CompanyID, l.ID, domain.ErrNotFound)
	}

	pdfBytes, err = uc.generator.GenerateListingSheet(ctx, l, company)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("anuncio_%d.pdf", l.ID), nil
}
