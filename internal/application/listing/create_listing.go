package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/application/usecase"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

// DefaultMaxImages cantidad de archivos que se procesan por anuncio.
const DefaultMaxImages = 3

// CreateListingUseCase flujo en dos pasos: borrador en sesión y finalización con localización e imágenes.
type CreateListingUseCase struct {
	repo      repository.ListingRepository
	images    ImageStore
	maxImages int
	draftTTL  time.Duration
}

// NewCreateListingUseCase construye el caso de uso. maxImages <= 0 usa DefaultMaxImages.
func NewCreateListingUseCase(repo repository.ListingRepository, images ImageStore, maxImages int, draftTTL time.Duration) *CreateListingUseCase {
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	return &CreateListingUseCase{repo: repo, images: images, maxImages: maxImages, draftTTL: draftTTL}
}

// StartDraft valida la etapa 1 y arma el borrador que el handler guarda en la sesión.
func (uc *CreateListingUseCase) StartDraft(in dto.DraftRequest, now time.Time) (*entity.ListingDraft, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	typ := strings.TrimSpace(in.Type)
	if title == "" || description == "" || typ == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, fmt.Errorf("%w: preço inválido", domain.ErrInvalidInput)
	}
	price = price.Round(2)
	if !entity.ValidListingPrice(price) {
		return nil, fmt.Errorf("%w: preço fora do intervalo", domain.ErrInvalidInput)
	}
	return &entity.ListingDraft{
		Title:       title,
		Description: description,
		Price:       price,
		Type:        typ,
		CreatedAt:   now,
	}, nil
}

// Finalize combina el borrador con la localización, guarda hasta maxImages archivos
// e inserta el anuncio. La primera imagen con nombre utilizable queda como principal.
//
// Retorna:
//   - domain.ErrDraftNotFound si no hay borrador.
//   - domain.ErrDraftExpired  si el borrador superó el TTL.
func (uc *CreateListingUseCase) Finalize(
	ctx context.Context,
	companyID int64,
	draft *entity.ListingDraft,
	loc dto.LocationRequest,
	files []ImageFile,
	now time.Time,
) (*dto.ListingResponse, error) {
	if draft == nil {
		return nil, domain.ErrDraftNotFound
	}
	if draft.Expired(now, uc.draftTTL) {
		return nil, domain.ErrDraftExpired
	}

	if len(files) > uc.maxImages {
		files = files[:uc.maxImages]
	}
	var primary string
	for _, f := range files {
		name, err := uc.saveImage(ctx, f)
		if err != nil {
			return nil, err
		}
		if primary == "" {
			primary = name
		}
	}

	l := &entity.Listing{
		CompanyID:    companyID,
		Title:        draft.Title,
		Description:  draft.Description,
		Price:        draft.Price,
		Type:         draft.Type,
		Country:      strings.TrimSpace(loc.Country),
		Address:      strings.TrimSpace(loc.Address),
		Neighborhood: strings.TrimSpace(loc.Neighborhood),
		City:         strings.TrimSpace(loc.City),
		State:        strings.TrimSpace(loc.State),
		PostalCode:   strings.TrimSpace(loc.PostalCode),
		TaxID:        strings.TrimSpace(loc.TaxID),
		ImagePath:    primary,
	}
	l.Location = entity.ComposeLocation(l.Address, l.Neighborhood, l.City, l.State, l.PostalCode, l.Country)

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return usecase.ToListingResponse(l), nil
}

func (uc *CreateListingUseCase) saveImage(ctx context.Context, f ImageFile) (string, error) {
	if f.Filename == "" || f.Open == nil {
		return "", nil
	}
	r, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("abrir imagen %q: %w", f.Filename, err)
	}
	defer r.Close()
	return uc.images.Save(ctx, f.Filename, r)
}
