package listing

import (
	"context"
	"io"

	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
)

// ImageStore persiste imágenes subidas con un anuncio.
type ImageStore interface {
	// Save guarda el contenido bajo una versión segura de name y devuelve el nombre final.
	// Devuelve "" sin error si name no produce un nombre utilizable.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// ImageFile archivo recibido en el formulario, abierto bajo demanda.
type ImageFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// ListingSheetGenerator genera la ficha imprimible de un anuncio.
type ListingSheetGenerator interface {
	GenerateListingSheet(ctx context.Context, listing *entity.Listing, company *entity.Company) ([]byte, error)
}
