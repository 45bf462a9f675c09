package repository

import (
	"context"

	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure (sqlite o postgres).
type CompanyRepository interface {
	// Create persiste la empresa y asigna company.ID. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya existe.
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
}
